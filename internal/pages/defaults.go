package pages

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Link is a navigation entry.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Path  string `yaml:"path" json:"path"`
}

// FormOptionDefaults mirrors domain.FormOptions for the fallback table.
type FormOptionDefaults struct {
	SessionDuration  int      `yaml:"sessionDuration"`
	ServiceOptions   []string `yaml:"serviceOptions"`
	BudgetOptions    []string `yaml:"budgetOptions"`
	HearAboutOptions []string `yaml:"hearAboutOptions"`
	ReferrerOptions  []string `yaml:"referrerOptions"`
	TimeSlots        []string `yaml:"timeSlots"`
}

// Defaults is the fallback copy for every page and the site shell.
type Defaults struct {
	Site             map[string]string                     `yaml:"site"`
	SEO              SEODefaults                           `yaml:"seo"`
	Pages            map[domain.PageType]map[string]string `yaml:"pages"`
	FormOptions      FormOptionDefaults                    `yaml:"formOptions"`
	DesignCategories []string                              `yaml:"designCategories"`
	MenuLinks        []Link                                `yaml:"menuLinks"`
}

type SEODefaults struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ParseDefaults decodes a defaults table.
func ParseDefaults(raw []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse page defaults: %w", err)
	}
	if d.Site == nil {
		d.Site = map[string]string{}
	}
	if d.Pages == nil {
		d.Pages = map[domain.PageType]map[string]string{}
	}
	return &d, nil
}

// LoadDefaults returns the embedded defaults table.
func LoadDefaults() (*Defaults, error) {
	return ParseDefaults(defaultsYAML)
}

// MustDefaults panics if the embedded table is malformed.
func MustDefaults() *Defaults {
	d, err := LoadDefaults()
	if err != nil {
		panic(err)
	}
	return d
}

// Page returns the field defaults of one page singleton.
func (d *Defaults) Page(pageType domain.PageType) map[string]string {
	if m, ok := d.Pages[pageType]; ok {
		return m
	}
	return map[string]string{}
}
