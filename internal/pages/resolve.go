package pages

import (
	"strconv"
	"strings"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

// Resolve returns the first value that is not the zero value.
// Every fallback chain on every page goes through here.
func Resolve[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// ResolveList returns fetched unless it is empty.
func ResolveList[T any](fetched, fallback []T) []T {
	if len(fetched) > 0 {
		return fetched
	}
	return fallback
}

// Fields reads page copy with a fallback to the defaults table.
type Fields struct {
	doc      domain.PageDocument
	defaults map[string]string
}

func NewFields(doc domain.PageDocument, defaults map[string]string) Fields {
	return Fields{doc: doc, defaults: defaults}
}

// Get returns the fetched text for name, or its default.
func (f Fields) Get(name string) string {
	return Resolve(strings.TrimSpace(f.doc.Text(name)), f.defaults[name])
}

// All resolves every defaulted field plus any extra text fields the document carries.
func (f Fields) All() map[string]string {
	out := make(map[string]string, len(f.defaults))
	for name := range f.defaults {
		out[name] = f.Get(name)
	}
	for name, v := range f.doc {
		if s, ok := v.(string); ok && s != "" && !strings.HasPrefix(name, "_") {
			if _, seen := out[name]; !seen {
				out[name] = s
			}
		}
	}
	return out
}

// Interpolate replaces {name} placeholders.
func Interpolate(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// FormatStepsTitle renders a "Step {current} of {total}" template.
func FormatStepsTitle(template string, current, total int) string {
	return Interpolate(template, map[string]string{
		"current": strconv.Itoa(current),
		"total":   strconv.Itoa(total),
	})
}
