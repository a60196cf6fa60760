package pages

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

// FormSteps is the number of steps in the brand review form.
const FormSteps = 3

type FormOptionsView struct {
	Services  []string `json:"services"`
	Budgets   []string `json:"budgets"`
	HearAbout []string `json:"hearAbout"`
	Referrers []string `json:"referrers"`
	TimeSlots []string `json:"timeSlots"`
}

type BrandReviewPage struct {
	SEO             SEO               `json:"seo"`
	Copy            map[string]string `json:"copy"`
	SessionDuration int               `json:"sessionDuration"`
	Timezone        string            `json:"timezone"`
	StepTitles      []string          `json:"stepTitles"`
	Options         FormOptionsView   `json:"options"`
}

func (a *Assembler) BrandReview(ctx context.Context) (*BrandReviewPage, error) {
	var (
		settings *domain.SiteSettings
		doc      domain.PageDocument
		options  *domain.FormOptions
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, "brand_review_settings", &settings, a.src.SiteSettings)
	fetch(gctx, g, "brand_review_page", &doc, a.page(domain.PageBrandReview))
	fetch(gctx, g, "brand_review_options", &options, a.src.FormOptions)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	duration := a.sessionDuration(doc, options)
	fields := NewFields(doc, a.defaults.Page(domain.PageBrandReview))
	text := fields.All()
	text["heroDescription"] = Interpolate(fields.Get("heroDescription"), map[string]string{
		"duration": strconv.Itoa(duration),
	})

	titles := make([]string, 0, FormSteps)
	for step := 1; step <= FormSteps; step++ {
		titles = append(titles, FormatStepsTitle(fields.Get("stepsTitle"), step, FormSteps))
	}

	return &BrandReviewPage{
		SEO:             a.pageSEO(doc, settings),
		Copy:            text,
		SessionDuration: duration,
		Timezone:        a.siteFields(settings).Get("timezone"),
		StepTitles:      titles,
		Options:         a.formOptions(options),
	}, nil
}

// sessionDuration resolves page value, then form options, then the default.
func (a *Assembler) sessionDuration(doc domain.PageDocument, options *domain.FormOptions) int {
	var fromPage, fromOptions int
	if n, ok := doc.Number("sessionDuration"); ok {
		fromPage = int(n)
	}
	if options != nil {
		fromOptions = options.SessionDuration
	}
	return Resolve(fromPage, fromOptions, a.defaults.FormOptions.SessionDuration)
}

func (a *Assembler) formOptions(options *domain.FormOptions) FormOptionsView {
	var o domain.FormOptions
	if options != nil {
		o = *options
	}
	d := a.defaults.FormOptions
	return FormOptionsView{
		Services:  ResolveList(o.ServiceOptions, d.ServiceOptions),
		Budgets:   ResolveList(o.BudgetOptions, d.BudgetOptions),
		HearAbout: ResolveList(o.HearAboutOptions, d.HearAboutOptions),
		Referrers: ResolveList(o.ReferrerOptions, d.ReferrerOptions),
		TimeSlots: ResolveList(o.TimeSlots, d.TimeSlots),
	}
}

// FormOptions returns the resolved selectable values, defaults included.
func (a *Assembler) FormOptions(ctx context.Context) (FormOptionsView, error) {
	options, err := a.src.FormOptions(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return FormOptionsView{}, ctx.Err()
		}
		return a.formOptions(nil), nil
	}
	return a.formOptions(options), nil
}

// TimeSlots returns the bookable slots offered on any date.
func (a *Assembler) TimeSlots(ctx context.Context) ([]string, error) {
	opts, err := a.FormOptions(ctx)
	if err != nil {
		return nil, err
	}
	return opts.TimeSlots, nil
}
