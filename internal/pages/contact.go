package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

type SocialLinkView struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	MailTo   string `json:"mailto"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location"`
	Timezone string `json:"timezone"`
}

type ContactPage struct {
	SEO     SEO               `json:"seo"`
	Copy    map[string]string `json:"copy"`
	Contact ContactInfo       `json:"contact"`
	Social  []SocialLinkView  `json:"social"`
}

func (a *Assembler) Contact(ctx context.Context) (*ContactPage, error) {
	var (
		settings *domain.SiteSettings
		doc      domain.PageDocument
		links    []domain.SocialLink
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, "contact_settings", &settings, a.src.SiteSettings)
	fetch(gctx, g, "contact_page", &doc, a.page(domain.PageContact))
	fetch(gctx, g, "contact_social", &links, a.src.SocialLinks)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ContactPage{
		SEO:     a.pageSEO(doc, settings),
		Copy:    NewFields(doc, a.defaults.Page(domain.PageContact)).All(),
		Contact: a.contactInfo(settings),
		Social:  socialViews(links),
	}, nil
}

func (a *Assembler) contactInfo(settings *domain.SiteSettings) ContactInfo {
	site := a.siteFields(settings)
	email := site.Get("email")
	return ContactInfo{
		Email:    email,
		MailTo:   "mailto:" + email,
		Phone:    site.Get("phone"),
		Location: site.Get("location"),
		Timezone: site.Get("timezone"),
	}
}

func socialViews(links []domain.SocialLink) []SocialLinkView {
	out := make([]SocialLinkView, 0, len(links))
	for _, l := range links {
		if l.URL == "" {
			continue
		}
		out = append(out, SocialLinkView{Platform: string(l.Platform), URL: l.URL, Icon: l.Icon()})
	}
	return out
}
