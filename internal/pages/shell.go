package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

type FooterCopy struct {
	OverlayTitle     string `json:"overlayTitle"`
	OverlaySubtitle  string `json:"overlaySubtitle"`
	HoverPlaceholder string `json:"hoverPlaceholder"`
	WorkingHeading   string `json:"workingHeading"`
	ContactsHeading  string `json:"contactsHeading"`
	LocationHeading  string `json:"locationHeading"`
	ScrollTopText    string `json:"scrollTopText"`
}

// Shell is everything rendered around the routed page: navigation, the
// hamburger menu, the footer and its category overlay.
type Shell struct {
	CompanyName string            `json:"companyName"`
	SEO         SEO               `json:"seo"`
	Nav         []Link            `json:"nav"`
	Menu        []Link            `json:"menu"`
	Footer      FooterCopy        `json:"footer"`
	Contact     ContactInfo       `json:"contact"`
	Social      []SocialLinkView  `json:"social"`
	Categories  []CategoryPreview `json:"categories"`
}

func (a *Assembler) Shell(ctx context.Context) (*Shell, error) {
	var (
		settings   *domain.SiteSettings
		links      []domain.SocialLink
		categories []domain.DesignCategory
		recent     []domain.ProjectSummary
		navigation []domain.NavigationLink
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, "shell_settings", &settings, a.src.SiteSettings)
	fetch(gctx, g, "shell_social", &links, a.src.SocialLinks)
	fetch(gctx, g, "shell_categories", &categories, a.src.DesignCategories)
	fetch(gctx, g, "shell_recent", &recent, func(ctx context.Context) ([]domain.ProjectSummary, error) {
		return a.src.RecentProjects(ctx, 0)
	})
	fetch(gctx, g, "shell_navigation", &navigation, a.src.NavigationLinks)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	site := a.siteFields(settings)
	return &Shell{
		CompanyName: site.Get("companyName"),
		SEO:         a.seo("", "", nil, settings),
		Nav: []Link{
			{Label: site.Get("navHomeLabel"), Path: "/"},
			{Label: site.Get("navBrandReviewLabel"), Path: "/brand-review"},
			{Label: site.Get("navAboutLabel"), Path: "/about"},
			{Label: site.Get("navWorkLabel"), Path: "/work"},
			{Label: site.Get("navContactLabel"), Path: "/contact"},
		},
		Menu: a.menuLinks(navigation),
		Footer: FooterCopy{
			OverlayTitle:     site.Get("footerOverlayTitle"),
			OverlaySubtitle:  site.Get("footerOverlaySubtitle"),
			HoverPlaceholder: site.Get("footerHoverPlaceholder"),
			WorkingHeading:   site.Get("footerWorkingHeading"),
			ContactsHeading:  site.Get("footerContactsHeading"),
			LocationHeading:  site.Get("footerLocationHeading"),
			ScrollTopText:    site.Get("footerScrollTopText"),
		},
		Contact:    a.contactInfo(settings),
		Social:     socialViews(links),
		Categories: a.categoryPreviews(categories, recent),
	}, nil
}

func (a *Assembler) menuLinks(navigation []domain.NavigationLink) []Link {
	out := make([]Link, 0, len(navigation))
	for _, n := range navigation {
		if n.Label != "" && n.Path != "" {
			out = append(out, Link{Label: n.Label, Path: n.Path})
		}
	}
	return ResolveList(out, a.defaults.MenuLinks)
}
