package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/imageurl"
	"github.com/mhdatheek136/branfern/internal/logging"
)

// Source is the read side of the content store. *content.Store satisfies it.
type Source interface {
	SiteSettings(ctx context.Context) (*domain.SiteSettings, error)
	Page(ctx context.Context, pageType domain.PageType) (domain.PageDocument, error)
	AllProjects(ctx context.Context) ([]domain.ProjectSummary, error)
	RecentProjects(ctx context.Context, limit int) ([]domain.ProjectSummary, error)
	ProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error)
	ShowreelSlides(ctx context.Context) ([]domain.ShowreelSlide, error)
	TeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	Services(ctx context.Context) ([]domain.Service, error)
	DesignCategories(ctx context.Context) ([]domain.DesignCategory, error)
	SocialLinks(ctx context.Context) ([]domain.SocialLink, error)
	FormOptions(ctx context.Context) (*domain.FormOptions, error)
	NavigationLinks(ctx context.Context) ([]domain.NavigationLink, error)
}

// Assembler builds page view models. Each page issues its reads concurrently
// and renders with defaults for anything that failed or came back empty.
type Assembler struct {
	src      Source
	images   *imageurl.Builder
	defaults *Defaults
}

func NewAssembler(src Source, images *imageurl.Builder, defaults *Defaults) *Assembler {
	if defaults == nil {
		defaults = MustDefaults()
	}
	return &Assembler{src: src, images: images, defaults: defaults}
}

func (a *Assembler) Defaults() *Defaults { return a.defaults }

// fetch schedules one read on g. A failed read is logged and leaves dst at its
// zero value; only cancellation of the request aborts the group.
func fetch[T any](ctx context.Context, g *errgroup.Group, op string, dst *T, fn func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := fn(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logging.NewLogger(ctx).LogWarnf(op, "content unavailable, rendering defaults: %v", err)
			return nil
		}
		*dst = v
		return nil
	})
}

func (a *Assembler) page(pageType domain.PageType) func(context.Context) (domain.PageDocument, error) {
	return func(ctx context.Context) (domain.PageDocument, error) {
		return a.src.Page(ctx, pageType)
	}
}

func (a *Assembler) siteFields(settings *domain.SiteSettings) Fields {
	return NewFields(settingsDocument(settings), a.defaults.Site)
}

// settingsDocument exposes the typed settings' text fields to the Fields lookup.
func settingsDocument(s *domain.SiteSettings) domain.PageDocument {
	if s == nil {
		return nil
	}
	return domain.PageDocument{
		"companyName":            s.CompanyName,
		"email":                  s.Email,
		"phone":                  s.Phone,
		"location":               s.Location,
		"timezone":               s.Timezone,
		"heroTitle":              s.HeroTitle,
		"heroSubtitle":           s.HeroSubtitle,
		"footerOverlayTitle":     s.FooterOverlayTitle,
		"footerOverlaySubtitle":  s.FooterOverlaySubtitle,
		"footerHoverPlaceholder": s.FooterHoverText,
		"footerWorkingHeading":   s.FooterWorkingHeading,
		"footerContactsHeading":  s.FooterContactsHeading,
		"footerLocationHeading":  s.FooterLocationHeading,
		"footerScrollTopText":    s.FooterScrollTopText,
		"navHomeLabel":           s.NavHomeLabel,
		"navBrandReviewLabel":    s.NavBrandReviewLabel,
		"navAboutLabel":          s.NavAboutLabel,
		"navWorkLabel":           s.NavWorkLabel,
		"navContactLabel":        s.NavContactLabel,
	}
}
