package content

import (
	"context"
	"fmt"

	"github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/logging"
)

const DefaultRecentLimit = 6

// Querier runs a parameterized GROQ query. *sanity.Client satisfies it.
type Querier interface {
	Query(ctx context.Context, groq string, params map[string]any, out any) error
}

// Store exposes one read per content shape. A missing document is reported as
// a nil result, never as an error; errors mean the store could not be reached.
type Store struct {
	q Querier
}

func NewStore(q Querier) *Store {
	return &Store{q: q}
}

func (s *Store) fetch(ctx context.Context, op, groq string, params map[string]any, out any) error {
	if err := s.q.Query(ctx, groq, params, out); err != nil {
		logging.NewLogger(ctx).LogError(op, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	logging.NewLogger(ctx).LogDebugf(op, "query ok params=%v", params)
	return nil
}

func (s *Store) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	var out *domain.SiteSettings
	if err := s.fetch(ctx, "site_settings", siteSettingsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Page returns the page singleton of the given type, or nil.
func (s *Store) Page(ctx context.Context, pageType domain.PageType) (domain.PageDocument, error) {
	if !pageType.Valid() {
		return nil, fmt.Errorf("unknown page type %q", pageType)
	}
	var out domain.PageDocument
	if err := s.fetch(ctx, string(pageType), pageQuery, map[string]any{"type": string(pageType)}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) PageAbout(ctx context.Context) (domain.PageDocument, error) {
	return s.Page(ctx, domain.PageAbout)
}

func (s *Store) PageContact(ctx context.Context) (domain.PageDocument, error) {
	return s.Page(ctx, domain.PageContact)
}

func (s *Store) PageWork(ctx context.Context) (domain.PageDocument, error) {
	return s.Page(ctx, domain.PageWork)
}

func (s *Store) PageBrandReview(ctx context.Context) (domain.PageDocument, error) {
	return s.Page(ctx, domain.PageBrandReview)
}

// AllProjects returns every project, explicit order first then newest.
func (s *Store) AllProjects(ctx context.Context) ([]domain.ProjectSummary, error) {
	var out []domain.ProjectSummary
	if err := s.fetch(ctx, "all_projects", allProjectsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentProjects returns the newest projects; limit <= 0 means DefaultRecentLimit.
func (s *Store) RecentProjects(ctx context.Context, limit int) ([]domain.ProjectSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var out []domain.ProjectSummary
	if err := s.fetch(ctx, "recent_projects", recentProjectsQuery(limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectBySlug returns the case study with its chronological neighbours, or nil.
func (s *Store) ProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error) {
	if !domain.ValidSlug(slug) {
		logging.NewLogger(ctx).LogWarnf("project_by_slug", "rejected slug %q", slug)
		return nil, nil
	}
	var out *domain.ProjectDetail
	if err := s.fetch(ctx, "project_by_slug", projectBySlugQuery, map[string]any{"slug": slug}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ShowreelSlides(ctx context.Context) ([]domain.ShowreelSlide, error) {
	var out []domain.ShowreelSlide
	if err := s.fetch(ctx, "showreel_slides", showreelSlidesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	var out []domain.TeamMember
	if err := s.fetch(ctx, "team_members", teamMembersQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Services returns the service pillars ordered by pillar number.
func (s *Store) Services(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	if err := s.fetch(ctx, "services", servicesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DesignCategories(ctx context.Context) ([]domain.DesignCategory, error) {
	var out []domain.DesignCategory
	if err := s.fetch(ctx, "design_categories", designCategoriesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SocialLinks(ctx context.Context) ([]domain.SocialLink, error) {
	var out []domain.SocialLink
	if err := s.fetch(ctx, "social_links", socialLinksQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) FormOptions(ctx context.Context) (*domain.FormOptions, error) {
	var out *domain.FormOptions
	if err := s.fetch(ctx, "form_options", formOptionsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) NavigationLinks(ctx context.Context) ([]domain.NavigationLink, error) {
	var out []domain.NavigationLink
	if err := s.fetch(ctx, "navigation_links", navigationLinksQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
