package pages

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

type HeroSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    Image  `json:"image"`
}

// CategoryPreview pairs a design category with the project shown on hover.
type CategoryPreview struct {
	Name    string       `json:"name"`
	Project *ProjectLink `json:"project"`
}

type HomePage struct {
	SEO            SEO               `json:"seo"`
	Hero           []HeroSlide       `json:"hero"`
	RecentProjects []ProjectCard     `json:"recentProjects"`
	Categories     []CategoryPreview `json:"categories"`
}

func (a *Assembler) Home(ctx context.Context) (*HomePage, error) {
	var (
		settings   *domain.SiteSettings
		slides     []domain.ShowreelSlide
		recent     []domain.ProjectSummary
		categories []domain.DesignCategory
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, "home_settings", &settings, a.src.SiteSettings)
	fetch(gctx, g, "home_slides", &slides, a.src.ShowreelSlides)
	fetch(gctx, g, "home_recent", &recent, func(ctx context.Context) ([]domain.ProjectSummary, error) {
		return a.src.RecentProjects(ctx, 0)
	})
	fetch(gctx, g, "home_categories", &categories, a.src.DesignCategories)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &HomePage{
		SEO:            a.seo("", "", nil, settings),
		Hero:           a.heroSlides(slides, settings),
		RecentProjects: a.cards(recent, cardSize),
		Categories:     a.categoryPreviews(categories, recent),
	}, nil
}

// heroSlides picks the first non-empty source: showreel slides, the settings'
// hero images, the settings' background image, then a single built-in slide.
func (a *Assembler) heroSlides(slides []domain.ShowreelSlide, settings *domain.SiteSettings) []HeroSlide {
	site := a.siteFields(settings)
	title := site.Get("heroTitle")

	if len(slides) > 0 {
		out := make([]HeroSlide, 0, len(slides))
		for _, s := range slides {
			out = append(out, HeroSlide{ID: s.ID, Title: s.Title, Subtitle: s.Subtitle, Image: a.image(s.Image, heroSize)})
		}
		return out
	}

	if settings != nil && len(settings.HeroImages) > 0 {
		out := make([]HeroSlide, 0, len(settings.HeroImages))
		for i := range settings.HeroImages {
			img := settings.HeroImages[i]
			out = append(out, HeroSlide{
				ID:       fmt.Sprintf("hero-img-%d", i),
				Title:    title,
				Subtitle: Resolve(settings.HeroSubtitle, img.Caption, a.defaults.Site["heroSubtitle"]),
				Image:    a.image(&img, heroSize),
			})
		}
		return out
	}

	if settings != nil && settings.HeroBackgroundImage != nil {
		return []HeroSlide{{
			ID:       "hero-bg",
			Title:    title,
			Subtitle: site.Get("heroSubtitle"),
			Image:    a.image(settings.HeroBackgroundImage, heroSize),
		}}
	}

	return []HeroSlide{{
		ID:       "1",
		Title:    a.defaults.Site["heroTitle"],
		Subtitle: a.defaults.Site["heroSubtitle"],
	}}
}

func (a *Assembler) categoryNames(categories []domain.DesignCategory) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return ResolveList(names, a.defaults.DesignCategories)
}

func (a *Assembler) categoryPreviews(categories []domain.DesignCategory, projects []domain.ProjectSummary) []CategoryPreview {
	names := a.categoryNames(categories)
	out := make([]CategoryPreview, 0, len(names))
	for _, name := range names {
		preview := CategoryPreview{Name: name}
		if p := ProjectForCategory(name, projects); p != nil {
			preview.Project = &ProjectLink{
				Name:  p.Name,
				Slug:  p.Slug,
				Path:  "/work/" + p.Slug,
				Image: a.image(p.MainImage, previewSize),
			}
		}
		out = append(out, preview)
	}
	return out
}

// ProjectForCategory returns the first project with a tag containing the
// category (case-insensitive), else the first project, else nil.
func ProjectForCategory(category string, projects []domain.ProjectSummary) *domain.ProjectSummary {
	needle := strings.ToLower(category)
	for i := range projects {
		for _, tag := range projects[i].Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return &projects[i]
			}
		}
	}
	if len(projects) > 0 {
		return &projects[0]
	}
	return nil
}
