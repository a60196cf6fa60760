package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

// WorkPage lays projects out as one featured card, two highlights, then the rest.
type WorkPage struct {
	SEO        SEO               `json:"seo"`
	Copy       map[string]string `json:"copy"`
	Empty      bool              `json:"empty"`
	Featured   *ProjectCard      `json:"featured"`
	Highlights []ProjectCard     `json:"highlights"`
	Projects   []ProjectCard     `json:"projects"`
}

func (a *Assembler) Work(ctx context.Context) (*WorkPage, error) {
	var (
		settings *domain.SiteSettings
		doc      domain.PageDocument
		projects []domain.ProjectSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, "work_settings", &settings, a.src.SiteSettings)
	fetch(gctx, g, "work_page", &doc, a.page(domain.PageWork))
	fetch(gctx, g, "work_projects", &projects, a.src.AllProjects)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &WorkPage{
		SEO:        a.pageSEO(doc, settings),
		Copy:       NewFields(doc, a.defaults.Page(domain.PageWork)).All(),
		Empty:      len(projects) == 0,
		Highlights: []ProjectCard{},
		Projects:   []ProjectCard{},
	}
	if page.Empty {
		return page, nil
	}

	featured := a.card(projects[0], featuredSize)
	page.Featured = &featured
	rest := projects[1:]
	n := min(2, len(rest))
	page.Highlights = a.cards(rest[:n], cardSize)
	page.Projects = a.cards(rest[n:], cardSize)
	return page, nil
}
