package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

type TeamMemberView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	Bio          string `json:"bio,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	Image        Image  `json:"image"`
}

type ServiceView struct {
	ID           string               `json:"id"`
	PillarNumber string               `json:"pillarNumber"`
	Heading      string               `json:"heading"`
	Description  string               `json:"description,omitempty"`
	Image        Image                `json:"image"`
	Cards        []domain.ServiceCard `json:"cards"`
}

type AboutPage struct {
	SEO      SEO               `json:"seo"`
	Copy     map[string]string `json:"copy"`
	Team     []TeamMemberView  `json:"team"`
	Services []ServiceView     `json:"services"`
}

func (a *Assembler) About(ctx context.Context) (*AboutPage, error) {
	var (
		settings *domain.SiteSettings
		doc      domain.PageDocument
		team     []domain.TeamMember
		services []domain.Service
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, "about_settings", &settings, a.src.SiteSettings)
	fetch(gctx, g, "about_page", &doc, a.page(domain.PageAbout))
	fetch(gctx, g, "about_team", &team, a.src.TeamMembers)
	fetch(gctx, g, "about_services", &services, a.src.Services)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &AboutPage{
		SEO:      a.pageSEO(doc, settings),
		Copy:     NewFields(doc, a.defaults.Page(domain.PageAbout)).All(),
		Team:     make([]TeamMemberView, 0, len(team)),
		Services: make([]ServiceView, 0, len(services)),
	}
	for _, m := range team {
		img := a.image(m.Image, portraitSize)
		img.Alt = Resolve(img.Alt, m.Name)
		page.Team = append(page.Team, TeamMemberView{
			ID:           m.ID,
			Name:         m.Name,
			Role:         m.Role,
			Bio:          m.Bio,
			InstagramURL: m.InstagramURL,
			Image:        img,
		})
	}
	for _, s := range services {
		cards := s.Cards
		if cards == nil {
			cards = []domain.ServiceCard{}
		}
		page.Services = append(page.Services, ServiceView{
			ID:           s.ID,
			PillarNumber: s.PillarNumber,
			Heading:      s.Heading,
			Description:  s.Description,
			Image:        a.image(s.Image, serviceSize),
			Cards:        cards,
		})
	}
	return page, nil
}
