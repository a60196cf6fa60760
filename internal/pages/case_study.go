package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

type SectionView struct {
	Key     string             `json:"key"`
	Type    domain.SectionType `json:"type"`
	Heading string             `json:"heading,omitempty"`
	Content json.RawMessage    `json:"content,omitempty"`
	Image   *Image             `json:"image,omitempty"`
	Images  []Image            `json:"images,omitempty"`
}

type CaseStudyPage struct {
	SEO              SEO             `json:"seo"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Category         string          `json:"category,omitempty"`
	Tags             []string        `json:"tags"`
	Date             string          `json:"date,omitempty"`
	DateLabel        string          `json:"dateLabel,omitempty"`
	Location         string          `json:"location,omitempty"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	FullDescription  json.RawMessage `json:"fullDescription,omitempty"`
	MainImage        Image           `json:"mainImage"`
	Gallery          []Image         `json:"gallery"`
	Sections         []SectionView   `json:"sections"`
	Prev             *ProjectLink    `json:"prev"`
	Next             *ProjectLink    `json:"next"`
}

// CaseStudy assembles one project page. It returns domain.ErrNotFound when
// the slug matches nothing or the project could not be loaded.
func (a *Assembler) CaseStudy(ctx context.Context, slug string) (*CaseStudyPage, error) {
	var settings *domain.SiteSettings
	var project *domain.ProjectDetail

	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, "case_study_settings", &settings, a.src.SiteSettings)
	fetch(gctx, g, "case_study_project", &project, func(ctx context.Context) (*domain.ProjectDetail, error) {
		return a.src.ProjectBySlug(ctx, slug)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	tags := project.Tags
	if tags == nil {
		tags = []string{}
	}
	page := &CaseStudyPage{
		SEO: a.seo(
			Resolve(project.SEOTitle, project.Name),
			Resolve(project.SEODescription, project.ShortDescription),
			firstImage(project.SEOImage, project.MainImage),
			settings,
		),
		Name:             project.Name,
		Slug:             project.Slug,
		Category:         project.Category,
		Tags:             tags,
		Date:             project.Date,
		DateLabel:        FormatDate(project.Date),
		Location:         project.Location,
		ShortDescription: project.ShortDescription,
		FullDescription:  project.FullDescription,
		MainImage:        a.image(project.MainImage, sectionSize),
		Gallery:          make([]Image, 0, len(project.Gallery)),
		Sections:         make([]SectionView, 0, len(project.ContentSections)),
		Prev:             a.projectLink(project.Prev),
		Next:             a.projectLink(project.Next),
	}
	if page.MainImage.Alt == "" {
		page.MainImage.Alt = project.Name
	}

	for i := range project.Gallery {
		img := a.image(&project.Gallery[i], sectionSize)
		if img.Alt == "" {
			img.Alt = fmt.Sprintf("%s %d", project.Name, i+1)
		}
		page.Gallery = append(page.Gallery, img)
	}

	for _, s := range project.ContentSections {
		if !s.SectionType.Valid() {
			continue
		}
		view := SectionView{Key: s.Key, Type: s.SectionType, Heading: s.Heading}
		if s.SectionType.HasText() {
			view.Content = s.Content
		}
		if s.SectionType.HasImage() && s.Image != nil {
			img := a.image(s.Image, sectionSize)
			view.Image = &img
		}
		if s.SectionType == domain.SectionGallery {
			for i := range s.Images {
				view.Images = append(view.Images, a.image(&s.Images[i], gallerySize))
			}
		}
		page.Sections = append(page.Sections, view)
	}
	return page, nil
}

func firstImage(images ...*domain.ImageRef) *domain.ImageRef {
	for _, img := range images {
		if img.AssetID() != "" {
			return img
		}
	}
	return nil
}

// FormatDate renders an ISO date as "January 2, 2006"; unparseable input is returned as is.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return date
}
