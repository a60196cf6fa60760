package pages

import (
	"github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/imageurl"
)

// Image is an image as served to templates: the URL is already resolved,
// nil when there is nothing to show.
type Image struct {
	URL     *string `json:"url"`
	Alt     string  `json:"alt,omitempty"`
	Caption string  `json:"caption,omitempty"`
}

type ProjectCard struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Path             string   `json:"path"`
	Category         string   `json:"category,omitempty"`
	Tags             []string `json:"tags"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Image            Image    `json:"image"`
}

type ProjectLink struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Path  string `json:"path"`
	Image Image  `json:"image"`
}

// SEO is the resolved metadata block of a page.
type SEO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	SiteName    string  `json:"siteName,omitempty"`
}

var (
	cardSize      = imageurl.Options{Width: 800, Height: 600, Fit: imageurl.FitCrop}
	featuredSize  = imageurl.Options{Width: 1200, Height: 800, Fit: imageurl.FitCrop}
	heroSize      = imageurl.Options{Width: 1400, Height: 583, Fit: imageurl.FitCrop}
	previewSize   = imageurl.Options{Width: 400, Height: 300, Fit: imageurl.FitCrop}
	seoSize       = imageurl.Options{Width: 1200, Height: 630}
	sectionSize   = imageurl.Options{Width: 1400, Height: 800, Fit: imageurl.FitCrop}
	gallerySize   = imageurl.Options{Width: 800, Height: 600, Fit: imageurl.FitCrop}
	neighbourSize = imageurl.Options{Width: 600, Height: 400, Fit: imageurl.FitCrop}
	serviceSize   = imageurl.Options{Width: 1400, Height: 220, Fit: imageurl.FitCrop}
	portraitSize  = imageurl.Options{Width: 300, Height: 300, Fit: imageurl.FitCrop}
)

func (a *Assembler) image(ref *domain.ImageRef, opts imageurl.Options) Image {
	img := Image{URL: a.images.URLFor(ref, opts)}
	if ref != nil {
		img.Alt = ref.Alt
		img.Caption = ref.Caption
	}
	return img
}

func (a *Assembler) card(p domain.ProjectSummary, size imageurl.Options) ProjectCard {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	img := a.image(p.MainImage, size)
	if img.Alt == "" {
		img.Alt = p.Name
	}
	return ProjectCard{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Path:             "/work/" + p.Slug,
		Category:         p.Category,
		Tags:             tags,
		ShortDescription: p.ShortDescription,
		Image:            img,
	}
}

func (a *Assembler) cards(projects []domain.ProjectSummary, size imageurl.Options) []ProjectCard {
	out := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		out = append(out, a.card(p, size))
	}
	return out
}

func (a *Assembler) projectLink(ref *domain.ProjectRef) *ProjectLink {
	if ref == nil || ref.Slug == "" {
		return nil
	}
	return &ProjectLink{
		Name:  ref.Name,
		Slug:  ref.Slug,
		Path:  "/work/" + ref.Slug,
		Image: a.image(ref.MainImage, neighbourSize),
	}
}
