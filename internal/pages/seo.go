package pages

import "github.com/mhdatheek136/branfern/internal/content/domain"

// seo resolves a page's metadata: page value, then site default, then built-in.
func (a *Assembler) seo(title, description string, image *domain.ImageRef, settings *domain.SiteSettings) SEO {
	var s domain.SiteSettings
	if settings != nil {
		s = *settings
	}

	out := SEO{
		Title:       Resolve(title, s.SEODefaultTitle, s.CompanyName, a.defaults.SEO.Title),
		Description: Resolve(description, s.SEODefaultDescription, a.defaults.SEO.Description),
		SiteName:    s.CompanyName,
	}
	if image.AssetID() != "" {
		out.Image = a.images.URLFor(image, seoSize)
	}
	if out.Image == nil {
		out.Image = a.images.URLFor(s.SEODefaultImage, seoSize)
	}
	return out
}

func (a *Assembler) pageSEO(doc domain.PageDocument, settings *domain.SiteSettings) SEO {
	return a.seo(doc.Text("seoTitle"), doc.Text("seoDescription"), doc.Image("seoImage"), settings)
}
