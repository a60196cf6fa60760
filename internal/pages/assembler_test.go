package pages

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/imageurl"
)

type fakeSource struct {
	err        error
	settings   *domain.SiteSettings
	pages      map[domain.PageType]domain.PageDocument
	projects   []domain.ProjectSummary
	detail     *domain.ProjectDetail
	slides     []domain.ShowreelSlide
	team       []domain.TeamMember
	services   []domain.Service
	categories []domain.DesignCategory
	social     []domain.SocialLink
	options    *domain.FormOptions
	navigation []domain.NavigationLink
}

func result[T any](ctx context.Context, f *fakeSource, v T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if f.err != nil {
		return zero, f.err
	}
	return v, nil
}

func (f *fakeSource) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return result(ctx, f, f.settings)
}
func (f *fakeSource) Page(ctx context.Context, t domain.PageType) (domain.PageDocument, error) {
	return result(ctx, f, f.pages[t])
}
func (f *fakeSource) AllProjects(ctx context.Context) ([]domain.ProjectSummary, error) {
	return result(ctx, f, f.projects)
}
func (f *fakeSource) RecentProjects(ctx context.Context, limit int) ([]domain.ProjectSummary, error) {
	return result(ctx, f, f.projects)
}
func (f *fakeSource) ProjectBySlug(ctx context.Context, slug string) (*domain.ProjectDetail, error) {
	return result(ctx, f, f.detail)
}
func (f *fakeSource) ShowreelSlides(ctx context.Context) ([]domain.ShowreelSlide, error) {
	return result(ctx, f, f.slides)
}
func (f *fakeSource) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return result(ctx, f, f.team)
}
func (f *fakeSource) Services(ctx context.Context) ([]domain.Service, error) {
	return result(ctx, f, f.services)
}
func (f *fakeSource) DesignCategories(ctx context.Context) ([]domain.DesignCategory, error) {
	return result(ctx, f, f.categories)
}
func (f *fakeSource) SocialLinks(ctx context.Context) ([]domain.SocialLink, error) {
	return result(ctx, f, f.social)
}
func (f *fakeSource) FormOptions(ctx context.Context) (*domain.FormOptions, error) {
	return result(ctx, f, f.options)
}
func (f *fakeSource) NavigationLinks(ctx context.Context) ([]domain.NavigationLink, error) {
	return result(ctx, f, f.navigation)
}

func newAssembler(src Source) *Assembler {
	return NewAssembler(src, imageurl.New("proj", "production", ""), MustDefaults())
}

func ref(id string) *domain.ImageRef {
	return &domain.ImageRef{Asset: &domain.AssetRef{Ref: "image-" + id + "-100x100-jpg"}}
}

func TestPages_RenderDefaultsWhenStoreFails(t *testing.T) {
	a := newAssembler(&fakeSource{err: errors.New("store down")})
	ctx := context.Background()

	about, err := a.About(ctx)
	require.NoError(t, err)
	assert.Equal(t, "About Branfern", about.Copy["heroEyebrow"])
	assert.Equal(t, "Brand as Action", about.Copy["philosophyHeading"])
	assert.Equal(t, "READY TO MOVE WITH US • ", about.Copy["marqueeText"])
	assert.Empty(t, about.Team)
	assert.Equal(t, "Branfern", about.SEO.Title)
	assert.Equal(t, "We design the systems that power your brand.", about.SEO.Description)
	assert.Nil(t, about.SEO.Image)

	contact, err := a.Contact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Follow Us", contact.Copy["socialHeading"])
	assert.Equal(t, "branfern@gmail.com", contact.Contact.Email)
	assert.Equal(t, "mailto:branfern@gmail.com", contact.Contact.MailTo)
	assert.Equal(t, "Mawanella, Sri Lanka", contact.Contact.Location)

	work, err := a.Work(ctx)
	require.NoError(t, err)
	assert.True(t, work.Empty)
	assert.Nil(t, work.Featured)
	assert.Equal(t, "No projects available yet.", work.Copy["noProjectsText"])

	review, err := a.BrandReview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, review.SessionDuration)
	assert.True(t, strings.HasPrefix(review.Copy["heroDescription"], "Our Brand Review is a 120-minute strategic session"))
	assert.Equal(t, []string{"Step 1 of 3", "Step 2 of 3", "Step 3 of 3"}, review.StepTitles)
	assert.Equal(t, "IST (GMT +5:30)", review.Timezone)
	assert.Len(t, review.Options.Services, 6)
	assert.Equal(t, []string{"7:30 PM - 8:30 PM", "8:30 PM - 9:30 PM", "9:30 PM - 10:30 PM"}, review.Options.TimeSlots)
	assert.Equal(t, "$50,000+", review.Options.Budgets[4])

	home, err := a.Home(ctx)
	require.NoError(t, err)
	require.Len(t, home.Hero, 1)
	assert.Equal(t, "BRANFERN", home.Hero[0].Title)
	assert.Equal(t, "design studio", home.Hero[0].Subtitle)
	assert.Nil(t, home.Hero[0].Image.URL)
	assert.Len(t, home.Categories, 12)
	assert.Nil(t, home.Categories[0].Project)

	shell, err := a.Shell(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Branfern", shell.CompanyName)
	assert.Equal(t, "HOME", shell.Nav[0].Label)
	assert.Equal(t, "CONTACT", shell.Nav[4].Label)
	assert.Equal(t, "We Design", shell.Footer.OverlayTitle)
	assert.Equal(t, "Scroll Up", shell.Footer.ScrollTopText)
	assert.Equal(t, "/work", shell.Menu[0].Path)
	assert.Empty(t, shell.Social)
}

func TestPages_FetchedValuesWin(t *testing.T) {
	src := &fakeSource{
		settings: &domain.SiteSettings{CompanyName: "Acme Studio", Email: "hi@acme.co", NavHomeLabel: "START"},
		pages: map[domain.PageType]domain.PageDocument{
			domain.PageAbout: {"heroEyebrow": "Who we are", "seoTitle": "About Acme", "extraField": "kept"},
		},
	}
	a := newAssembler(src)

	about, err := a.About(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Who we are", about.Copy["heroEyebrow"])
	assert.Equal(t, "The Team", about.Copy["teamEyebrow"])
	assert.Equal(t, "kept", about.Copy["extraField"])
	assert.Equal(t, "About Acme", about.SEO.Title)

	shell, err := a.Shell(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "START", shell.Nav[0].Label)
	assert.Equal(t, "Acme Studio", shell.CompanyName)
	assert.Equal(t, "Acme Studio", shell.SEO.Title)
	assert.Equal(t, "hi@acme.co", shell.Contact.Email)
}

func TestSEO_Chain(t *testing.T) {
	a := newAssembler(&fakeSource{})

	s := a.seo("", "", nil, &domain.SiteSettings{SEODefaultTitle: "Default", CompanyName: "Co", SEODefaultImage: ref("def")})
	assert.Equal(t, "Default", s.Title)
	require.NotNil(t, s.Image)
	assert.Equal(t, "https://cdn.sanity.io/images/proj/production/def-100x100.jpg?h=630&w=1200", *s.Image)

	s = a.seo("Page", "Desc", ref("page"), nil)
	assert.Equal(t, "Page", s.Title)
	assert.Equal(t, "Desc", s.Description)
	assert.Contains(t, *s.Image, "/page-100x100.jpg")
}

func TestHeroSlides_FallbackChain(t *testing.T) {
	a := newAssembler(&fakeSource{})

	slides := a.heroSlides([]domain.ShowreelSlide{{ID: "s1", Title: "Reel", Image: ref("reel")}}, &domain.SiteSettings{HeroImages: []domain.ImageRef{*ref("x")}})
	require.Len(t, slides, 1)
	assert.Equal(t, "Reel", slides[0].Title)
	assert.Contains(t, *slides[0].Image.URL, "w=1400")

	img := *ref("hero")
	img.Caption = "caption text"
	slides = a.heroSlides(nil, &domain.SiteSettings{HeroImages: []domain.ImageRef{img, *ref("hero2")}})
	require.Len(t, slides, 2)
	assert.Equal(t, "hero-img-0", slides[0].ID)
	assert.Equal(t, "BRANFERN", slides[0].Title)
	assert.Equal(t, "caption text", slides[0].Subtitle)
	assert.Equal(t, "design studio", slides[1].Subtitle)

	slides = a.heroSlides(nil, &domain.SiteSettings{HeroTitle: "ACME", HeroBackgroundImage: ref("bg")})
	require.Len(t, slides, 1)
	assert.Equal(t, "hero-bg", slides[0].ID)
	assert.Equal(t, "ACME", slides[0].Title)
	assert.NotNil(t, slides[0].Image.URL)
}

func TestProjectForCategory(t *testing.T) {
	projects := []domain.ProjectSummary{
		{Slug: "first", Tags: []string{"Web"}},
		{Slug: "burger", Tags: []string{"Food Chain Branding"}},
	}
	assert.Equal(t, "burger", ProjectForCategory("FOOD CHAIN", projects).Slug)
	assert.Equal(t, "first", ProjectForCategory("CINEMA", projects).Slug)
	assert.Nil(t, ProjectForCategory("CINEMA", nil))
}

func TestWork_FeaturedSplit(t *testing.T) {
	var projects []domain.ProjectSummary
	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		projects = append(projects, domain.ProjectSummary{Slug: slug, Name: strings.ToUpper(slug), MainImage: ref(slug)})
	}
	a := newAssembler(&fakeSource{projects: projects})

	work, err := a.Work(context.Background())
	require.NoError(t, err)
	require.NotNil(t, work.Featured)
	assert.Equal(t, "a", work.Featured.Slug)
	assert.Contains(t, *work.Featured.Image.URL, "h=800&w=1200")
	assert.Equal(t, "A", work.Featured.Image.Alt)
	require.Len(t, work.Highlights, 2)
	assert.Equal(t, "b", work.Highlights[0].Slug)
	assert.Contains(t, *work.Highlights[0].Image.URL, "h=600&w=800")
	require.Len(t, work.Projects, 2)
	assert.Equal(t, "/work/e", work.Projects[1].Path)
}

func TestBrandReview_DurationChain(t *testing.T) {
	src := &fakeSource{
		pages:   map[domain.PageType]domain.PageDocument{domain.PageBrandReview: {"sessionDuration": float64(90)}},
		options: &domain.FormOptions{SessionDuration: 60, TimeSlots: []string{"9:00 AM - 10:00 AM"}},
	}
	a := newAssembler(src)

	review, err := a.BrandReview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90, review.SessionDuration)
	assert.Contains(t, review.Copy["heroDescription"], "90-minute")
	assert.Equal(t, []string{"9:00 AM - 10:00 AM"}, review.Options.TimeSlots)

	src.pages = nil
	review, err = a.BrandReview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60, review.SessionDuration)

	slots, err := a.TimeSlots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM - 10:00 AM"}, slots)
}

func TestCaseStudy(t *testing.T) {
	src := &fakeSource{detail: &domain.ProjectDetail{
		ProjectSummary: domain.ProjectSummary{Name: "Acme", Slug: "acme", ShortDescription: "Short", MainImage: ref("main")},
		Date:           "2024-03-05",
		Gallery:        []domain.ImageRef{*ref("g1")},
		ContentSections: []domain.ContentSection{
			{Key: "k1", SectionType: domain.SectionGallery, Images: []domain.ImageRef{*ref("g2")}},
			{Key: "k2", SectionType: domain.SectionType("video")},
			{Key: "k3", SectionType: domain.SectionText, Content: []byte(`[{"_type":"block"}]`), Image: ref("ignored")},
		},
		Next: &domain.ProjectRef{Name: "Next", Slug: "next", MainImage: ref("n")},
	}}
	a := newAssembler(src)

	page, err := a.CaseStudy(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", page.SEO.Title)
	assert.Equal(t, "Short", page.SEO.Description)
	assert.Contains(t, *page.SEO.Image, "/main-100x100.jpg")
	assert.Equal(t, "March 5, 2024", page.DateLabel)
	assert.Equal(t, "Acme 1", page.Gallery[0].Alt)
	require.Len(t, page.Sections, 2)
	assert.Contains(t, *page.Sections[0].Images[0].URL, "h=600&w=800")
	assert.Nil(t, page.Sections[1].Image)
	assert.Nil(t, page.Prev)
	require.NotNil(t, page.Next)
	assert.Contains(t, *page.Next.Image.URL, "h=400&w=600")

	src.detail = nil
	_, err = a.CaseStudy(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	src.detail = &domain.ProjectDetail{ProjectSummary: domain.ProjectSummary{Name: "Acme", Slug: "acme"}}
	src.err = errors.New("store down")
	page, err = a.CaseStudy(context.Background(), "acme")
	assert.Nil(t, page)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPages_CancelledRequestDiscardsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newAssembler(&fakeSource{settings: &domain.SiteSettings{CompanyName: "Acme"}})
	page, err := a.Home(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, page)
}
