package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/imageurl"
	"github.com/mhdatheek136/branfern/internal/pages"
)

// emptySource is a content store with nothing published except an optional project.
type emptySource struct {
	project *domain.ProjectDetail
}

func (emptySource) SiteSettings(context.Context) (*domain.SiteSettings, error) { return nil, nil }
func (emptySource) Page(context.Context, domain.PageType) (domain.PageDocument, error) {
	return nil, nil
}
func (emptySource) AllProjects(context.Context) ([]domain.ProjectSummary, error) { return nil, nil }
func (emptySource) RecentProjects(context.Context, int) ([]domain.ProjectSummary, error) {
	return nil, nil
}
func (s emptySource) ProjectBySlug(_ context.Context, slug string) (*domain.ProjectDetail, error) {
	if s.project != nil && s.project.Slug == slug {
		return s.project, nil
	}
	return nil, nil
}
func (emptySource) ShowreelSlides(context.Context) ([]domain.ShowreelSlide, error) { return nil, nil }
func (emptySource) TeamMembers(context.Context) ([]domain.TeamMember, error)       { return nil, nil }
func (emptySource) Services(context.Context) ([]domain.Service, error)             { return nil, nil }
func (emptySource) DesignCategories(context.Context) ([]domain.DesignCategory, error) {
	return nil, nil
}
func (emptySource) SocialLinks(context.Context) ([]domain.SocialLink, error) { return nil, nil }
func (emptySource) FormOptions(context.Context) (*domain.FormOptions, error) { return nil, nil }
func (emptySource) NavigationLinks(context.Context) ([]domain.NavigationLink, error) {
	return nil, nil
}

func setupRouter(src pages.Source) *gin.Engine {
	gin.SetMode(gin.TestMode)
	images := imageurl.New("proj", "production", "")
	h := New(pages.NewAssembler(src, images, pages.MustDefaults()), images)
	r := gin.New()
	h.Register(r.Group("/api/v1"))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestPageRoutesRenderWithEmptyStore(t *testing.T) {
	r := setupRouter(emptySource{})
	for _, path := range []string{
		"/api/v1/shell",
		"/api/v1/pages/home",
		"/api/v1/pages/about",
		"/api/v1/pages/contact",
		"/api/v1/pages/work",
		"/api/v1/pages/brand-review",
	} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), path)
		assert.Equal(t, true, body["ok"], path)
	}
}

func TestCaseStudyRoute(t *testing.T) {
	r := setupRouter(emptySource{project: &domain.ProjectDetail{
		ProjectSummary: domain.ProjectSummary{Name: "Acme", Slug: "acme"},
	}})

	w := get(r, "/api/v1/work/acme")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		OK   bool                `json:"ok"`
		Page pages.CaseStudyPage `json:"page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Acme", body.Page.SEO.Title)

	w = get(r, "/api/v1/work/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImageRedirect(t *testing.T) {
	r := setupRouter(emptySource{})

	w := get(r, "/api/v1/images?ref=image-abc-800x600-jpg&w=400&h=300&fit=crop")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://cdn.sanity.io/images/proj/production/abc-800x600.jpg?fit=crop&h=300&w=400", w.Header().Get("Location"))

	w = get(r, "/api/v1/images?ref=&w=400")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
