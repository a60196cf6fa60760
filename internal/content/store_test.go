package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdatheek136/branfern/internal/content/domain"
)

type call struct {
	groq   string
	params map[string]any
}

// fakeQuerier answers with the first canned response whose key appears in the query.
type fakeQuerier struct {
	responses map[string]string
	err       error
	calls     []call
}

func (f *fakeQuerier) Query(_ context.Context, groq string, params map[string]any, out any) error {
	f.calls = append(f.calls, call{groq: groq, params: params})
	if f.err != nil {
		return f.err
	}
	for key, body := range f.responses {
		if strings.Contains(groq, key) {
			return json.Unmarshal([]byte(body), out)
		}
	}
	return nil
}

func TestRecentProjects_DefaultLimit(t *testing.T) {
	q := &fakeQuerier{}
	s := NewStore(q)

	_, err := s.RecentProjects(context.Background(), 0)
	require.NoError(t, err)
	_, err = s.RecentProjects(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, q.calls, 2)
	assert.Contains(t, q.calls[0].groq, "[0...6]")
	assert.Contains(t, q.calls[1].groq, "[0...3]")
	assert.Contains(t, q.calls[0].groq, "order(_createdAt desc)")
}

func TestAllProjects_Decodes(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{
		`_type == "project"`: `[
			{"_id":"p1","name":"Acme","slug":"acme","tags":["Branding"],"order":1,"_createdAt":"2024-03-01T10:00:00Z",
			 "mainImage":{"asset":{"_ref":"image-abc-800x600-jpg"}}},
			{"_id":"p2","name":"Beta","slug":"beta"}
		]`,
	}}
	projects, err := NewStore(q).AllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "acme", projects[0].Slug)
	require.NotNil(t, projects[0].Order)
	assert.Equal(t, float64(1), *projects[0].Order)
	assert.Equal(t, "image-abc-800x600-jpg", projects[0].MainImage.AssetID())
	assert.Nil(t, projects[1].Order)
	assert.Contains(t, q.calls[0].groq, "order(order asc, _createdAt desc)")
}

func TestProjectBySlug_Neighbours(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{
		"slug.current == $slug": `{
			"_id":"p2","name":"Middle","slug":"middle",
			"contentSections":[{"_key":"k1","sectionType":"textImage","heading":"Intro"}],
			"prevProject":{"name":"Older","slug":"older"},
			"nextProject":null
		}`,
	}}
	detail, err := NewStore(q).ProjectBySlug(context.Background(), "middle")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Middle", detail.Name)
	require.NotNil(t, detail.Prev)
	assert.Equal(t, "older", detail.Prev.Slug)
	assert.Nil(t, detail.Next)
	assert.Equal(t, domain.SectionTextImage, detail.ContentSections[0].SectionType)
	assert.Equal(t, map[string]any{"slug": "middle"}, q.calls[0].params)
}

func TestProjectBySlug_NotFoundIsNil(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{"slug.current": `null`}}
	detail, err := NewStore(q).ProjectBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestProjectBySlug_InvalidSlugSkipsQuery(t *testing.T) {
	q := &fakeQuerier{}
	detail, err := NewStore(q).ProjectBySlug(context.Background(), `x"]{...}`)
	require.NoError(t, err)
	assert.Nil(t, detail)
	assert.Empty(t, q.calls)
}

func TestSingletons_NilWhenAbsent(t *testing.T) {
	s := NewStore(&fakeQuerier{})
	ctx := context.Background()

	settings, err := s.SiteSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)

	opts, err := s.FormOptions(ctx)
	require.NoError(t, err)
	assert.Nil(t, opts)

	page, err := s.PageAbout(ctx)
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestPage_UsesTypeParameter(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{"$type": `{"heroTitle":"Work!"}`}}
	page, err := NewStore(q).PageWork(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Work!", page.Text("heroTitle"))
	assert.Equal(t, map[string]any{"type": "pageWork"}, q.calls[0].params)

	_, err = NewStore(q).Page(context.Background(), domain.PageType("pageBlog"))
	assert.Error(t, err)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := NewStore(&fakeQuerier{err: boom}).Services(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "services")
}

func TestSocialLinksAndServices(t *testing.T) {
	q := &fakeQuerier{responses: map[string]string{
		`"socialLink"`: `[{"_id":"s1","platform":"TikTok","url":"https://tiktok.com/@b"}]`,
		`"service"`:    `[{"_id":"sv1","pillarNumber":"01","heading":"Digital","cards":[{"title":"Web"}]}]`,
	}}
	s := NewStore(q)

	links, err := s.SocialLinks(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "music", links[0].Icon())

	services, err := s.Services(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Web", services[0].Cards[0].Title)
}
