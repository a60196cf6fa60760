package sitemap

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/logging"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// StaticRoutes are the site routes that exist regardless of content.
var StaticRoutes = []string{"/", "/work", "/about", "/contact", "/brand-review"}

// ProjectLister returns every published project. *content.Store satisfies it.
type ProjectLister interface {
	AllProjects(ctx context.Context) ([]domain.ProjectSummary, error)
}

// Cache shares a rendered sitemap between processes.
type Cache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, doc []byte) error
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Generator renders and holds the current sitemap.
type Generator struct {
	projects ProjectLister
	baseURL  string
	cache    Cache

	mu  sync.RWMutex
	doc []byte
}

// NewGenerator builds a generator for baseURL. cache may be nil.
func NewGenerator(projects ProjectLister, baseURL string, cache Cache) *Generator {
	return &Generator{
		projects: projects,
		baseURL:  strings.TrimRight(baseURL, "/"),
		cache:    cache,
	}
}

// Build renders the sitemap from the current project list.
func (g *Generator) Build(ctx context.Context) ([]byte, error) {
	projects, err := g.projects.AllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	domain.SortProjects(projects)

	set := urlSet{Xmlns: xmlns}
	for _, route := range StaticRoutes {
		set.URLs = append(set.URLs, url{Loc: g.baseURL + route})
	}
	for _, p := range projects {
		if !domain.ValidSlug(p.Slug) {
			continue
		}
		u := url{Loc: g.baseURL + "/work/" + p.Slug}
		if !p.CreatedAt.IsZero() {
			u.LastMod = p.CreatedAt.UTC().Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Refresh rebuilds the sitemap and publishes it locally and to the cache.
func (g *Generator) Refresh(ctx context.Context) error {
	logger := logging.NewLogger(ctx)
	doc, err := g.Build(ctx)
	if err != nil {
		logger.LogError("refresh_sitemap", err)
		return err
	}

	g.mu.Lock()
	g.doc = doc
	g.mu.Unlock()

	if g.cache != nil {
		if err := g.cache.Set(ctx, doc); err != nil {
			logger.LogWarnf("refresh_sitemap", "cache write failed: %v", err)
		}
	}
	logger.LogInfof("refresh_sitemap", "sitemap refreshed (%d bytes)", len(doc))
	return nil
}

// Sitemap returns the newest rendered sitemap, building one on first use.
func (g *Generator) Sitemap(ctx context.Context) ([]byte, error) {
	if g.cache != nil {
		doc, err := g.cache.Get(ctx)
		if err == nil && len(doc) > 0 {
			return doc, nil
		}
		if err != nil && !errors.Is(err, ErrCacheMiss) {
			logging.NewLogger(ctx).LogWarnf("sitemap", "cache read failed: %v", err)
		}
	}

	g.mu.RLock()
	doc := g.doc
	g.mu.RUnlock()
	if doc != nil {
		return doc, nil
	}

	if err := g.Refresh(ctx); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.doc, nil
}
