package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/imageurl"
	"github.com/mhdatheek136/branfern/internal/logging"
	"github.com/mhdatheek136/branfern/internal/pages"
)

// Handler bundles the dependencies for page endpoints.
type Handler struct {
	assembler *pages.Assembler
	images    *imageurl.Builder
}

func New(assembler *pages.Assembler, images *imageurl.Builder) *Handler {
	return &Handler{assembler: assembler, images: images}
}

// render writes a page or maps the assembly error to a status.
func render[T any](c *gin.Context, key string, build func(context.Context) (T, error)) {
	ctx := c.Request.Context()
	page, err := build(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// client went away; nothing useful to send
			c.Status(499)
		default:
			logging.NewLogger(ctx).LogError("render_"+key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load page"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, key: page})
}

func (h *Handler) shell(c *gin.Context) {
	render(c, "shell", h.assembler.Shell)
}

func (h *Handler) home(c *gin.Context) {
	render(c, "page", h.assembler.Home)
}

func (h *Handler) about(c *gin.Context) {
	render(c, "page", h.assembler.About)
}

func (h *Handler) contact(c *gin.Context) {
	render(c, "page", h.assembler.Contact)
}

func (h *Handler) work(c *gin.Context) {
	render(c, "page", h.assembler.Work)
}

func (h *Handler) brandReview(c *gin.Context) {
	render(c, "page", h.assembler.BrandReview)
}

func (h *Handler) caseStudy(c *gin.Context) {
	slug := c.Param("slug")
	render(c, "page", func(ctx context.Context) (*pages.CaseStudyPage, error) {
		return h.assembler.CaseStudy(ctx, slug)
	})
}

// image redirects to the sized CDN URL of a stored image reference.
func (h *Handler) image(c *gin.Context) {
	opts := imageurl.Options{
		Width:  queryInt(c, "w"),
		Height: queryInt(c, "h"),
		Fit:    imageurl.Fit(c.Query("fit")),
	}
	u, ok := h.images.URLForRef(c.Query("ref"), opts)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "image not found"})
		return
	}
	c.Redirect(http.StatusFound, u)
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
