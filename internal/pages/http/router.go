package http

import "github.com/gin-gonic/gin"

// Register attaches page routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/shell", h.shell)
	rg.GET("/pages/home", h.home)
	rg.GET("/pages/about", h.about)
	rg.GET("/pages/contact", h.contact)
	rg.GET("/pages/work", h.work)
	rg.GET("/pages/brand-review", h.brandReview)
	rg.GET("/work/:slug", h.caseStudy)
	rg.GET("/images", h.image)
}
