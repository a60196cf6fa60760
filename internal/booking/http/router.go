package http

import "github.com/gin-gonic/gin"

// Register attaches the brand review booking routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	drafts := rg.Group("/brand-review/drafts")
	drafts.POST("", h.start)
	drafts.GET("/:id", h.get)
	drafts.PATCH("/:id", h.update)
	drafts.DELETE("/:id", h.discard)
	drafts.POST("/:id/next", h.next)
	drafts.POST("/:id/back", h.back)
	drafts.POST("/:id/date", h.selectDate)
	drafts.POST("/:id/time-slot", h.selectTimeSlot)
	drafts.POST("/:id/submit", h.limiter.Middleware(), h.submit)
}
