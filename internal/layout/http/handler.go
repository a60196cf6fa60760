package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhdatheek136/branfern/internal/layout"
)

// StateRequest carries the client's current state, its layout and an optional action.
type StateRequest struct {
	Path     string          `json:"path"`
	MenuOpen bool            `json:"menuOpen"`
	Overlay  layout.Overlay  `json:"overlay"`
	Geometry layout.Geometry `json:"geometry"`
	Action   layout.Action   `json:"action" binding:"omitempty,oneof=toggleMenu closeMenu toggleOverlay closeOverlay clickOutside hover"`
	Category string          `json:"category"`
}

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// Register attaches the UI state route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/ui/state", h.state)
}

func (h *Handler) state(c *gin.Context) {
	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if req.Geometry.ScrollY < 0 || req.Geometry.ViewportHeight < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "geometry must not be negative"})
		return
	}
	if req.Overlay.From != "" && !req.Overlay.From.Valid() {
		req.Overlay.From = ""
	}

	s := layout.UIState{
		Home:     req.Path == "" || req.Path == "/",
		MenuOpen: req.MenuOpen,
		Overlay:  req.Overlay,
	}
	s.Recompute(req.Geometry)
	if err := s.Apply(req.Action, req.Category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "state": s})
}
