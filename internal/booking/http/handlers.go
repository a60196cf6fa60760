package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhdatheek136/branfern/internal/booking/domain"
	"github.com/mhdatheek136/branfern/internal/booking/service"
	"github.com/mhdatheek136/branfern/internal/logging"
)

type Handler struct {
	svc     *service.BookingService
	limiter *IPRateLimiter
}

// New builds the booking handler. limiter may be nil to disable submit throttling.
func New(svc *service.BookingService, limiter *IPRateLimiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

func (h *Handler) respond(c *gin.Context, status int, d *domain.Draft) {
	slots := h.svc.AvailableTimeSlots(c.Request.Context(), d)
	c.JSON(status, gin.H{"ok": status < 400, "draft": toResponse(d, slots)})
}

// fail maps a booking error to a status. When the draft is known it is echoed
// back so the form can keep its state.
func (h *Handler) fail(c *gin.Context, op string, d *domain.Draft, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
		return
	case errors.As(err, &verr):
		body := gin.H{"ok": false, "error": err.Error(), "fields": verr.Fields}
		if d != nil {
			body["draft"] = toResponse(d, h.svc.AvailableTimeSlots(c.Request.Context(), d))
		}
		c.JSON(http.StatusBadRequest, body)
		return
	case errors.Is(err, domain.ErrSubmitInProgress),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrDraftLocked):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
		return
	case service.IsClientError(err):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	logging.NewLogger(c.Request.Context()).LogError(op, err)
	status := http.StatusInternalServerError
	if d != nil && d.Phase == domain.PhaseError {
		// the write was attempted (or refused for lack of credentials)
		status = http.StatusBadGateway
		if errors.Is(err, domain.ErrMissingWriteToken) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok":    false,
			"error": d.Error,
			"draft": toResponse(d, h.svc.AvailableTimeSlots(c.Request.Context(), d)),
		})
		return
	}
	c.JSON(status, gin.H{"ok": false, "error": "booking request failed"})
}

func (h *Handler) start(c *gin.Context) {
	d, err := h.svc.Start(c.Request.Context())
	if err != nil {
		h.fail(c, "start_draft", nil, err)
		return
	}
	h.respond(c, http.StatusCreated, d)
}

func (h *Handler) get(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_draft", nil, err)
		return
	}
	h.respond(c, http.StatusOK, d)
}

func (h *Handler) update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}
	d, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, "update_draft", d, err)
		return
	}
	h.respond(c, http.StatusOK, d)
}

func (h *Handler) next(c *gin.Context) {
	d, err := h.svc.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "next_step", d, err)
		return
	}
	h.respond(c, http.StatusOK, d)
}

func (h *Handler) back(c *gin.Context) {
	d, err := h.svc.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "previous_step", d, err)
		return
	}
	h.respond(c, http.StatusOK, d)
}

func (h *Handler) selectDate(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "date is required"})
		return
	}
	d, err := h.svc.SelectDate(c.Request.Context(), c.Param("id"), req.Date)
	if err != nil {
		h.fail(c, "select_date", d, err)
		return
	}
	h.respond(c, http.StatusOK, d)
}

func (h *Handler) selectTimeSlot(c *gin.Context) {
	var req SelectTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "timeSlot is required"})
		return
	}
	d, err := h.svc.SelectTimeSlot(c.Request.Context(), c.Param("id"), req.TimeSlot)
	if err != nil {
		h.fail(c, "select_time_slot", d, err)
		return
	}
	h.respond(c, http.StatusOK, d)
}

func (h *Handler) submit(c *gin.Context) {
	d, err := h.svc.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "submit_booking", d, err)
		return
	}
	h.respond(c, http.StatusCreated, d)
}

func (h *Handler) discard(c *gin.Context) {
	if err := h.svc.Discard(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "discard_draft", nil, err)
		return
	}
	c.Status(http.StatusNoContent)
}
