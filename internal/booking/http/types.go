package http

import "github.com/mhdatheek136/branfern/internal/booking/domain"

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeSlotRequest struct {
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// DraftResponse is the client view of a draft.
type DraftResponse struct {
	ID                 string        `json:"id"`
	Step               int           `json:"step"`
	Phase              domain.Phase  `json:"phase"`
	Fields             domain.Fields `json:"fields"`
	AvailableTimeSlots []string      `json:"availableTimeSlots"`
	Error              string        `json:"error,omitempty"`
	DocumentID         string        `json:"documentId,omitempty"`
	ScrollToTop        bool          `json:"scrollToTop,omitempty"`
}

func toResponse(d *domain.Draft, slots []string) DraftResponse {
	return DraftResponse{
		ID:                 d.ID,
		Step:               d.Step(),
		Phase:              d.Phase,
		Fields:             d.Fields,
		AvailableTimeSlots: slots,
		Error:              d.Error,
		DocumentID:         d.DocumentID,
		ScrollToTop:        d.Phase == domain.PhaseSuccess,
	}
}
