package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mhdatheek136/branfern/internal/booking/domain"
	content "github.com/mhdatheek136/branfern/internal/content/domain"
	"github.com/mhdatheek136/branfern/internal/logging"
	"github.com/mhdatheek136/branfern/internal/sanity"
)

// Creator performs document creates against the content store. *sanity.Client satisfies it.
type Creator interface {
	Create(ctx context.Context, doc any) (*sanity.MutationResult, error)
	HasToken() bool
}

// Writer turns a finished draft into one booking document.
type Writer struct {
	creator Creator
	now     func() time.Time
}

func NewWriter(creator Creator) *Writer {
	return &Writer{creator: creator, now: time.Now}
}

// BookingDocument builds the document stored for a draft.
func BookingDocument(f domain.Fields, submittedAt time.Time) content.BrandReviewBooking {
	return content.BrandReviewBooking{
		Type:        content.BrandReviewBookingType,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Phone:       f.Phone,
		Company:     f.Company,
		Instagram:   f.Instagram,
		Service:     f.Service,
		Budget:      f.Budget,
		HearAbout:   f.HearAbout,
		Referrer:    f.Referrer,
		Date:        f.Date,
		TimeSlot:    f.TimeSlot,
		Notes:       f.Notes,
		SubmittedAt: submittedAt.UTC().Format(time.RFC3339),
		Status:      content.StatusPending,
	}
}

// Create writes the booking and returns the new document ID.
// Without a write credential it fails before any network call.
func (w *Writer) Create(ctx context.Context, draft *domain.Draft) (string, time.Time, error) {
	if w.creator == nil || !w.creator.HasToken() {
		return "", time.Time{}, domain.ErrMissingWriteToken
	}

	submittedAt := w.now().UTC()
	res, err := w.creator.Create(ctx, BookingDocument(draft.Fields, submittedAt))
	if errors.Is(err, sanity.ErrMissingToken) {
		return "", time.Time{}, domain.ErrMissingWriteToken
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("create booking: %w", err)
	}

	logging.NewLogger(ctx).LogInfof("create_booking", "booking created draft_id=%s document_id=%s", draft.ID, res.DocumentID())
	return res.DocumentID(), submittedAt, nil
}
