package service

import (
	"context"
	"errors"
	"time"

	"github.com/mhdatheek136/branfern/internal/booking/domain"
	"github.com/mhdatheek136/branfern/internal/booking/repository"
	"github.com/mhdatheek136/branfern/internal/logging"
)

// SubmitErrorMessage is shown on the form after a failed submission.
const SubmitErrorMessage = "Something went wrong. Please try again or contact us directly."

// DraftStore persists drafts between requests.
type DraftStore interface {
	Create(ctx context.Context, draft *domain.Draft) error
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Save(ctx context.Context, draft *domain.Draft) error
	AcquireSubmitLock(ctx context.Context, id string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// SlotProvider lists the bookable time slots.
type SlotProvider interface {
	TimeSlots(ctx context.Context) ([]string, error)
}

// Ledger keeps a local record of successful submissions.
type Ledger interface {
	Record(ctx context.Context, s *repository.Submission) error
}

// BookingService drives brand review drafts through the form flow.
type BookingService struct {
	drafts DraftStore
	writer *Writer
	slots  SlotProvider
	ledger Ledger
	now    func() time.Time
}

// NewBookingService wires the flow. ledger may be nil.
func NewBookingService(drafts DraftStore, writer *Writer, slots SlotProvider, ledger Ledger) *BookingService {
	return &BookingService{drafts: drafts, writer: writer, slots: slots, ledger: ledger, now: time.Now}
}

// Start opens a new draft on step 1.
func (s *BookingService) Start(ctx context.Context) (*domain.Draft, error) {
	draft := domain.NewDraft("", s.now().UTC())
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, err
	}
	logging.NewLogger(ctx).LogInfof("start_draft", "draft started id=%s", draft.ID)
	return draft, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Draft, error) {
	return s.drafts.Get(ctx, id)
}

// mutate loads a draft, applies fn and saves it when fn succeeds.
func (s *BookingService) mutate(ctx context.Context, id string, fn func(*domain.Draft) error) (*domain.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return draft, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *BookingService) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Draft, error) {
	return s.mutate(ctx, id, func(d *domain.Draft) error { return d.Update(patch) })
}

func (s *BookingService) Next(ctx context.Context, id string) (*domain.Draft, error) {
	return s.mutate(ctx, id, (*domain.Draft).Next)
}

func (s *BookingService) Back(ctx context.Context, id string) (*domain.Draft, error) {
	return s.mutate(ctx, id, (*domain.Draft).Back)
}

func (s *BookingService) SelectDate(ctx context.Context, id, date string) (*domain.Draft, error) {
	today := s.now().UTC()
	return s.mutate(ctx, id, func(d *domain.Draft) error { return d.SelectDate(date, today) })
}

func (s *BookingService) SelectTimeSlot(ctx context.Context, id, slot string) (*domain.Draft, error) {
	offered, err := s.slots.TimeSlots(ctx)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(d *domain.Draft) error { return d.SelectTimeSlot(slot, offered) })
}

// Discard abandons a draft. Drafts with a submission in flight are kept.
func (s *BookingService) Discard(ctx context.Context, id string) error {
	if _, err := s.drafts.Get(ctx, id); err != nil {
		return err
	}
	locked, err := s.drafts.AcquireSubmitLock(ctx, id)
	if err != nil {
		return err
	}
	if !locked {
		return domain.ErrSubmitInProgress
	}
	// Delete drops the lock together with the draft.
	if err := s.drafts.Delete(ctx, id); err != nil {
		return err
	}
	logging.NewLogger(ctx).LogInfof("discard_draft", "draft discarded id=%s", id)
	return nil
}

// AvailableTimeSlots lists the slots the draft may choose from right now.
func (s *BookingService) AvailableTimeSlots(ctx context.Context, draft *domain.Draft) []string {
	offered, err := s.slots.TimeSlots(ctx)
	if err != nil {
		logging.NewLogger(ctx).LogWarnf("time_slots", "slots unavailable: %v", err)
		return []string{}
	}
	return draft.AvailableTimeSlots(offered)
}

// Submit sends the draft to the content store exactly once per attempt.
// A failed attempt leaves the draft in the error phase with its fields intact
// and returns the cause alongside the draft.
func (s *BookingService) Submit(ctx context.Context, id string) (*domain.Draft, error) {
	logger := logging.NewLogger(ctx)

	locked, err := s.drafts.AcquireSubmitLock(ctx, id)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, domain.ErrSubmitInProgress
	}
	defer func() {
		if err := s.drafts.ReleaseSubmitLock(context.WithoutCancel(ctx), id); err != nil {
			logger.LogError("release_submit_lock", err)
		}
	}()

	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Phase == domain.PhaseSubmitting {
		// No attempt holds the lock, so the previous one never stored its outcome.
		logger.LogWarnf("submit_booking", "recovering stale submission id=%s", id)
		_ = draft.Fail(SubmitErrorMessage)
	}
	if draft.Phase != domain.PhaseStep3 && draft.Phase != domain.PhaseError {
		return draft, domain.ErrInvalidTransition
	}
	if err := draft.Fields.Validate(); err != nil {
		return draft, err
	}

	if err := draft.BeginSubmit(); err != nil {
		return draft, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	documentID, submittedAt, writeErr := s.writer.Create(ctx, draft)
	// The outcome must be persisted even if the client has gone away.
	saveCtx := context.WithoutCancel(ctx)
	if writeErr != nil {
		logger.LogError("submit_booking", writeErr)
		_ = draft.Fail(SubmitErrorMessage)
		if err := s.drafts.Save(saveCtx, draft); err != nil {
			logger.LogErrorf("save_failed_draft", "draft id=%s left in submitting: %v", draft.ID, err)
		}
		return draft, writeErr
	}

	_ = draft.Succeed(documentID)
	if err := s.drafts.Save(saveCtx, draft); err != nil {
		logger.LogErrorf("save_submitted_draft", "draft id=%s document_id=%s: %v", draft.ID, documentID, err)
	}
	s.record(saveCtx, draft, submittedAt)
	return draft, nil
}

func (s *BookingService) record(ctx context.Context, draft *domain.Draft, submittedAt time.Time) {
	if s.ledger == nil {
		return
	}
	err := s.ledger.Record(ctx, &repository.Submission{
		DocumentID:  draft.DocumentID,
		DraftID:     draft.ID,
		Email:       draft.Fields.Email,
		Service:     draft.Fields.Service,
		Date:        draft.Fields.Date,
		TimeSlot:    draft.Fields.TimeSlot,
		SubmittedAt: submittedAt,
	})
	if err != nil {
		logging.NewLogger(ctx).LogWarnf("record_submission", "ledger write failed for document_id=%s: %v", draft.DocumentID, err)
	}
}

// IsClientError reports whether err is caused by the request rather than the system.
func IsClientError(err error) bool {
	var verr *domain.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrDraftLocked) ||
		errors.Is(err, domain.ErrDateRequired) ||
		errors.Is(err, domain.ErrDateInPast) ||
		errors.Is(err, domain.ErrInvalidDate) ||
		errors.Is(err, domain.ErrUnknownTimeSlot)
}
