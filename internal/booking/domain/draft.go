package domain

import (
	"slices"
	"time"
)

// Phase is the position of a draft in the brand review flow.
type Phase string

const (
	PhaseStep1      Phase = "step1"
	PhaseStep2      Phase = "step2"
	PhaseStep3      Phase = "step3"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseError      Phase = "error"
)

// DateLayout is the calendar-date form stored on bookings.
const DateLayout = "2006-01-02"

// Fields is the accumulated form state across all three steps.
type Fields struct {
	// step 1
	Service   string `json:"service" validate:"required"`
	Budget    string `json:"budget"`
	HearAbout string `json:"hearAbout"`
	Referrer  string `json:"referrer"`
	// step 2
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Instagram string `json:"instagram"`
	// step 3
	Date     string `json:"date" validate:"required"`
	TimeSlot string `json:"timeSlot" validate:"required"`
	Notes    string `json:"notes"`
}

// Patch carries a partial update; nil fields are left untouched.
// Date and time slot are changed only through SelectDate and SelectTimeSlot.
type Patch struct {
	Service   *string `json:"service"`
	Budget    *string `json:"budget"`
	HearAbout *string `json:"hearAbout"`
	Referrer  *string `json:"referrer"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Instagram *string `json:"instagram"`
	Notes     *string `json:"notes"`
}

// Draft is an in-progress brand review booking.
type Draft struct {
	ID         string    `json:"id"`
	Phase      Phase     `json:"phase"`
	Fields     Fields    `json:"fields"`
	Error      string    `json:"error,omitempty"`
	DocumentID string    `json:"documentId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewDraft(id string, now time.Time) *Draft {
	return &Draft{ID: id, Phase: PhaseStep1, CreatedAt: now, UpdatedAt: now}
}

// Step is the visible form step, 1 to 3.
func (d *Draft) Step() int {
	switch d.Phase {
	case PhaseStep1:
		return 1
	case PhaseStep2:
		return 2
	}
	return 3
}

// Editable reports whether fields may still change.
func (d *Draft) Editable() bool {
	return d.Phase != PhaseSubmitting && d.Phase != PhaseSuccess
}

// Next moves forward one step. Fields are never touched.
func (d *Draft) Next() error {
	switch d.Phase {
	case PhaseStep1:
		d.Phase = PhaseStep2
	case PhaseStep2:
		d.Phase = PhaseStep3
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Back moves back one step. Fields are never touched.
func (d *Draft) Back() error {
	switch d.Phase {
	case PhaseStep2:
		d.Phase = PhaseStep1
	case PhaseStep3, PhaseError:
		d.Phase = PhaseStep2
		d.Error = ""
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Update merges p into the draft.
func (d *Draft) Update(p Patch) error {
	if !d.Editable() {
		return ErrDraftLocked
	}
	f := &d.Fields
	for _, m := range []struct {
		dst *string
		src *string
	}{
		{&f.Service, p.Service},
		{&f.Budget, p.Budget},
		{&f.HearAbout, p.HearAbout},
		{&f.Referrer, p.Referrer},
		{&f.FirstName, p.FirstName},
		{&f.LastName, p.LastName},
		{&f.Email, p.Email},
		{&f.Phone, p.Phone},
		{&f.Company, p.Company},
		{&f.Instagram, p.Instagram},
		{&f.Notes, p.Notes},
	} {
		if m.src != nil {
			*m.dst = *m.src
		}
	}
	return nil
}

// SelectDate sets the session date. Only dates after today are selectable.
// Changing to a different date clears the chosen time slot.
func (d *Draft) SelectDate(date string, today time.Time) error {
	if !d.Editable() {
		return ErrDraftLocked
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ErrInvalidDate
	}
	y, m, day := today.Date()
	if !t.After(time.Date(y, m, day, 0, 0, 0, 0, time.UTC)) {
		return ErrDateInPast
	}
	normalized := t.Format(DateLayout)
	if normalized != d.Fields.Date {
		d.Fields.TimeSlot = ""
	}
	d.Fields.Date = normalized
	return nil
}

// AvailableTimeSlots is empty until a date has been chosen.
func (d *Draft) AvailableTimeSlots(slots []string) []string {
	if d.Fields.Date == "" {
		return []string{}
	}
	return slots
}

// SelectTimeSlot picks one of the offered slots for the chosen date.
func (d *Draft) SelectTimeSlot(slot string, offered []string) error {
	if !d.Editable() {
		return ErrDraftLocked
	}
	if d.Fields.Date == "" {
		return ErrDateRequired
	}
	if !slices.Contains(d.AvailableTimeSlots(offered), slot) {
		return ErrUnknownTimeSlot
	}
	d.Fields.TimeSlot = slot
	return nil
}

// BeginSubmit enters Submitting from the last step or after a failed attempt.
func (d *Draft) BeginSubmit() error {
	switch d.Phase {
	case PhaseStep3, PhaseError:
		d.Phase = PhaseSubmitting
		d.Error = ""
		return nil
	case PhaseSubmitting:
		return ErrSubmitInProgress
	}
	return ErrInvalidTransition
}

// Succeed ends the flow. The draft is read-only afterwards.
func (d *Draft) Succeed(documentID string) error {
	if d.Phase != PhaseSubmitting {
		return ErrInvalidTransition
	}
	d.Phase = PhaseSuccess
	d.DocumentID = documentID
	return nil
}

// Fail records a retryable submission failure; fields are kept.
func (d *Draft) Fail(message string) error {
	if d.Phase != PhaseSubmitting {
		return ErrInvalidTransition
	}
	d.Phase = PhaseError
	d.Error = message
	return nil
}
