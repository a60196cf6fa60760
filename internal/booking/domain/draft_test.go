package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 10, 16, 15, 30, 0, 0, time.UTC)

func str(s string) *string { return &s }

var slots = []string{"7:30 PM - 8:30 PM", "8:30 PM - 9:30 PM"}

func TestDraft_StepNavigationKeepsFields(t *testing.T) {
	d := NewDraft("d1", today)
	require.NoError(t, d.Update(Patch{Service: str("Brand Audit")}))
	require.NoError(t, d.Next())
	assert.Equal(t, 2, d.Step())

	require.NoError(t, d.Update(Patch{FirstName: str("Ada"), Email: str("ada@example.com")}))
	require.NoError(t, d.Back())
	assert.Equal(t, PhaseStep1, d.Phase)
	require.NoError(t, d.Next())

	assert.Equal(t, "Ada", d.Fields.FirstName)
	assert.Equal(t, "ada@example.com", d.Fields.Email)
	assert.Equal(t, "Brand Audit", d.Fields.Service)

	require.NoError(t, d.Next())
	assert.Equal(t, 3, d.Step())
	assert.ErrorIs(t, d.Next(), ErrInvalidTransition)

	d = NewDraft("d2", today)
	assert.ErrorIs(t, d.Back(), ErrInvalidTransition)
}

func TestDraft_UpdateMergesOnlySetFields(t *testing.T) {
	d := NewDraft("d1", today)
	require.NoError(t, d.Update(Patch{FirstName: str("Ada"), LastName: str("Lovelace")}))
	require.NoError(t, d.Update(Patch{LastName: str("King")}))
	assert.Equal(t, "Ada", d.Fields.FirstName)
	assert.Equal(t, "King", d.Fields.LastName)
}

func TestDraft_TimeSlotRequiresDate(t *testing.T) {
	d := NewDraft("d1", today)
	assert.Empty(t, d.AvailableTimeSlots(slots))
	assert.ErrorIs(t, d.SelectTimeSlot(slots[0], slots), ErrDateRequired)

	require.NoError(t, d.SelectDate("2026-10-20", today))
	assert.Equal(t, slots, d.AvailableTimeSlots(slots))
	require.NoError(t, d.SelectTimeSlot(slots[1], slots))
	assert.ErrorIs(t, d.SelectTimeSlot("3:00 AM", slots), ErrUnknownTimeSlot)
	assert.Equal(t, slots[1], d.Fields.TimeSlot)
}

func TestDraft_SelectDate(t *testing.T) {
	t.Run("same date keeps slot", func(t *testing.T) {
		d := NewDraft("d1", today)
		require.NoError(t, d.SelectDate("2026-10-20", today))
		require.NoError(t, d.SelectTimeSlot(slots[0], slots))
		require.NoError(t, d.SelectDate("2026-10-20", today))
		assert.Equal(t, slots[0], d.Fields.TimeSlot)
	})

	t.Run("new date clears slot", func(t *testing.T) {
		d := NewDraft("d1", today)
		require.NoError(t, d.SelectDate("2026-10-20", today))
		require.NoError(t, d.SelectTimeSlot(slots[0], slots))
		require.NoError(t, d.SelectDate("2026-10-21", today))
		assert.Empty(t, d.Fields.TimeSlot)
	})

	t.Run("past dates and today rejected", func(t *testing.T) {
		d := NewDraft("d1", today)
		assert.ErrorIs(t, d.SelectDate("2026-10-15", today), ErrDateInPast)
		assert.ErrorIs(t, d.SelectDate("2026-10-16", today), ErrDateInPast)
		assert.NoError(t, d.SelectDate("2026-10-17", today))
		assert.ErrorIs(t, d.SelectDate("20/10/2026", today), ErrInvalidDate)
	})
}

func TestDraft_SubmitLifecycle(t *testing.T) {
	d := NewDraft("d1", today)
	assert.ErrorIs(t, d.BeginSubmit(), ErrInvalidTransition)

	d.Phase = PhaseStep3
	require.NoError(t, d.BeginSubmit())
	assert.False(t, d.Editable())
	assert.ErrorIs(t, d.BeginSubmit(), ErrSubmitInProgress)
	assert.ErrorIs(t, d.Update(Patch{Notes: str("x")}), ErrDraftLocked)

	require.NoError(t, d.Fail("Something went wrong."))
	assert.Equal(t, PhaseError, d.Phase)
	assert.Equal(t, 3, d.Step())
	require.NoError(t, d.Update(Patch{Notes: str("retry")}))

	require.NoError(t, d.BeginSubmit())
	assert.Empty(t, d.Error)
	require.NoError(t, d.Succeed("doc-1"))
	assert.Equal(t, "doc-1", d.DocumentID)
	assert.Equal(t, "retry", d.Fields.Notes)

	assert.ErrorIs(t, d.Update(Patch{Notes: str("late")}), ErrDraftLocked)
	assert.ErrorIs(t, d.SelectDate("2026-10-30", today), ErrDraftLocked)
	assert.ErrorIs(t, d.BeginSubmit(), ErrInvalidTransition)
	assert.ErrorIs(t, d.Back(), ErrInvalidTransition)
}

func TestFields_Validate(t *testing.T) {
	f := Fields{Service: "Other", FirstName: "Ada", LastName: "L", Email: "not-an-email", Date: "2026-10-20"}
	err := f.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"email", "timeSlot"}, verr.Fields)

	f.Email = "ada@example.com"
	f.TimeSlot = slots[0]
	assert.NoError(t, f.Validate())
}
