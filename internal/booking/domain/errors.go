package domain

import (
	"errors"
	"strings"
)

var (
	ErrDraftNotFound     = errors.New("booking draft not found")
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrDraftLocked       = errors.New("booking draft can no longer be edited")
	ErrDateRequired      = errors.New("choose a date before a time slot")
	ErrDateInPast        = errors.New("date must be after today")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrUnknownTimeSlot   = errors.New("time slot is not available")
	ErrSubmitInProgress  = errors.New("booking submission already in progress")
	ErrMissingWriteToken = errors.New("missing content store write token")
)

// ValidationError lists the fields that block submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}
