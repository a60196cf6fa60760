package domain

import "errors"

var (
	ErrNotFound    = errors.New("content not found")
	ErrInvalidSlug = errors.New("invalid slug")
)
