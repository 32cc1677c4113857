package domain

import "github.com/pkg/errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("store unavailable")
	ErrInvalid     = errors.New("invalid input")
)
