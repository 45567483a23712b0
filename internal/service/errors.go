package service

import (
	"errors"

	"masteria.app/panel/internal/store"
)

var (
	// ErrInvalidInput wraps every validation failure; the wrapped message is
	// safe to show to the caller.
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	// ErrUnavailable is returned by optional subsystems that are not configured.
	ErrUnavailable = errors.New("service unavailable")

	ErrNotFound = store.ErrNotFound
	ErrConflict = store.ErrConflict
)
