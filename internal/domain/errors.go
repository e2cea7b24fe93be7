package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrBookingFinalized = errors.New("booking is finalized")
	ErrOutOfOrder       = errors.New("step not allowed in the current session state")
	ErrNotFinalized     = errors.New("booking is not finalized")
	ErrRender           = errors.New("render failed")
)
