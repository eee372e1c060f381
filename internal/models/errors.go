package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	ErrHazardNotFound  = fmt.Errorf("hazard %w", ErrNotFound)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrMissingFields   = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidSeverity = fmt.Errorf("%w: invalid severity", ErrValidation)
)
