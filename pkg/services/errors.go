package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a curriculum is not found or not owned by
	// the caller. Ownership failures are indistinguishable from absence so
	// callers cannot probe other users' curricula.
	ErrNotFound = errors.New("curriculum not found")

	// ErrVersionNotFound is returned when a curriculum exists but the
	// requested version number does not.
	ErrVersionNotFound = errors.New("version not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
