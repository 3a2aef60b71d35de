package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. The transport layer maps each of
// them to exactly one HTTP status (see transport/rest/errors.go).
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("not authenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrSuspended         = errors.New("account suspended")
	ErrConflict          = errors.New("conflict")
	ErrDailyLimitReached = errors.New("daily analysis limit reached")
	ErrNotConfigured     = errors.New("service is not configured")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotConfiguredError reports that an optional integration (storage, speech)
// has no credentials. It unwraps to ErrNotConfigured.
type NotConfiguredError struct {
	Service string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Service)
}

func (e *NotConfiguredError) Unwrap() error { return ErrNotConfigured }
