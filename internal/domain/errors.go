package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrNotYetOpenable = errors.New("capsule cannot be opened yet")
	ErrConflict       = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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

// MsgMissingField is the FieldError message for an absent required field.
const MsgMissingField = "missing required field"

// MissingFieldError reports an absent required request field. Its public
// message is what API clients already parse: "Missing required field: <name>".
func MissingFieldError(field string) *ValidationError {
	return NewValidationError(field, MsgMissingField)
}

// PublicMessage renders the error for API responses.
func (e *ValidationError) PublicMessage() string {
	if len(e.Errors) == 0 {
		return "invalid request"
	}
	first := e.Errors[0]
	if first.Message == MsgMissingField {
		return "Missing required field: " + first.Field
	}
	return fmt.Sprintf("Invalid field %s: %s", first.Field, first.Message)
}
