package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned for an allow-listed action without an implementation
	ErrNotImplemented = errors.New("has not been implemented yet")

	// ErrTimeout is returned when provisioning does not finish within the configured timeout
	ErrTimeout = errors.New("timed out waiting for site provisioning")
)

// MissingFieldError is returned when an API response lacks a field later
// stages depend on
type MissingFieldError struct {
	// Field is the JSON name of the absent field
	Field string

	// Message is the API's own message, if it sent one
	Message string
}

// Error implements the error interface for MissingFieldError
func (e *MissingFieldError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("missing %s in InstaWP response: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("missing %s in InstaWP response", e.Field)
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field, message string) error {
	return &MissingFieldError{Field: field, Message: message}
}
