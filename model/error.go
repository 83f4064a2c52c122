// Package model provides the data model definitions for watchgrass.
package model

import "errors"

// Sentinel errors for upstream lookups.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoHistory    = errors.New("no watch history")
)

// ValidationError represents a parameter validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError is a helper constructing a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
