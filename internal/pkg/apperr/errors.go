// Package apperr defines the error taxonomy shared by all services: handlers
// translate these sentinels into HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a referenced entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the request failed validation before any mutation
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict indicates the operation lost a conditional update
	// (seat capacity exhausted, transition out of a terminal state)
	ErrConflict = errors.New("conflict")
)

// NotFoundf wraps ErrNotFound with a formatted message
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// InvalidInputf wraps ErrInvalidInput with a formatted message
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// Conflictf wraps ErrConflict with a formatted message
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// IsNotFound reports whether err is or wraps ErrNotFound
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidInput reports whether err is or wraps ErrInvalidInput
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsConflict reports whether err is or wraps ErrConflict
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
