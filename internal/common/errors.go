// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidNumber   = errors.New("invalid phone number")
	ErrNoNumbers       = errors.New("no phone numbers found")

	// Catalog errors.
	ErrUnknownPattern   = errors.New("unknown pattern")
	ErrDuplicatePattern = errors.New("duplicate pattern")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsInputError reports whether err was caused by bad caller input rather than
// an internal failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrUnknownPattern) ||
		errors.Is(err, ErrNoNumbers)
}
