// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by email or credentials.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails. The message is deliberately
	// identical for an unknown email and a wrong password so callers cannot tell which
	// case occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MissingFieldError reports a required request field that was absent or empty
// after trimming surrounding whitespace.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing field: '%s'", e.Field)
}
