// Package apperr defines the error kinds shared by the SQL builders, the
// repositories and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("not found")
)

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError reports a lookup, update or delete that matched no row.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Invalid returns a *ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFound returns a *NotFoundError with a formatted message.
func NotFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}
