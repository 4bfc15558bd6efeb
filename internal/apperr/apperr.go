// Package apperr defines the error taxonomy shared by every engine
// operation. Callers match on the kind sentinels with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input that is malformed or violates a shape
	// constraint (missing start date, non-positive quantity, ...).
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a business-rule block: active contracts during a
	// maintenance transition, duplicate room numbers, stale versions.
	ErrConflict = errors.New("conflict")

	// ErrInvalidOperation marks an operation that is not legal in the
	// entity's current state, e.g. renewing an ownership contract.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotFound marks a missing entity.
	ErrNotFound = errors.New("not found")

	// ErrTransient marks a storage timeout. The whole operation is safe
	// to retry; no partial state was committed.
	ErrTransient = errors.New("transient storage failure")
)

// Error carries a kind sentinel alongside a human-readable message and
// an optional cause.
type Error struct {
	kind  error
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}

	return e.msg
}

func (e *Error) Is(target error) bool { return target == e.kind }

func (e *Error) Unwrap() error { return e.cause }

func newf(kind error, format string, args ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return newf(ErrValidation, format, args...)
}

func Conflict(format string, args ...any) error {
	return newf(ErrConflict, format, args...)
}

func InvalidOperation(format string, args ...any) error {
	return newf(ErrInvalidOperation, format, args...)
}

func NotFound(format string, args ...any) error {
	return newf(ErrNotFound, format, args...)
}

func Transient(format string, args ...any) error {
	return newf(ErrTransient, format, args...)
}

// Wrap attaches a kind to an underlying error without losing the chain.
func Wrap(kind error, cause error, msg string) error {
	return &Error{kind: kind, msg: msg, cause: cause}
}
