// Package apperr classifies the errors the trip engine surfaces to callers.
// Handlers map kinds to HTTP statuses; everything else wraps with %w as usual.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a stable error category.
type Kind int

const (
	// KindValidation covers malformed or missing input fields.
	KindValidation Kind = iota + 1
	// KindNotFound covers unknown trips or samples.
	KindNotFound
	// KindInvalidTransition covers events illegal for the trip's current status.
	KindInvalidTransition
	// KindInvalidOTP covers verification attempts where both paths failed.
	KindInvalidOTP
	// KindUpstream covers unreachable external dependencies; recoverable,
	// never surfaced to the end user as a hard failure.
	KindUpstream
)

// Error carries a kind, a caller-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two Errors by kind so errors.Is(err, apperr.NotFound("")) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound creates a not-found error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// InvalidTransition creates an illegal-state-transition error.
func InvalidTransition(from, event string) *Error {
	return &Error{
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("event %q is not allowed from status %q", event, from),
	}
}

// InvalidOTP creates a failed-verification error.
func InvalidOTP() *Error {
	return &Error{Kind: KindInvalidOTP, Message: "invalid or expired OTP"}
}

// Upstream wraps an external dependency failure.
func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// KindOf returns the kind of err, or 0 when err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
