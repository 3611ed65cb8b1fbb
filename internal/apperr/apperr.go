// Package apperr defines the closed set of error kinds crossing the
// service boundary. Handlers map kinds to HTTP status codes; nothing
// below the handlers knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInternal covers unexpected failures (storage unavailable,
	// bugs). Maps to 500.
	KindInternal Kind = iota
	// KindValidation covers malformed, missing or out-of-range input.
	// Maps to 400.
	KindValidation
	// KindNotFound covers lookups by unknown id. Maps to 404.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error carries a kind plus a user-facing message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Internal(msg string, cause error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: cause}
}

// KindOf reports the kind of err, defaulting to KindInternal for errors
// produced outside this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the user-facing message of err without the wrapped
// cause, falling back to err.Error().
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}

// Detail returns the diagnostic detail (the wrapped cause) when present.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
