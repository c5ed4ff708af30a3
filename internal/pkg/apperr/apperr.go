package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation so the HTTP layer can pick a status
// code without string-matching messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindNotFound
	KindInvalidArgument
	KindValidationFailed
)

// Error is the uniform failure result returned by the service layer.
// Services never panic past their boundary; they return one of these.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap keeps the original error reachable via errors.Is/As while exposing
// a caller-facing message.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func Unauthorized(msg string) *Error {
	return New(KindUnauthorized, msg)
}

func NotFound(msg string) *Error {
	return New(KindNotFound, msg)
}

func InvalidArgument(msg string) *Error {
	return New(KindInvalidArgument, msg)
}

func ValidationFailed(msg string) *Error {
	return New(KindValidationFailed, msg)
}

// KindOf extracts the kind from any error chain. Non-app errors map to
// KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// IsUnauthorized reports whether err carries the Unauthorized kind.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}
