package sbits

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an Error per spec.md §7.
type ErrorCode int

const (
	// ErrConfigInvalid indicates a Config value cannot be used to init the
	// engine (region too small, buffer too small for indexing, missing
	// comparator/bitmap, ...).
	ErrConfigInvalid ErrorCode = iota + 1

	// ErrIO indicates a read/write/seek failure on the underlying storage.
	ErrIO

	// ErrNotFound indicates a point lookup found no matching key. This is a
	// normal negative answer, not a fault.
	ErrNotFound

	// ErrEndOfIteration indicates an iterator has no more records.
	ErrEndOfIteration
)

func (c ErrorCode) String() string {
	switch c {
	case ErrConfigInvalid:
		return "invalid configuration"
	case ErrIO:
		return "io error"
	case ErrNotFound:
		return "not found"
	case ErrEndOfIteration:
		return "end of iteration"
	default:
		return fmt.Sprintf("unknown error code %d", int(c))
	}
}

// Error is the engine's single error type: a code plus an optional wrapped
// cause, mirroring the teacher's errors.go (NewError/WrapError/Is*) pared
// down to the four kinds spec.md §7 defines.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sbits: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("sbits: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the code's default message.
func NewError(code ErrorCode) *Error {
	return &Error{Code: code, Message: code.String()}
}

// WrapError creates an Error of the given code wrapping cause.
func WrapError(code ErrorCode, cause error) *Error {
	return &Error{Code: code, Message: code.String(), Err: cause}
}

// Common sentinel errors for convenience.
var (
	ErrNotFoundError      = NewError(ErrNotFound)
	ErrEndOfIterationError = NewError(ErrEndOfIteration)
)

// Code returns the ErrorCode carried by err, or 0 if err is nil or not an
// *Error.
func Code(err error) ErrorCode {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// IsNotFound returns true if err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return Code(err) == ErrNotFound
}

// IsEndOfIteration returns true if err is (or wraps) ErrEndOfIteration.
func IsEndOfIteration(err error) bool {
	return Code(err) == ErrEndOfIteration
}

// IsConfigInvalid returns true if err is (or wraps) ErrConfigInvalid.
func IsConfigInvalid(err error) bool {
	return Code(err) == ErrConfigInvalid
}

// IsIOError returns true if err is (or wraps) ErrIO.
func IsIOError(err error) bool {
	return Code(err) == ErrIO
}
