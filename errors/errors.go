// Package errors provides the error taxonomy for the ironcopper core.
//
// The mechanics are pure functions over validated input plus a random
// source, so the taxonomy is small: once inputs are valid, a roll or
// check cannot fail. Callers inspect errors by code rather than by
// message, typically through an aliased import:
//
//	icerr "github.com/W4RH4WK/ironcopper/errors"
//
//	if icerr.IsInvalidArgument(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error for programmatic handling
type Code string

const (
	// CodeUnknown indicates an error that did not originate in this module
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller supplied an invalid value,
	// e.g. a non-positive dice count or a malformed draw range
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInternal indicates a broken invariant inside the module
	CodeInternal Code = "internal"
)

// Error is an error with a code and optional context values
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta carries the offending values for display to the caller
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a context value to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving its code
// when it is already an ironcopper error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var icErr *Error
	if errors.As(err, &icErr) {
		return &Error{
			Code:    icErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(icErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Is checks whether the error carries the given code
func Is(err error, code Code) bool {
	var icErr *Error
	if errors.As(err, &icErr) {
		return icErr.Code == code
	}
	return false
}

// IsInvalidArgument checks whether the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInternal checks whether the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// GetCode returns the error code, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	var icErr *Error
	if errors.As(err, &icErr) {
		return icErr.Code
	}
	return CodeUnknown
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
