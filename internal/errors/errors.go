// Package errors provides categorized errors with remediation hints.
//
// Categories follow the failure taxonomy of a single invocation: configuration,
// event parsing and hook classification failures are fatal for the invocation
// and turn into a degraded response; handler failures are isolated to one
// handler outcome.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies an error.
type ErrorCategory int

const (
	// Configuration covers config file, validation and secret resolution errors.
	Configuration ErrorCategory = iota
	// Event covers reading and parsing the stdin event.
	Event
	// Hook covers unrecognized hook_event_name values.
	Hook
	// Handler covers failures of a single notification handler.
	Handler
	// Runtime covers everything else.
	Runtime
)

// String returns the display label for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Configuration:
		return "Configuration Error"
	case Event:
		return "Event Error"
	case Hook:
		return "Hook Error"
	case Handler:
		return "Handler Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// Fatal reports whether errors of this category abort the invocation.
func (c ErrorCategory) Fatal() bool {
	switch c {
	case Configuration, Event, Hook:
		return true
	default:
		return false
	}
}

// AppError is an error with a category and optional remediation steps.
type AppError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	Err         error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(category ErrorCategory, message string, remediation []string) *AppError {
	return &AppError{
		Category:    category,
		Message:     message,
		Remediation: remediation,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, remediation ...string) *AppError {
	return newError(Configuration, message, remediation)
}

// NewEventError creates an event error.
func NewEventError(message string, remediation ...string) *AppError {
	return newError(Event, message, remediation)
}

// NewHookError creates a hook classification error.
func NewHookError(message string, remediation ...string) *AppError {
	return newError(Hook, message, remediation)
}

// NewHandlerError creates a handler error.
func NewHandlerError(message string, remediation ...string) *AppError {
	return newError(Handler, message, remediation)
}

// NewRuntimeError creates a runtime error.
func NewRuntimeError(message string, remediation ...string) *AppError {
	return newError(Runtime, message, remediation)
}

// Wrap attaches a category to err, keeping its message. Returns nil for nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps err as "message: err". Returns nil for nil.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", message, err.Error()),
		Remediation: remediation,
		Err:         err,
	}
}

// IsAppError reports whether err is or wraps an AppError.
func IsAppError(err error) bool {
	return AsAppError(err) != nil
}

// AsAppError returns the AppError in err's chain, or nil.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// CategoryOf returns the category of err, defaulting to Runtime.
func CategoryOf(err error) ErrorCategory {
	if appErr := AsAppError(err); appErr != nil {
		return appErr.Category
	}
	return Runtime
}
