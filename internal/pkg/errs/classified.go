package errs

import (
	"errors"
	"fmt"
)

// ValidationError classifies a failure as a bad request. Message is the text shown to the
// caller; Cause carries the typed detail (ValueIsRequiredError, ValueIsInvalidError, ...).
type ValidationError struct {
	Message string
	Cause   error
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(cause error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NotFoundError classifies a failure as a missing resource.
type NotFoundError struct {
	Message string
	Cause   error
}

// NewNotFoundError builds a NotFoundError with a formatted message.
func NewNotFoundError(cause error, format string, args ...any) *NotFoundError {
	return &NotFoundError{
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// IsValidation reports whether err is classified as a bad request.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is classified as a missing resource.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
