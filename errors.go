package daterange

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a daterange error.
type ErrorCode string

// Error codes for all daterange error categories.
const (
	// Construction errors.
	ErrCodeInvalidStep      ErrorCode = "INVALID_STEP"
	ErrCodeInvalidUnit      ErrorCode = "INVALID_UNIT"
	ErrCodeInvalidSpecifier ErrorCode = "INVALID_SPECIFIER"

	// Consumption signals.
	ErrCodeExhausted ErrorCode = "RANGE_EXHAUSTED"
	ErrCodeUnbounded ErrorCode = "UNBOUNDED_RANGE"
)

// Error is the standard daterange error type.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is checks if the error matches a target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// ErrExhausted signals that a bounded range has produced its last value.
// It is an expected end-of-sequence condition, not an abnormal failure;
// compare with errors.Is.
var ErrExhausted = &Error{Code: ErrCodeExhausted, Message: "range exhausted"}

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// InvalidStep creates an error for a step value that cannot resolve to a
// duration.
func InvalidStep(step any) *Error {
	return &Error{
		Code:    ErrCodeInvalidStep,
		Message: fmt.Sprintf("invalid step value: %v (%T)", step, step),
	}
}

// InvalidUnit creates an error for a specifier naming an unknown time unit.
func InvalidUnit(unit string) *Error {
	return &Error{
		Code:    ErrCodeInvalidUnit,
		Message: fmt.Sprintf("invalid unit: %q", unit),
	}
}

// InvalidSpecifier creates an error for a specifier that does not match
// "number [whitespace] unit".
func InvalidSpecifier(specifier string) *Error {
	return &Error{
		Code:    ErrCodeInvalidSpecifier,
		Message: fmt.Sprintf("invalid delta specifier: %q", specifier),
	}
}

// Unbounded creates an error for an operation that requires a bounded range.
func Unbounded(op string) *Error {
	return &Error{
		Code:    ErrCodeUnbounded,
		Message: fmt.Sprintf("%s requires a bounded range", op),
	}
}
