// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Completion domain errors.
var (
	// ErrCompletionNotFound is returned when a completion is not found in the system.
	ErrCompletionNotFound = errors.New("completion not found")

	// ErrCompletionConflict is returned when a completion already exists for the same date.
	ErrCompletionConflict = errors.New("completion already exists for this date")

	// ErrInvalidCompletionDate is returned when the completion date cannot be parsed.
	ErrInvalidCompletionDate = errors.New("invalid completion date, expected YYYY-MM-DD")

	// ErrInactiveHabitCompletion is returned when toggling a completion on an inactive habit.
	ErrInactiveHabitCompletion = errors.New("habit is not active")
)

// CompletionErrorCode defines error codes for completion errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CompletionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCompletionNotFound      CompletionErrorCode = "CMP-010001"
	ErrCodeCompletionConflict      CompletionErrorCode = "CMP-010002"
	ErrCodeInvalidCompletionDate   CompletionErrorCode = "CMP-010003"
	ErrCodeInactiveHabitCompletion CompletionErrorCode = "CMP-010004"

	// Internal errors (99XXXX)
	ErrCodeCompletionInternalError CompletionErrorCode = "CMP-990001"
)

// CompletionError represents a completion error with code and message.
type CompletionError struct {
	Code    CompletionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CompletionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewCompletionError creates a new CompletionError with the given code and message.
func NewCompletionError(code CompletionErrorCode, message string, err error) *CompletionError {
	return &CompletionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
