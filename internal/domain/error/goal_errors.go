// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalCategory is returned when the goal category is not a known value.
	ErrInvalidGoalCategory = errors.New("invalid goal category")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrMissingGoalTitle is returned when a goal is created or updated without a title.
	ErrMissingGoalTitle = errors.New("goal title is required")

	// ErrInvalidTargetDate is returned when the target date cannot be parsed.
	ErrInvalidTargetDate = errors.New("invalid target date, expected YYYY-MM-DD")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalCategory    GoalErrorCode = "GOL-010002"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalTitle       GoalErrorCode = "GOL-010004"
	ErrCodeInvalidTargetDate      GoalErrorCode = "GOL-010005"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
