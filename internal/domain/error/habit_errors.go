// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrUnauthorizedHabitAccess is returned when user is not authorized to access a habit.
	ErrUnauthorizedHabitAccess = errors.New("unauthorized access to habit")

	// ErrMissingHabitName is returned when a habit is created or updated without a name.
	ErrMissingHabitName = errors.New("habit name is required")

	// ErrInvalidHabitType is returned when the habit type is not build or break.
	ErrInvalidHabitType = errors.New("habit type must be: build or break")

	// ErrInvalidFrequency is returned when the frequency is not a known value.
	ErrInvalidFrequency = errors.New("frequency must be: daily, weekly, or custom")

	// ErrHabitGoalNotFound is returned when the goal a habit points at does not exist.
	ErrHabitGoalNotFound = errors.New("goal for habit not found")

	// ErrHabitGoalInactive is returned when attaching a habit to a deleted goal.
	ErrHabitGoalInactive = errors.New("goal for habit is not active")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound           HabitErrorCode = "HAB-010001"
	ErrCodeUnauthorizedHabitAccess HabitErrorCode = "HAB-010002"
	ErrCodeMissingHabitName        HabitErrorCode = "HAB-010003"
	ErrCodeInvalidHabitType        HabitErrorCode = "HAB-010004"
	ErrCodeInvalidFrequency        HabitErrorCode = "HAB-010005"
	ErrCodeHabitGoalNotFound       HabitErrorCode = "HAB-010006"
	ErrCodeHabitGoalInactive       HabitErrorCode = "HAB-010007"

	// Internal errors (99XXXX)
	ErrCodeHabitInternalError HabitErrorCode = "HAB-990001"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
