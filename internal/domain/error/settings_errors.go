// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidReminderTime is returned when the reminder time is not a valid HH:MM value.
	ErrInvalidReminderTime = errors.New("invalid reminder time, expected HH:MM")

	// ErrInvalidTimezone is returned when the timezone is not a known IANA zone name.
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReminderTime SettingsErrorCode = "SET-010001"
	ErrCodeInvalidTimezone     SettingsErrorCode = "SET-010002"

	// Internal errors (99XXXX)
	ErrCodeSettingsInternalError SettingsErrorCode = "SET-990001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
