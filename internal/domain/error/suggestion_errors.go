// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// AI suggestion domain errors.
var (
	// ErrAIServiceError is returned when the AI service encounters an error.
	ErrAIServiceError = errors.New("ai service error")

	// ErrAIRateLimited is returned when the AI service rate limits requests.
	ErrAIRateLimited = errors.New("ai service rate limited")

	// ErrAIInvalidResponse is returned when the AI service response cannot be parsed.
	ErrAIInvalidResponse = errors.New("ai service returned an invalid response")

	// ErrAIDisabled is returned when AI suggestions are not configured.
	ErrAIDisabled = errors.New("ai suggestions are not configured")
)

// SuggestionErrorCode defines error codes for AI suggestion errors.
// Format: SUG-XXYYYY where XX is category and YYYY is specific error.
type SuggestionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSuggestionGoalNotFound SuggestionErrorCode = "SUG-010001"

	// External service errors (02XXXX)
	ErrCodeAIServiceError    SuggestionErrorCode = "SUG-020001"
	ErrCodeAIRateLimited     SuggestionErrorCode = "SUG-020002"
	ErrCodeAIInvalidResponse SuggestionErrorCode = "SUG-020003"
	ErrCodeAIDisabled        SuggestionErrorCode = "SUG-020004"
)

// SuggestionError represents an AI suggestion error with code and message.
type SuggestionError struct {
	Code    SuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// NewSuggestionError creates a new SuggestionError with the given code and message.
func NewSuggestionError(code SuggestionErrorCode, message string, err error) *SuggestionError {
	return &SuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
