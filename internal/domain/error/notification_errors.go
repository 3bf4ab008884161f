// Package error defines domain-specific errors for the HabitFlow application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrInvalidSubscription is returned when a push subscription payload is malformed.
	ErrInvalidSubscription = errors.New("invalid push subscription")

	// ErrNoSubscriptions is returned when a user has no push subscriptions registered.
	ErrNoSubscriptions = errors.New("no push subscriptions registered")

	// ErrPushSendFailed is returned when delivery to a push endpoint fails.
	ErrPushSendFailed = errors.New("failed to send push notification")

	// ErrNotificationsDisabled is returned when the user has notifications turned off.
	ErrNotificationsDisabled = errors.New("notifications are disabled for this user")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	// Subscription errors (01XXXX)
	ErrCodeInvalidSubscription NotificationErrorCode = "NTF-010001"
	ErrCodeNoSubscriptions     NotificationErrorCode = "NTF-010002"

	// Delivery errors (02XXXX)
	ErrCodePushSendFailed        NotificationErrorCode = "NTF-020001"
	ErrCodeNotificationsDisabled NotificationErrorCode = "NTF-020002"

	// Internal errors (99XXXX)
	ErrCodeNotificationInternalError NotificationErrorCode = "NTF-990001"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
