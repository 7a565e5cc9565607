// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// Reminder delivery errors.
var (
	// ErrInvalidTemplate is returned when a reminder references an unknown template.
	ErrInvalidTemplate = errors.New("unknown reminder template")

	// ErrTemporaryDeliveryFailure is returned for transient delivery failures worth retrying.
	ErrTemporaryDeliveryFailure = errors.New("temporary delivery failure")

	// ErrPermanentDeliveryFailure is returned for delivery failures that must not be retried.
	ErrPermanentDeliveryFailure = errors.New("permanent delivery failure")
)

// ReminderErrorCode defines error codes for reminder errors.
// Format: REM-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	ErrCodeInvalidTemplate          ReminderErrorCode = "REM-010001"
	ErrCodeQueueFailed              ReminderErrorCode = "REM-010002"
	ErrCodeTemporaryDeliveryFailure ReminderErrorCode = "REM-020001"
	ErrCodePermanentDeliveryFailure ReminderErrorCode = "REM-020002"
)

// ReminderError represents a reminder delivery error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
