// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// Obligation domain errors.
var (
	// ErrObligationNotFound is returned when an obligation is not found in the system.
	ErrObligationNotFound = errors.New("obligation not found")

	// ErrObligationAlreadyCompleted is returned when completing an obligation that is already completed.
	ErrObligationAlreadyCompleted = errors.New("obligation already completed")

	// ErrInvalidObligationKind is returned when the obligation kind is not one of the known kinds.
	ErrInvalidObligationKind = errors.New("invalid obligation kind")

	// ErrMissingDueDate is returned when an obligation is created without a due date.
	ErrMissingDueDate = errors.New("due date is required")

	// ErrObligationClientNotFound is returned when the referenced client does not exist.
	ErrObligationClientNotFound = errors.New("client not found")

	// ErrObligationResponsibleNotFound is returned when the referenced responsible does not exist.
	ErrObligationResponsibleNotFound = errors.New("responsible not found")
)

// ObligationErrorCode defines error codes for obligation errors.
// Format: OBL-XXYYYY where XX is category and YYYY is specific error.
type ObligationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeObligationNotFound           ObligationErrorCode = "OBL-010001"
	ErrCodeObligationAlreadyCompleted   ObligationErrorCode = "OBL-010002"
	ErrCodeInvalidObligationKind        ObligationErrorCode = "OBL-010003"
	ErrCodeMissingDueDate               ObligationErrorCode = "OBL-010004"
	ErrCodeMissingObligationFields      ObligationErrorCode = "OBL-010005"
	ErrCodeObligationClientNotFound     ObligationErrorCode = "OBL-010006"
	ErrCodeObligationResponsibleMissing ObligationErrorCode = "OBL-010007"
)

// ObligationError represents an obligation error with code and message.
type ObligationError struct {
	Code    ObligationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ObligationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ObligationError) Unwrap() error {
	return e.Err
}

// NewObligationError creates a new ObligationError with the given code and message.
func NewObligationError(code ObligationErrorCode, message string, err error) *ObligationError {
	return &ObligationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
