// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// Schedule domain errors.
var (
	// ErrInvalidRule is returned when a recurrence rule fails its field-presence or range invariant.
	ErrInvalidRule = errors.New("invalid recurrence rule")

	// ErrNonTerminatingAdjustment is returned when the weekend/holiday adjustment loop
	// exceeds its iteration bound, which indicates a malformed holiday calendar.
	ErrNonTerminatingAdjustment = errors.New("due date adjustment did not terminate")
)

// ScheduleErrorCode defines error codes for schedule errors.
// Format: SCH-XXYYYY where XX is category and YYYY is specific error.
type ScheduleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRule              ScheduleErrorCode = "SCH-010001"
	ErrCodeMissingAnchorDay         ScheduleErrorCode = "SCH-010002"
	ErrCodeMissingAnchorMonth       ScheduleErrorCode = "SCH-010003"
	ErrCodeMissingCustomInterval    ScheduleErrorCode = "SCH-010004"
	ErrCodeNonTerminatingAdjustment ScheduleErrorCode = "SCH-020001"
)

// ScheduleError represents a schedule error with code and message.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScheduleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// NewScheduleError creates a new ScheduleError with the given code and message.
func NewScheduleError(code ScheduleErrorCode, message string, err error) *ScheduleError {
	return &ScheduleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
