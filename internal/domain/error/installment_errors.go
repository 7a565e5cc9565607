// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// Installment plan errors.
var (
	// ErrInstallmentPlanNotFound is returned when an installment plan is not found in the system.
	ErrInstallmentPlanNotFound = errors.New("installment plan not found")

	// ErrInvalidTotalAmount is returned when the total amount is zero or negative.
	ErrInvalidTotalAmount = errors.New("total amount must be greater than zero")

	// ErrInvalidInstallmentCount is returned when the installment count is outside the 1-60 range.
	ErrInvalidInstallmentCount = errors.New("installment count must be between 1 and 60")

	// ErrPlanNotActive is returned when advancing an installment on a plan that is not active.
	ErrPlanNotActive = errors.New("installment plan is not active")

	// ErrInvalidStatusTransition is returned when a status change is not allowed.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// InstallmentErrorCode defines error codes for installment plan errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InstallmentErrorCode string

const (
	ErrCodeInstallmentPlanNotFound  InstallmentErrorCode = "INS-010001"
	ErrCodeInvalidTotalAmount       InstallmentErrorCode = "INS-010002"
	ErrCodeInvalidInstallmentCount  InstallmentErrorCode = "INS-010003"
	ErrCodePlanNotActive            InstallmentErrorCode = "INS-010004"
	ErrCodeInvalidStatusTransition  InstallmentErrorCode = "INS-010005"
	ErrCodeMissingInstallmentFields InstallmentErrorCode = "INS-010006"
)

// InstallmentError represents an installment plan error with code and message.
type InstallmentError struct {
	Code    InstallmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InstallmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InstallmentError) Unwrap() error {
	return e.Err
}

// NewInstallmentError creates a new InstallmentError with the given code and message.
func NewInstallmentError(code InstallmentErrorCode, message string, err error) *InstallmentError {
	return &InstallmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
