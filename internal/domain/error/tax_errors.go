// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// Tax template errors.
var (
	// ErrTaxNotFound is returned when a tax template is not found in the system.
	ErrTaxNotFound = errors.New("tax not found")

	// ErrTaxCodeAlreadyExists is returned when creating a tax with a duplicate code.
	ErrTaxCodeAlreadyExists = errors.New("tax code already exists")

	// ErrInvalidJurisdiction is returned when the jurisdiction is not one of the known values.
	ErrInvalidJurisdiction = errors.New("invalid jurisdiction")

	// ErrInvalidAdvanceNotice is returned when advance notice days is outside the 1-30 range.
	ErrInvalidAdvanceNotice = errors.New("advance notice days must be between 1 and 30")

	// ErrTaxInactive is returned when generating obligations from an inactive tax template.
	ErrTaxInactive = errors.New("tax template is inactive")
)

// TaxErrorCode defines error codes for tax errors.
// Format: TAX-XXYYYY where XX is category and YYYY is specific error.
type TaxErrorCode string

const (
	ErrCodeTaxNotFound          TaxErrorCode = "TAX-010001"
	ErrCodeTaxCodeAlreadyExists TaxErrorCode = "TAX-010002"
	ErrCodeInvalidJurisdiction  TaxErrorCode = "TAX-010003"
	ErrCodeInvalidAdvanceNotice TaxErrorCode = "TAX-010004"
	ErrCodeTaxInactive          TaxErrorCode = "TAX-010005"
	ErrCodeMissingTaxFields     TaxErrorCode = "TAX-010006"
)

// TaxError represents a tax error with code and message.
type TaxError struct {
	Code    TaxErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaxError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaxError) Unwrap() error {
	return e.Err
}

// NewTaxError creates a new TaxError with the given code and message.
func NewTaxError(code TaxErrorCode, message string, err error) *TaxError {
	return &TaxError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
