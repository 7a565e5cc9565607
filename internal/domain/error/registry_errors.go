// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// Client and responsible registry errors.
var (
	// ErrClientNotFound is returned when a client is not found in the system.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientStillReferenced is returned when deleting a client that obligations still reference.
	ErrClientStillReferenced = errors.New("client is still referenced by obligations")

	// ErrResponsibleNotFound is returned when a responsible person is not found in the system.
	ErrResponsibleNotFound = errors.New("responsible not found")

	// ErrResponsibleStillReferenced is returned when deleting a responsible that obligations still reference.
	ErrResponsibleStillReferenced = errors.New("responsible is still referenced by obligations")

	// ErrMissingRegistryName is returned when a client or responsible is created without a name.
	ErrMissingRegistryName = errors.New("name is required")
)

// RegistryErrorCode defines error codes for client/responsible registry errors.
// Format: REG-XXYYYY where XX is category and YYYY is specific error.
type RegistryErrorCode string

const (
	ErrCodeClientNotFound            RegistryErrorCode = "REG-010001"
	ErrCodeClientStillReferenced     RegistryErrorCode = "REG-010002"
	ErrCodeResponsibleNotFound       RegistryErrorCode = "REG-010003"
	ErrCodeResponsibleStillReferenced RegistryErrorCode = "REG-010004"
	ErrCodeMissingRegistryName       RegistryErrorCode = "REG-010005"
)

// RegistryError represents a registry error with code and message.
type RegistryError struct {
	Code    RegistryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// NewRegistryError creates a new RegistryError with the given code and message.
func NewRegistryError(code RegistryErrorCode, message string, err error) *RegistryError {
	return &RegistryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
