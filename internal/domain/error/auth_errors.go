// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists is returned when registering with an email that is already in use.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWeakPassword is returned when a password does not meet the minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidResetToken is returned when a password reset token is invalid or expired.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUT-010002"
	ErrCodeUserNotFound       AuthErrorCode = "AUT-010003"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-010004"
	ErrCodeMissingAuthFields  AuthErrorCode = "AUT-010005"
	ErrCodeInvalidEmail       AuthErrorCode = "AUT-010006"

	// Token errors (02XXXX)
	ErrCodeInvalidToken      AuthErrorCode = "AUT-020001"
	ErrCodeMissingToken      AuthErrorCode = "AUT-020002"
	ErrCodeInvalidResetToken AuthErrorCode = "AUT-020003"
	ErrCodeExpiredResetToken AuthErrorCode = "AUT-020004"

	// Throttling (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
