// Package error defines domain-specific errors for the Fiscal Tracker application.
package error

import "errors"

// AI suggestion errors.
var (
	// ErrSuggestionAlreadyProcessing is returned when a suggestion run is already in progress.
	ErrSuggestionAlreadyProcessing = errors.New("suggestion processing already in progress")

	// ErrNoDrafts is returned when a suggestion run is started without drafts.
	ErrNoDrafts = errors.New("no drafts to classify")

	// ErrSuggestionServiceUnavailable is returned when the AI service is not configured.
	ErrSuggestionServiceUnavailable = errors.New("suggestion service unavailable")
)

// SuggestionErrorCode defines error codes for AI suggestion errors.
// Format: SUG-XXYYYY where XX is category and YYYY is specific error.
type SuggestionErrorCode string

const (
	ErrCodeSuggestionAlreadyProcessing SuggestionErrorCode = "SUG-010001"
	ErrCodeNoDrafts                    SuggestionErrorCode = "SUG-010002"
	ErrCodeSuggestionUnavailable       SuggestionErrorCode = "SUG-010003"
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
