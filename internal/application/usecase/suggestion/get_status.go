package suggestion

import (
	"context"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
)

// GetStatusInput represents the input for getting classification run status.
type GetStatusInput struct {
	UserID uuid.UUID
}

// GetStatusOutput represents the output of getting classification run status.
type GetStatusOutput struct {
	IsProcessing bool                                  `json:"is_processing"`
	JobID        string                                `json:"job_id,omitempty"`
	Results      []*adapter.ObligationSuggestionResult `json:"results,omitempty"`
	HasError     bool                                  `json:"has_error"`
	Error        *ProcessingError                      `json:"error,omitempty"`
}

// GetStatusUseCase reports the state of a user's classification run.
type GetStatusUseCase struct {
	processingTracker ProcessingTracker
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(processingTracker ProcessingTracker) *GetStatusUseCase {
	return &GetStatusUseCase{processingTracker: processingTracker}
}

// Execute retrieves the classification status for a user.
func (uc *GetStatusUseCase) Execute(_ context.Context, input GetStatusInput) (*GetStatusOutput, error) {
	output := &GetStatusOutput{
		IsProcessing: uc.processingTracker.IsProcessing(input.UserID),
		JobID:        uc.processingTracker.GetJobID(input.UserID),
		Results:      uc.processingTracker.GetResults(input.UserID),
	}
	if uc.processingTracker.HasError(input.UserID) {
		output.HasError = true
		output.Error = uc.processingTracker.GetError(input.UserID)
	}
	return output, nil
}

// ClearSuggestionsInput represents the input for clearing stored suggestions.
type ClearSuggestionsInput struct {
	UserID uuid.UUID
}

// ClearSuggestionsUseCase discards a user's stored suggestions and errors.
type ClearSuggestionsUseCase struct {
	processingTracker ProcessingTracker
}

// NewClearSuggestionsUseCase creates a new ClearSuggestionsUseCase instance.
func NewClearSuggestionsUseCase(processingTracker ProcessingTracker) *ClearSuggestionsUseCase {
	return &ClearSuggestionsUseCase{processingTracker: processingTracker}
}

// Execute clears the stored suggestions.
func (uc *ClearSuggestionsUseCase) Execute(_ context.Context, input ClearSuggestionsInput) error {
	uc.processingTracker.ClearResults(input.UserID)
	uc.processingTracker.ClearError(input.UserID)
	return nil
}
