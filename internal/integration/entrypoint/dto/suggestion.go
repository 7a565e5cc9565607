// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/application/usecase/suggestion"
)

// SuggestionDraftRequest is one draft obligation submitted for classification.
type SuggestionDraftRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// StartSuggestionRequest represents the request body for starting a classification run.
type StartSuggestionRequest struct {
	Drafts []SuggestionDraftRequest `json:"drafts" binding:"required,min=1,max=1000,dive"`
}

// StartSuggestionResponse represents the response for starting a classification run.
type StartSuggestionResponse struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// SuggestionResultResponse represents one AI suggestion in API responses.
type SuggestionResultResponse struct {
	DraftID            string  `json:"draft_id"`
	SuggestedKind      string  `json:"suggested_kind"`
	SuggestedFrequency string  `json:"suggested_frequency"`
	AnchorDayOfMonth   int     `json:"anchor_day_of_month,omitempty"`
	Confidence         float64 `json:"confidence"`
	Reasoning          string  `json:"reasoning,omitempty"`
}

// SuggestionErrorResponse represents a failed classification run in API responses.
type SuggestionErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// SuggestionStatusResponse represents the status of a classification run.
type SuggestionStatusResponse struct {
	IsProcessing bool                       `json:"is_processing"`
	JobID        string                     `json:"job_id,omitempty"`
	Results      []SuggestionResultResponse `json:"results,omitempty"`
	HasError     bool                       `json:"has_error"`
	Error        *SuggestionErrorResponse   `json:"error,omitempty"`
}

// ToSuggestionStatusResponse converts a status output to the response DTO.
func ToSuggestionStatusResponse(output *suggestion.GetStatusOutput) SuggestionStatusResponse {
	response := SuggestionStatusResponse{
		IsProcessing: output.IsProcessing,
		JobID:        output.JobID,
		HasError:     output.HasError,
	}

	if len(output.Results) > 0 {
		response.Results = make([]SuggestionResultResponse, len(output.Results))
		for i, result := range output.Results {
			response.Results[i] = toSuggestionResultResponse(result)
		}
	}
	if output.Error != nil {
		response.Error = &SuggestionErrorResponse{
			Code:      output.Error.Code,
			Message:   output.Error.Message,
			Retryable: output.Error.Retryable,
			Timestamp: output.Error.Timestamp,
		}
	}

	return response
}

func toSuggestionResultResponse(result *adapter.ObligationSuggestionResult) SuggestionResultResponse {
	return SuggestionResultResponse{
		DraftID:            result.DraftID.String(),
		SuggestedKind:      result.SuggestedKind,
		SuggestedFrequency: result.SuggestedFrequency,
		AnchorDayOfMonth:   result.AnchorDayOfMonth,
		Confidence:         result.Confidence,
		Reasoning:          result.Reasoning,
	}
}
