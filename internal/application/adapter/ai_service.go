// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ObligationSuggestionRequest represents a request to classify draft obligations.
type ObligationSuggestionRequest struct {
	Drafts []*ObligationDraftForAI
}

// ObligationDraftForAI represents draft obligation data for AI processing.
type ObligationDraftForAI struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// ObligationSuggestionResult represents the AI's kind and recurrence suggestion
// for one draft obligation.
type ObligationSuggestionResult struct {
	DraftID            uuid.UUID
	SuggestedKind      string
	SuggestedFrequency string
	AnchorDayOfMonth   int
	Confidence         float64
	Reasoning          string
}

// SuggestionService defines the interface for AI-assisted obligation classification.
type SuggestionService interface {
	// Suggest analyzes draft obligations and returns kind/recurrence suggestions.
	Suggest(ctx context.Context, request *ObligationSuggestionRequest) ([]*ObligationSuggestionResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
