package mock

import (
	"context"
	"strings"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
)

// SuggestionServiceMock classifies drafts with a fixed keyword table so
// scenarios get deterministic results without calling an external API.
type SuggestionServiceMock struct {
	Available bool
	Err       error
}

// NewSuggestionService creates an available mock suggestion service.
func NewSuggestionService() *SuggestionServiceMock {
	return &SuggestionServiceMock{Available: true}
}

// IsAvailable reports whether the mock should behave as configured.
func (s *SuggestionServiceMock) IsAvailable() bool {
	return s.Available
}

// Suggest returns a canned classification per draft.
func (s *SuggestionServiceMock) Suggest(ctx context.Context, request *adapter.ObligationSuggestionRequest) ([]*adapter.ObligationSuggestionResult, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	results := make([]*adapter.ObligationSuggestionResult, 0, len(request.Drafts))
	for _, draft := range request.Drafts {
		result := &adapter.ObligationSuggestionResult{
			DraftID:            draft.ID,
			SuggestedKind:      "other",
			SuggestedFrequency: "none",
			Confidence:         0.5,
			Reasoning:          "sem correspondencia conhecida",
		}

		name := strings.ToUpper(draft.Name)
		switch {
		case strings.Contains(name, "DAS"):
			result.SuggestedKind = "tax"
			result.SuggestedFrequency = "monthly"
			result.AnchorDayOfMonth = 20
			result.Confidence = 0.95
			result.Reasoning = "DAS do Simples Nacional, vencimento mensal dia 20"
		case strings.Contains(name, "DARF"):
			result.SuggestedKind = "tax"
			result.SuggestedFrequency = "quarterly"
			result.AnchorDayOfMonth = 31
			result.Confidence = 0.9
			result.Reasoning = "DARF trimestral"
		case strings.Contains(name, "DCTF"), strings.Contains(name, "SPED"):
			result.SuggestedKind = "declaration"
			result.SuggestedFrequency = "monthly"
			result.AnchorDayOfMonth = 15
			result.Confidence = 0.9
			result.Reasoning = "declaracao acessoria mensal"
		case strings.Contains(name, "ALVARA"), strings.Contains(name, "CERTIDAO"):
			result.SuggestedKind = "document"
			result.SuggestedFrequency = "annual"
			result.AnchorDayOfMonth = 1
			result.Confidence = 0.8
			result.Reasoning = "renovacao anual de documento"
		}

		results = append(results, result)
	}

	return results, nil
}
