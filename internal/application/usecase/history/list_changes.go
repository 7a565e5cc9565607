// Package history contains audit trail use cases.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// defaultRecentLimit caps the cross-obligation feed when the caller does not
// specify a limit.
const defaultRecentLimit = 50

// ListChangesInput represents the input for listing change records.
// A nil ObligationID lists the most recent changes across all obligations.
type ListChangesInput struct {
	ObligationID *uuid.UUID
	Limit        int
}

// ListChangesOutput represents the output of listing change records.
type ListChangesOutput struct {
	Records []*entity.ChangeRecord
}

// ListChangesUseCase reads the obligation audit trail.
type ListChangesUseCase struct {
	historyRepo adapter.HistoryRepository
}

// NewListChangesUseCase creates a new ListChangesUseCase instance.
func NewListChangesUseCase(historyRepo adapter.HistoryRepository) *ListChangesUseCase {
	return &ListChangesUseCase{historyRepo: historyRepo}
}

// Execute lists the change records.
func (uc *ListChangesUseCase) Execute(ctx context.Context, input ListChangesInput) (*ListChangesOutput, error) {
	if input.ObligationID != nil {
		records, err := uc.historyRepo.FindByObligation(ctx, *input.ObligationID)
		if err != nil {
			return nil, fmt.Errorf("failed to list obligation changes: %w", err)
		}
		return &ListChangesOutput{Records: records}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	records, err := uc.historyRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent changes: %w", err)
	}
	return &ListChangesOutput{Records: records}, nil
}
