package obligation

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// ListObligationsInput represents the input for listing obligations.
// Now anchors urgency classification; a zero value falls back to the wall clock.
type ListObligationsInput struct {
	Filter schedule.Filter
	Now    time.Time
}

// ObligationWithStatus pairs an obligation with its urgency classification.
type ObligationWithStatus struct {
	Obligation     *entity.Obligation
	Classification schedule.Classification
}

// ListObligationsOutput represents the output of listing obligations.
type ListObligationsOutput struct {
	Obligations []*ObligationWithStatus
}

// ListObligationsUseCase lists obligations with filters and urgency applied.
type ListObligationsUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewListObligationsUseCase creates a new ListObligationsUseCase instance.
func NewListObligationsUseCase(obligationRepo adapter.ObligationRepository) *ListObligationsUseCase {
	return &ListObligationsUseCase{obligationRepo: obligationRepo}
}

// Execute performs the listing.
func (uc *ListObligationsUseCase) Execute(ctx context.Context, input ListObligationsInput) (*ListObligationsOutput, error) {
	obligations, err := uc.obligationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	filtered := schedule.ApplyFilters(obligations, input.Filter)
	result := make([]*ObligationWithStatus, 0, len(filtered))
	for _, o := range filtered {
		result = append(result, &ObligationWithStatus{
			Obligation:     o,
			Classification: schedule.Classify(o.DueDate, now),
		})
	}

	return &ListObligationsOutput{Obligations: result}, nil
}
