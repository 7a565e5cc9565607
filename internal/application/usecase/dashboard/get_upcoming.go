package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// GetUpcomingInput represents the input for the upcoming-obligations panel.
// Zero WithinDays and Limit fall back to the panel defaults.
type GetUpcomingInput struct {
	Filter     schedule.Filter
	WithinDays int
	Limit      int
	Now        time.Time
}

// UpcomingEntry pairs an obligation with its urgency classification.
type UpcomingEntry struct {
	Obligation     *entity.Obligation
	Classification schedule.Classification
}

// GetUpcomingOutput represents the output of the upcoming-obligations panel.
type GetUpcomingOutput struct {
	Entries []*UpcomingEntry
}

// GetUpcomingUseCase lists the open obligations due soonest.
type GetUpcomingUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewGetUpcomingUseCase creates a new GetUpcomingUseCase instance.
func NewGetUpcomingUseCase(obligationRepo adapter.ObligationRepository) *GetUpcomingUseCase {
	return &GetUpcomingUseCase{obligationRepo: obligationRepo}
}

// Execute computes the upcoming list.
func (uc *GetUpcomingUseCase) Execute(ctx context.Context, input GetUpcomingInput) (*GetUpcomingOutput, error) {
	obligations, err := uc.obligationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	filtered := schedule.ApplyFilters(obligations, input.Filter)
	upcoming := schedule.Upcoming(filtered, now, input.WithinDays, input.Limit)

	entries := make([]*UpcomingEntry, 0, len(upcoming))
	for _, o := range upcoming {
		entries = append(entries, &UpcomingEntry{
			Obligation:     o,
			Classification: schedule.Classify(o.DueDate, now),
		})
	}

	return &GetUpcomingOutput{Entries: entries}, nil
}
