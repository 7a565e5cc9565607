// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// GetStatisticsInput represents the input for the statistics panel.
// The optional filter narrows the collection before counting.
type GetStatisticsInput struct {
	Filter schedule.Filter
	Now    time.Time
}

// GetStatisticsOutput represents the output of the statistics panel.
type GetStatisticsOutput struct {
	Statistics schedule.Statistics
}

// GetStatisticsUseCase computes the urgency tier counters for the dashboard.
type GetStatisticsUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(obligationRepo adapter.ObligationRepository) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{obligationRepo: obligationRepo}
}

// Execute computes the statistics.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	obligations, err := uc.obligationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	filtered := schedule.ApplyFilters(obligations, input.Filter)
	return &GetStatisticsOutput{Statistics: schedule.ComputeStatistics(filtered, now)}, nil
}
