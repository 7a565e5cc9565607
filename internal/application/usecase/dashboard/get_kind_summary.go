package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// GetKindSummaryInput represents the input for the kind-distribution panel.
type GetKindSummaryInput struct {
	Filter schedule.Filter
}

// GetKindSummaryOutput represents the output of the kind-distribution panel.
type GetKindSummaryOutput struct {
	Summary map[entity.ObligationKind]schedule.KindCount
}

// GetKindSummaryUseCase groups obligations by kind.
type GetKindSummaryUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewGetKindSummaryUseCase creates a new GetKindSummaryUseCase instance.
func NewGetKindSummaryUseCase(obligationRepo adapter.ObligationRepository) *GetKindSummaryUseCase {
	return &GetKindSummaryUseCase{obligationRepo: obligationRepo}
}

// Execute computes the kind summary.
func (uc *GetKindSummaryUseCase) Execute(ctx context.Context, input GetKindSummaryInput) (*GetKindSummaryOutput, error) {
	obligations, err := uc.obligationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}

	filtered := schedule.ApplyFilters(obligations, input.Filter)
	return &GetKindSummaryOutput{Summary: schedule.ByKind(filtered)}, nil
}

// GetCalendarInput represents the input for the month calendar view.
type GetCalendarInput struct {
	Year  int
	Month time.Month
	Now   time.Time
}

// CalendarDay groups the obligations due on one day of the month.
type CalendarDay struct {
	Date        time.Time
	Obligations []*UpcomingEntry
}

// GetCalendarOutput represents the output of the month calendar view.
type GetCalendarOutput struct {
	Days []*CalendarDay
}

// GetCalendarUseCase lists the obligations of a month grouped by due day.
type GetCalendarUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(obligationRepo adapter.ObligationRepository) *GetCalendarUseCase {
	return &GetCalendarUseCase{obligationRepo: obligationRepo}
}

// Execute computes the calendar view. Days without obligations are omitted.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	obligations, err := uc.obligationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	from := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	filter := schedule.Filter{DateFrom: &from, DateTo: &to}

	byDay := make(map[int][]*UpcomingEntry)
	for _, o := range schedule.ApplyFilters(obligations, filter) {
		day := o.DueDate.Day()
		byDay[day] = append(byDay[day], &UpcomingEntry{
			Obligation:     o,
			Classification: schedule.Classify(o.DueDate, now),
		})
	}

	days := make([]*CalendarDay, 0, len(byDay))
	for day := 1; day <= to.Day(); day++ {
		entries, ok := byDay[day]
		if !ok {
			continue
		}
		days = append(days, &CalendarDay{
			Date:        time.Date(input.Year, input.Month, day, 0, 0, 0, 0, time.UTC),
			Obligations: entries,
		})
	}

	return &GetCalendarOutput{Days: days}, nil
}
