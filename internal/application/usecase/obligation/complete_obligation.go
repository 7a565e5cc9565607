package obligation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// CompleteObligationInput represents the input for completing an obligation.
// Now is injected so completion is reproducible in tests; a zero value falls
// back to the wall clock.
type CompleteObligationInput struct {
	ID     uuid.UUID
	Editor string
	Now    time.Time
}

// CompleteObligationOutput represents the output of completing an obligation.
// NextOccurrence is nil for one-off obligations.
type CompleteObligationOutput struct {
	Obligation     *entity.Obligation
	NextOccurrence *entity.Obligation
}

// CompleteObligationUseCase marks an obligation done and, for recurring
// obligations, creates the next occurrence of the series.
type CompleteObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
	historyRepo    adapter.HistoryRepository
	calendar       schedule.HolidayCalendar
}

// NewCompleteObligationUseCase creates a new CompleteObligationUseCase instance.
func NewCompleteObligationUseCase(
	obligationRepo adapter.ObligationRepository,
	historyRepo adapter.HistoryRepository,
	calendar schedule.HolidayCalendar,
) *CompleteObligationUseCase {
	return &CompleteObligationUseCase{
		obligationRepo: obligationRepo,
		historyRepo:    historyRepo,
		calendar:       calendar,
	}
}

// Execute performs the completion.
func (uc *CompleteObligationUseCase) Execute(ctx context.Context, input CompleteObligationInput) (*CompleteObligationOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationNotFound,
			"obligation not found",
			domainerror.ErrObligationNotFound,
		)
	}
	if obligation.Completed {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationAlreadyCompleted,
			"obligation is already completed",
			domainerror.ErrObligationAlreadyCompleted,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	obligation.MarkCompleted(now)
	obligation.LastEditor = input.Editor
	// A completed occurrence no longer drives generation.
	obligation.NextGenerationAt = nil

	var next *entity.Obligation
	if obligation.IsRecurring() {
		nextDue, err := schedule.NextOccurrence(*obligation.Recurrence, obligation.DueDate, uc.calendar)
		if err != nil {
			return nil, err
		}
		next = obligation.NextOfSeries(nextDue, input.Editor)
		nextGeneration := nextDue
		next.NextGenerationAt = &nextGeneration
	}

	if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to complete obligation: %w", err)
	}
	if next != nil {
		if err := uc.obligationRepo.Create(ctx, next); err != nil {
			return nil, fmt.Errorf("failed to create next occurrence: %w", err)
		}
	}

	record := entity.NewChangeRecord(obligation.ID, "completed", "false", "true", input.Editor, "")
	if err := uc.historyRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	return &CompleteObligationOutput{Obligation: obligation, NextOccurrence: next}, nil
}
