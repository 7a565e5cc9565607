package obligation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// GetObligationInput represents the input for fetching a single obligation.
type GetObligationInput struct {
	ID  uuid.UUID
	Now time.Time
}

// GetObligationOutput represents the output of fetching a single obligation.
type GetObligationOutput struct {
	Obligation *ObligationWithStatus
}

// GetObligationUseCase fetches one obligation with its urgency classification.
type GetObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewGetObligationUseCase creates a new GetObligationUseCase instance.
func NewGetObligationUseCase(obligationRepo adapter.ObligationRepository) *GetObligationUseCase {
	return &GetObligationUseCase{obligationRepo: obligationRepo}
}

// Execute performs the fetch.
func (uc *GetObligationUseCase) Execute(ctx context.Context, input GetObligationInput) (*GetObligationOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationNotFound,
			"obligation not found",
			domainerror.ErrObligationNotFound,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return &GetObligationOutput{
		Obligation: &ObligationWithStatus{
			Obligation:     obligation,
			Classification: schedule.Classify(obligation.DueDate, now),
		},
	}, nil
}
