package obligation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
)

// DeleteObligationInput represents the input for obligation deletion.
type DeleteObligationInput struct {
	ID     uuid.UUID
	Editor string
}

// DeleteObligationUseCase handles obligation deletion logic.
// Deletion is soft; the audit trail stays intact.
type DeleteObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewDeleteObligationUseCase creates a new DeleteObligationUseCase instance.
func NewDeleteObligationUseCase(obligationRepo adapter.ObligationRepository) *DeleteObligationUseCase {
	return &DeleteObligationUseCase{obligationRepo: obligationRepo}
}

// Execute performs the obligation deletion.
func (uc *DeleteObligationUseCase) Execute(ctx context.Context, input DeleteObligationInput) error {
	if _, err := uc.obligationRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewObligationError(
			domainerror.ErrCodeObligationNotFound,
			"obligation not found",
			domainerror.ErrObligationNotFound,
		)
	}

	if err := uc.obligationRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete obligation: %w", err)
	}
	return nil
}
