package installment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
)

// ListPlansInput represents the input for listing installment plans.
type ListPlansInput struct {
	Status *entity.PlanStatus
}

// ListPlansOutput represents the output of listing installment plans.
type ListPlansOutput struct {
	Plans []*entity.InstallmentPlan
}

// ListPlansUseCase lists installment plans, optionally filtered by status.
type ListPlansUseCase struct {
	installmentRepo adapter.InstallmentRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(installmentRepo adapter.InstallmentRepository) *ListPlansUseCase {
	return &ListPlansUseCase{installmentRepo: installmentRepo}
}

// Execute lists the plans.
func (uc *ListPlansUseCase) Execute(ctx context.Context, input ListPlansInput) (*ListPlansOutput, error) {
	var (
		plans []*entity.InstallmentPlan
		err   error
	)
	if input.Status != nil {
		plans, err = uc.installmentRepo.FindByStatus(ctx, *input.Status)
	} else {
		plans, err = uc.installmentRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list installment plans: %w", err)
	}
	return &ListPlansOutput{Plans: plans}, nil
}

// ChangePlanStatusInput represents the input for an installment plan status change.
type ChangePlanStatusInput struct {
	ID     uuid.UUID
	Status entity.PlanStatus
	Editor string
}

// ChangePlanStatusOutput represents the output of an installment plan status change.
type ChangePlanStatusOutput struct {
	Plan *entity.InstallmentPlan
}

// ChangePlanStatusUseCase applies the plan status state machine.
type ChangePlanStatusUseCase struct {
	installmentRepo adapter.InstallmentRepository
}

// NewChangePlanStatusUseCase creates a new ChangePlanStatusUseCase instance.
func NewChangePlanStatusUseCase(installmentRepo adapter.InstallmentRepository) *ChangePlanStatusUseCase {
	return &ChangePlanStatusUseCase{installmentRepo: installmentRepo}
}

// Execute performs the status change.
func (uc *ChangePlanStatusUseCase) Execute(ctx context.Context, input ChangePlanStatusInput) (*ChangePlanStatusOutput, error) {
	if !entity.ValidPlanStatus(input.Status) {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("unknown status %q", input.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	plan, err := uc.installmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentPlanNotFound,
			"installment plan not found",
			domainerror.ErrInstallmentPlanNotFound,
		)
	}

	if !plan.CanTransitionTo(input.Status) {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot move plan from %s to %s", plan.Status, input.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	plan.Status = input.Status
	plan.LastEditor = input.Editor
	plan.UpdatedAt = time.Now().UTC()
	if input.Status == entity.PlanStatusCancelled || input.Status == entity.PlanStatusCompleted {
		plan.NextDueDate = nil
	}

	if err := uc.installmentRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to change plan status: %w", err)
	}

	return &ChangePlanStatusOutput{Plan: plan}, nil
}

// DeletePlanInput represents the input for installment plan deletion.
type DeletePlanInput struct {
	ID uuid.UUID
}

// DeletePlanUseCase handles installment plan deletion logic.
type DeletePlanUseCase struct {
	installmentRepo adapter.InstallmentRepository
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase instance.
func NewDeletePlanUseCase(installmentRepo adapter.InstallmentRepository) *DeletePlanUseCase {
	return &DeletePlanUseCase{installmentRepo: installmentRepo}
}

// Execute performs the plan deletion.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, input DeletePlanInput) error {
	if _, err := uc.installmentRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentPlanNotFound,
			"installment plan not found",
			domainerror.ErrInstallmentPlanNotFound,
		)
	}
	if err := uc.installmentRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete installment plan: %w", err)
	}
	return nil
}
