package installment

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

// AdvanceInstallmentInput represents the input for registering an installment payment.
type AdvanceInstallmentInput struct {
	ID     uuid.UUID
	Editor string
}

// AdvanceInstallmentOutput represents the output of registering an installment payment.
type AdvanceInstallmentOutput struct {
	Plan *entity.InstallmentPlan
}

// AdvanceInstallmentUseCase registers payment of the current installment and
// moves the plan to the next one, or completes it after the last.
type AdvanceInstallmentUseCase struct {
	installmentRepo adapter.InstallmentRepository
	calendar        schedule.HolidayCalendar
}

// NewAdvanceInstallmentUseCase creates a new AdvanceInstallmentUseCase instance.
func NewAdvanceInstallmentUseCase(
	installmentRepo adapter.InstallmentRepository,
	calendar schedule.HolidayCalendar,
) *AdvanceInstallmentUseCase {
	return &AdvanceInstallmentUseCase{installmentRepo: installmentRepo, calendar: calendar}
}

// Execute performs the advancement.
func (uc *AdvanceInstallmentUseCase) Execute(ctx context.Context, input AdvanceInstallmentInput) (*AdvanceInstallmentOutput, error) {
	plan, err := uc.installmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentPlanNotFound,
			"installment plan not found",
			domainerror.ErrInstallmentPlanNotFound,
		)
	}
	if plan.Status != entity.PlanStatusActive {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodePlanNotActive,
			fmt.Sprintf("plan is %s", plan.Status),
			domainerror.ErrPlanNotActive,
		)
	}

	previousDue := plan.NextDueDate
	plan.Advance()
	plan.LastEditor = input.Editor

	if plan.Status == entity.PlanStatusActive && previousDue != nil {
		nextDue, err := schedule.NextOccurrence(plan.Recurrence, *previousDue, uc.calendar)
		if err != nil {
			return nil, err
		}
		plan.NextDueDate = &nextDue
	}
	if plan.Status == entity.PlanStatusCompleted {
		endDate := time.Now().UTC()
		plan.EndDate = &endDate
	}

	if err := uc.installmentRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to advance installment plan: %w", err)
	}

	return &AdvanceInstallmentOutput{Plan: plan}, nil
}
