// Package installment contains installment plan-related use cases.
package installment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// CreatePlanInput represents the input for installment plan creation.
type CreatePlanInput struct {
	Name             string
	Description      string
	ClientID         *uuid.UUID
	ResponsibleID    *uuid.UUID
	TotalAmount      decimal.Decimal
	InstallmentCount int
	StartDate        time.Time
	Recurrence       valueobject.RecurrenceRule
	Notes            string
	Editor           string
}

// CreatePlanOutput represents the output of installment plan creation.
type CreatePlanOutput struct {
	Plan *entity.InstallmentPlan
}

// CreatePlanUseCase handles installment plan creation logic.
type CreatePlanUseCase struct {
	installmentRepo adapter.InstallmentRepository
	clientRepo      adapter.ClientRepository
	responsibleRepo adapter.ResponsibleRepository
	calendar        schedule.HolidayCalendar
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance.
func NewCreatePlanUseCase(
	installmentRepo adapter.InstallmentRepository,
	clientRepo adapter.ClientRepository,
	responsibleRepo adapter.ResponsibleRepository,
	calendar schedule.HolidayCalendar,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		installmentRepo: installmentRepo,
		clientRepo:      clientRepo,
		responsibleRepo: responsibleRepo,
		calendar:        calendar,
	}
}

// Execute performs the installment plan creation.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanOutput, error) {
	if input.Name == "" || input.StartDate.IsZero() {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeMissingInstallmentFields,
			"name and start date are required",
			nil,
		)
	}
	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidTotalAmount,
			fmt.Sprintf("total amount %s is not positive", input.TotalAmount),
			domainerror.ErrInvalidTotalAmount,
		)
	}
	if input.InstallmentCount < 1 || input.InstallmentCount > 60 {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidInstallmentCount,
			fmt.Sprintf("installment count %d is out of range", input.InstallmentCount),
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if err := input.Recurrence.Validate(); err != nil {
		return nil, err
	}

	var clientRef *entity.EntityRef
	if input.ClientID != nil {
		client, err := uc.clientRepo.FindByID(ctx, *input.ClientID)
		if err != nil {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		clientRef = client.Ref()
	}
	var responsibleRef *entity.EntityRef
	if input.ResponsibleID != nil {
		responsible, err := uc.responsibleRepo.FindByID(ctx, *input.ResponsibleID)
		if err != nil {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeResponsibleNotFound,
				"responsible not found",
				domainerror.ErrResponsibleNotFound,
			)
		}
		responsibleRef = responsible.Ref()
	}

	plan := entity.NewInstallmentPlan(
		input.Name,
		input.Description,
		clientRef,
		responsibleRef,
		input.TotalAmount,
		input.InstallmentCount,
		input.StartDate,
		input.Recurrence,
		input.Notes,
		input.Editor,
	)

	// The first installment falls due on the first occurrence on or after
	// the start date.
	firstDue, err := schedule.NextOccurrence(plan.Recurrence, plan.StartDate.AddDate(0, 0, -1), uc.calendar)
	if err != nil {
		return nil, err
	}
	plan.NextDueDate = &firstDue

	if err := uc.installmentRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create installment plan: %w", err)
	}

	return &CreatePlanOutput{Plan: plan}, nil
}
