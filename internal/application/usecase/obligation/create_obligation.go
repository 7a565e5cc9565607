// Package obligation contains obligation-related use cases.
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
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// CreateObligationInput represents the input for obligation creation.
type CreateObligationInput struct {
	Name          string
	Description   string
	Kind          entity.ObligationKind
	DueDate       time.Time
	ClientID      *uuid.UUID
	ResponsibleID *uuid.UUID
	Recurrence    *valueobject.RecurrenceRule
	Editor        string
}

// CreateObligationOutput represents the output of obligation creation.
type CreateObligationOutput struct {
	Obligation *entity.Obligation
}

// CreateObligationUseCase handles obligation creation logic.
type CreateObligationUseCase struct {
	obligationRepo  adapter.ObligationRepository
	clientRepo      adapter.ClientRepository
	responsibleRepo adapter.ResponsibleRepository
	calendar        schedule.HolidayCalendar
}

// NewCreateObligationUseCase creates a new CreateObligationUseCase instance.
func NewCreateObligationUseCase(
	obligationRepo adapter.ObligationRepository,
	clientRepo adapter.ClientRepository,
	responsibleRepo adapter.ResponsibleRepository,
	calendar schedule.HolidayCalendar,
) *CreateObligationUseCase {
	return &CreateObligationUseCase{
		obligationRepo:  obligationRepo,
		clientRepo:      clientRepo,
		responsibleRepo: responsibleRepo,
		calendar:        calendar,
	}
}

// Execute performs the obligation creation.
func (uc *CreateObligationUseCase) Execute(ctx context.Context, input CreateObligationInput) (*CreateObligationOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeMissingObligationFields,
			"name is required",
			nil,
		)
	}
	if !entity.ValidObligationKind(input.Kind) {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidObligationKind,
			fmt.Sprintf("unknown obligation kind %q", input.Kind),
			domainerror.ErrInvalidObligationKind,
		)
	}
	if input.DueDate.IsZero() {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeMissingDueDate,
			"due date is required",
			domainerror.ErrMissingDueDate,
		)
	}

	// Recurrence rules are validated up front; an invalid rule is never
	// silently defaulted.
	if input.Recurrence != nil {
		if err := input.Recurrence.Validate(); err != nil {
			return nil, err
		}
	}

	clientRef, err := uc.resolveClient(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	responsibleRef, err := uc.resolveResponsible(ctx, input.ResponsibleID)
	if err != nil {
		return nil, err
	}

	obligation := entity.NewObligation(
		input.Name,
		input.Description,
		input.Kind,
		input.DueDate,
		clientRef,
		responsibleRef,
		input.Recurrence,
		input.Editor,
	)

	// The initial due date honors the rule's shift policy the same way
	// generated occurrences do.
	if input.Recurrence != nil {
		adjusted, err := schedule.AdjustDueDate(*input.Recurrence, obligation.DueDate, uc.calendar)
		if err != nil {
			return nil, err
		}
		obligation.DueDate = adjusted
	}

	if obligation.IsRecurring() {
		nextGeneration := obligation.DueDate
		obligation.NextGenerationAt = &nextGeneration
	}

	if err := uc.obligationRepo.Create(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to create obligation: %w", err)
	}

	return &CreateObligationOutput{Obligation: obligation}, nil
}

func (uc *CreateObligationUseCase) resolveClient(ctx context.Context, id *uuid.UUID) (*entity.EntityRef, error) {
	if id == nil {
		return nil, nil
	}
	client, err := uc.clientRepo.FindByID(ctx, *id)
	if err != nil {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationClientNotFound,
			"client not found",
			domainerror.ErrObligationClientNotFound,
		)
	}
	return client.Ref(), nil
}

func (uc *CreateObligationUseCase) resolveResponsible(ctx context.Context, id *uuid.UUID) (*entity.EntityRef, error) {
	if id == nil {
		return nil, nil
	}
	responsible, err := uc.responsibleRepo.FindByID(ctx, *id)
	if err != nil {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationResponsibleMissing,
			"responsible not found",
			domainerror.ErrObligationResponsibleNotFound,
		)
	}
	return responsible.Ref(), nil
}
