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

// UpdateObligationInput represents the input for obligation updates.
// Nil pointer fields are left untouched.
type UpdateObligationInput struct {
	ID            uuid.UUID
	Name          *string
	Description   *string
	Kind          *entity.ObligationKind
	DueDate       *time.Time
	ClientID      *uuid.UUID
	ResponsibleID *uuid.UUID
	Recurrence    *valueobject.RecurrenceRule
	Editor        string
	EditorIP      string
}

// UpdateObligationOutput represents the output of an obligation update.
type UpdateObligationOutput struct {
	Obligation *entity.Obligation
	Changes    []*entity.ChangeRecord
}

// UpdateObligationUseCase handles obligation update logic. Every field change
// is written to the audit trail alongside the update itself.
type UpdateObligationUseCase struct {
	obligationRepo  adapter.ObligationRepository
	clientRepo      adapter.ClientRepository
	responsibleRepo adapter.ResponsibleRepository
	historyRepo     adapter.HistoryRepository
	calendar        schedule.HolidayCalendar
}

// NewUpdateObligationUseCase creates a new UpdateObligationUseCase instance.
func NewUpdateObligationUseCase(
	obligationRepo adapter.ObligationRepository,
	clientRepo adapter.ClientRepository,
	responsibleRepo adapter.ResponsibleRepository,
	historyRepo adapter.HistoryRepository,
	calendar schedule.HolidayCalendar,
) *UpdateObligationUseCase {
	return &UpdateObligationUseCase{
		obligationRepo:  obligationRepo,
		clientRepo:      clientRepo,
		responsibleRepo: responsibleRepo,
		historyRepo:     historyRepo,
		calendar:        calendar,
	}
}

// Execute performs the obligation update.
func (uc *UpdateObligationUseCase) Execute(ctx context.Context, input UpdateObligationInput) (*UpdateObligationOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationNotFound,
			"obligation not found",
			domainerror.ErrObligationNotFound,
		)
	}

	var changes []*entity.ChangeRecord
	record := func(field, previous, current string) {
		if previous == current {
			return
		}
		changes = append(changes, entity.NewChangeRecord(
			obligation.ID, field, previous, current, input.Editor, input.EditorIP,
		))
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeMissingObligationFields,
				"name cannot be empty",
				nil,
			)
		}
		record("name", obligation.Name, *input.Name)
		obligation.Name = *input.Name
	}
	if input.Description != nil {
		record("description", obligation.Description, *input.Description)
		obligation.Description = *input.Description
	}
	if input.Kind != nil {
		if !entity.ValidObligationKind(*input.Kind) {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeInvalidObligationKind,
				fmt.Sprintf("unknown obligation kind %q", *input.Kind),
				domainerror.ErrInvalidObligationKind,
			)
		}
		record("kind", string(obligation.Kind), string(*input.Kind))
		obligation.Kind = *input.Kind
	}
	if input.Recurrence != nil {
		if err := input.Recurrence.Validate(); err != nil {
			return nil, err
		}
		record("recurrence", describeRule(obligation.Recurrence), describeRule(input.Recurrence))
		obligation.Recurrence = input.Recurrence
	}
	if input.DueDate != nil {
		newDue := *input.DueDate
		if obligation.Recurrence != nil {
			adjusted, err := schedule.AdjustDueDate(*obligation.Recurrence, newDue, uc.calendar)
			if err != nil {
				return nil, err
			}
			newDue = adjusted
		}
		record("due_date", obligation.DueDate.Format(time.DateOnly), newDue.Format(time.DateOnly))
		obligation.DueDate = newDue
	}
	if input.ClientID != nil {
		client, err := uc.clientRepo.FindByID(ctx, *input.ClientID)
		if err != nil {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeObligationClientNotFound,
				"client not found",
				domainerror.ErrObligationClientNotFound,
			)
		}
		record("client", refName(obligation.ClientRef), client.Name)
		obligation.ClientRef = client.Ref()
	}
	if input.ResponsibleID != nil {
		responsible, err := uc.responsibleRepo.FindByID(ctx, *input.ResponsibleID)
		if err != nil {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeObligationResponsibleMissing,
				"responsible not found",
				domainerror.ErrObligationResponsibleNotFound,
			)
		}
		record("responsible", refName(obligation.ResponsibleRef), responsible.Name)
		obligation.ResponsibleRef = responsible.Ref()
	}

	if len(changes) == 0 {
		return &UpdateObligationOutput{Obligation: obligation}, nil
	}

	obligation.LastEditor = input.Editor
	obligation.UpdatedAt = time.Now().UTC()

	if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}
	if err := uc.historyRepo.CreateBatch(ctx, changes); err != nil {
		return nil, fmt.Errorf("failed to record obligation changes: %w", err)
	}

	return &UpdateObligationOutput{Obligation: obligation, Changes: changes}, nil
}

func describeRule(rule *valueobject.RecurrenceRule) string {
	if rule == nil {
		return "none"
	}
	switch rule.Frequency {
	case valueobject.FrequencyAnnual:
		return fmt.Sprintf("%s month=%d day=%d", rule.Frequency, rule.AnchorMonth, rule.AnchorDayOfMonth)
	case valueobject.FrequencyCustomDays:
		return fmt.Sprintf("%s interval=%d", rule.Frequency, rule.CustomIntervalDays)
	default:
		return fmt.Sprintf("%s day=%d", rule.Frequency, rule.AnchorDayOfMonth)
	}
}

func refName(ref *entity.EntityRef) string {
	if ref == nil {
		return ""
	}
	return ref.Name
}
