package tax

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// ListTaxesOutput represents the output of listing tax templates.
type ListTaxesOutput struct {
	Taxes []*entity.Tax
}

// ListTaxesUseCase lists tax templates.
type ListTaxesUseCase struct {
	taxRepo adapter.TaxRepository
}

// NewListTaxesUseCase creates a new ListTaxesUseCase instance.
func NewListTaxesUseCase(taxRepo adapter.TaxRepository) *ListTaxesUseCase {
	return &ListTaxesUseCase{taxRepo: taxRepo}
}

// Execute lists all tax templates.
func (uc *ListTaxesUseCase) Execute(ctx context.Context) (*ListTaxesOutput, error) {
	taxes, err := uc.taxRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	return &ListTaxesOutput{Taxes: taxes}, nil
}

// UpdateTaxInput represents the input for tax template updates.
// Nil pointer fields are left untouched.
type UpdateTaxInput struct {
	ID                uuid.UUID
	Name              *string
	Description       *string
	Jurisdiction      *entity.Jurisdiction
	Recurrence        *valueobject.RecurrenceRule
	AdvanceNoticeDays *int
	Active            *bool
	Editor            string
}

// UpdateTaxOutput represents the output of a tax template update.
type UpdateTaxOutput struct {
	Tax *entity.Tax
}

// UpdateTaxUseCase handles tax template update logic. The code is immutable
// once assigned; obligations reference templates by code.
type UpdateTaxUseCase struct {
	taxRepo adapter.TaxRepository
}

// NewUpdateTaxUseCase creates a new UpdateTaxUseCase instance.
func NewUpdateTaxUseCase(taxRepo adapter.TaxRepository) *UpdateTaxUseCase {
	return &UpdateTaxUseCase{taxRepo: taxRepo}
}

// Execute performs the tax template update.
func (uc *UpdateTaxUseCase) Execute(ctx context.Context, input UpdateTaxInput) (*UpdateTaxOutput, error) {
	tax, err := uc.taxRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeTaxNotFound,
			"tax not found",
			domainerror.ErrTaxNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewTaxError(
				domainerror.ErrCodeMissingTaxFields,
				"name cannot be empty",
				nil,
			)
		}
		tax.Name = *input.Name
	}
	if input.Description != nil {
		tax.Description = *input.Description
	}
	if input.Jurisdiction != nil {
		if !entity.ValidJurisdiction(*input.Jurisdiction) {
			return nil, domainerror.NewTaxError(
				domainerror.ErrCodeInvalidJurisdiction,
				fmt.Sprintf("unknown jurisdiction %q", *input.Jurisdiction),
				domainerror.ErrInvalidJurisdiction,
			)
		}
		tax.Jurisdiction = *input.Jurisdiction
	}
	if input.Recurrence != nil {
		if err := input.Recurrence.Validate(); err != nil {
			return nil, err
		}
		tax.Recurrence = *input.Recurrence
	}
	if input.AdvanceNoticeDays != nil {
		if *input.AdvanceNoticeDays < 1 || *input.AdvanceNoticeDays > 30 {
			return nil, domainerror.NewTaxError(
				domainerror.ErrCodeInvalidAdvanceNotice,
				fmt.Sprintf("advance notice of %d days is out of range", *input.AdvanceNoticeDays),
				domainerror.ErrInvalidAdvanceNotice,
			)
		}
		tax.AdvanceNoticeDays = *input.AdvanceNoticeDays
	}
	if input.Active != nil {
		tax.Active = *input.Active
	}

	tax.LastEditor = input.Editor
	tax.UpdatedAt = time.Now().UTC()

	if err := uc.taxRepo.Update(ctx, tax); err != nil {
		return nil, fmt.Errorf("failed to update tax: %w", err)
	}

	return &UpdateTaxOutput{Tax: tax}, nil
}

// DeleteTaxInput represents the input for tax template deletion.
type DeleteTaxInput struct {
	ID uuid.UUID
}

// DeleteTaxUseCase handles tax template deletion logic.
type DeleteTaxUseCase struct {
	taxRepo adapter.TaxRepository
}

// NewDeleteTaxUseCase creates a new DeleteTaxUseCase instance.
func NewDeleteTaxUseCase(taxRepo adapter.TaxRepository) *DeleteTaxUseCase {
	return &DeleteTaxUseCase{taxRepo: taxRepo}
}

// Execute performs the tax template deletion.
func (uc *DeleteTaxUseCase) Execute(ctx context.Context, input DeleteTaxInput) error {
	if _, err := uc.taxRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewTaxError(
			domainerror.ErrCodeTaxNotFound,
			"tax not found",
			domainerror.ErrTaxNotFound,
		)
	}

	if err := uc.taxRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete tax: %w", err)
	}
	return nil
}
