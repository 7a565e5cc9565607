// Package tax contains tax template-related use cases.
package tax

import (
	"context"
	"fmt"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// CreateTaxInput represents the input for tax template creation.
type CreateTaxInput struct {
	Name              string
	Code              string
	Description       string
	Jurisdiction      entity.Jurisdiction
	Recurrence        valueobject.RecurrenceRule
	AdvanceNoticeDays int
	Editor            string
}

// CreateTaxOutput represents the output of tax template creation.
type CreateTaxOutput struct {
	Tax *entity.Tax
}

// CreateTaxUseCase handles tax template creation logic.
type CreateTaxUseCase struct {
	taxRepo adapter.TaxRepository
}

// NewCreateTaxUseCase creates a new CreateTaxUseCase instance.
func NewCreateTaxUseCase(taxRepo adapter.TaxRepository) *CreateTaxUseCase {
	return &CreateTaxUseCase{taxRepo: taxRepo}
}

// Execute performs the tax template creation.
func (uc *CreateTaxUseCase) Execute(ctx context.Context, input CreateTaxInput) (*CreateTaxOutput, error) {
	if input.Name == "" || input.Code == "" {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeMissingTaxFields,
			"name and code are required",
			nil,
		)
	}
	if !entity.ValidJurisdiction(input.Jurisdiction) {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeInvalidJurisdiction,
			fmt.Sprintf("unknown jurisdiction %q", input.Jurisdiction),
			domainerror.ErrInvalidJurisdiction,
		)
	}
	if input.AdvanceNoticeDays < 1 || input.AdvanceNoticeDays > 30 {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeInvalidAdvanceNotice,
			fmt.Sprintf("advance notice of %d days is out of range", input.AdvanceNoticeDays),
			domainerror.ErrInvalidAdvanceNotice,
		)
	}
	if err := input.Recurrence.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.taxRepo.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check tax code: %w", err)
	}
	if exists {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeTaxCodeAlreadyExists,
			fmt.Sprintf("a tax with code %q already exists", input.Code),
			domainerror.ErrTaxCodeAlreadyExists,
		)
	}

	tax := entity.NewTax(
		input.Name,
		input.Code,
		input.Description,
		input.Jurisdiction,
		input.Recurrence,
		input.AdvanceNoticeDays,
		input.Editor,
	)

	if err := uc.taxRepo.Create(ctx, tax); err != nil {
		return nil, fmt.Errorf("failed to create tax: %w", err)
	}

	return &CreateTaxOutput{Tax: tax}, nil
}
