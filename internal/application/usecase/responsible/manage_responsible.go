// Package responsible contains responsible registry use cases.
package responsible

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
)

// CreateResponsibleInput represents the input for responsible creation.
type CreateResponsibleInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

// CreateResponsibleOutput represents the output of responsible creation.
type CreateResponsibleOutput struct {
	Responsible *entity.Responsible
}

// CreateResponsibleUseCase handles responsible creation logic.
type CreateResponsibleUseCase struct {
	responsibleRepo adapter.ResponsibleRepository
}

// NewCreateResponsibleUseCase creates a new CreateResponsibleUseCase instance.
func NewCreateResponsibleUseCase(responsibleRepo adapter.ResponsibleRepository) *CreateResponsibleUseCase {
	return &CreateResponsibleUseCase{responsibleRepo: responsibleRepo}
}

// Execute performs the responsible creation.
func (uc *CreateResponsibleUseCase) Execute(ctx context.Context, input CreateResponsibleInput) (*CreateResponsibleOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeMissingRegistryName,
			"responsible name is required",
			domainerror.ErrMissingRegistryName,
		)
	}

	responsible := entity.NewResponsible(input.Name, input.Email, input.Phone, input.Role)
	if err := uc.responsibleRepo.Create(ctx, responsible); err != nil {
		return nil, fmt.Errorf("failed to create responsible: %w", err)
	}
	return &CreateResponsibleOutput{Responsible: responsible}, nil
}

// ListResponsiblesOutput represents the output of listing responsibles.
type ListResponsiblesOutput struct {
	Responsibles []*entity.Responsible
}

// ListResponsiblesUseCase lists the responsible registry.
type ListResponsiblesUseCase struct {
	responsibleRepo adapter.ResponsibleRepository
}

// NewListResponsiblesUseCase creates a new ListResponsiblesUseCase instance.
func NewListResponsiblesUseCase(responsibleRepo adapter.ResponsibleRepository) *ListResponsiblesUseCase {
	return &ListResponsiblesUseCase{responsibleRepo: responsibleRepo}
}

// Execute lists all responsibles.
func (uc *ListResponsiblesUseCase) Execute(ctx context.Context) (*ListResponsiblesOutput, error) {
	responsibles, err := uc.responsibleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list responsibles: %w", err)
	}
	return &ListResponsiblesOutput{Responsibles: responsibles}, nil
}

// UpdateResponsibleInput represents the input for responsible updates.
// Nil pointer fields are left untouched.
type UpdateResponsibleInput struct {
	ID     uuid.UUID
	Name   *string
	Email  *string
	Phone  *string
	Role   *string
	Active *bool
}

// UpdateResponsibleOutput represents the output of a responsible update.
type UpdateResponsibleOutput struct {
	Responsible *entity.Responsible
}

// UpdateResponsibleUseCase handles responsible update logic.
type UpdateResponsibleUseCase struct {
	responsibleRepo adapter.ResponsibleRepository
}

// NewUpdateResponsibleUseCase creates a new UpdateResponsibleUseCase instance.
func NewUpdateResponsibleUseCase(responsibleRepo adapter.ResponsibleRepository) *UpdateResponsibleUseCase {
	return &UpdateResponsibleUseCase{responsibleRepo: responsibleRepo}
}

// Execute performs the responsible update.
func (uc *UpdateResponsibleUseCase) Execute(ctx context.Context, input UpdateResponsibleInput) (*UpdateResponsibleOutput, error) {
	responsible, err := uc.responsibleRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeResponsibleNotFound,
			"responsible not found",
			domainerror.ErrResponsibleNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeMissingRegistryName,
				"responsible name cannot be empty",
				domainerror.ErrMissingRegistryName,
			)
		}
		responsible.Name = *input.Name
	}
	if input.Email != nil {
		responsible.Email = *input.Email
	}
	if input.Phone != nil {
		responsible.Phone = *input.Phone
	}
	if input.Role != nil {
		responsible.Role = *input.Role
	}
	if input.Active != nil {
		responsible.Active = *input.Active
	}
	responsible.UpdatedAt = time.Now().UTC()

	if err := uc.responsibleRepo.Update(ctx, responsible); err != nil {
		return nil, fmt.Errorf("failed to update responsible: %w", err)
	}
	return &UpdateResponsibleOutput{Responsible: responsible}, nil
}

// DeleteResponsibleInput represents the input for responsible deletion.
type DeleteResponsibleInput struct {
	ID uuid.UUID
}

// DeleteResponsibleUseCase handles responsible deletion logic. A responsible
// that obligations still reference cannot be removed.
type DeleteResponsibleUseCase struct {
	responsibleRepo adapter.ResponsibleRepository
	obligationRepo  adapter.ObligationRepository
}

// NewDeleteResponsibleUseCase creates a new DeleteResponsibleUseCase instance.
func NewDeleteResponsibleUseCase(
	responsibleRepo adapter.ResponsibleRepository,
	obligationRepo adapter.ObligationRepository,
) *DeleteResponsibleUseCase {
	return &DeleteResponsibleUseCase{responsibleRepo: responsibleRepo, obligationRepo: obligationRepo}
}

// Execute performs the responsible deletion.
func (uc *DeleteResponsibleUseCase) Execute(ctx context.Context, input DeleteResponsibleInput) error {
	if _, err := uc.responsibleRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeResponsibleNotFound,
			"responsible not found",
			domainerror.ErrResponsibleNotFound,
		)
	}

	count, err := uc.obligationRepo.CountByResponsible(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count responsible obligations: %w", err)
	}
	if count > 0 {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeResponsibleStillReferenced,
			fmt.Sprintf("%d obligations still reference this responsible", count),
			domainerror.ErrResponsibleStillReferenced,
		)
	}

	if err := uc.responsibleRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete responsible: %w", err)
	}
	return nil
}
