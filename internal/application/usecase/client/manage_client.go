// Package client contains client registry use cases.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name  string
	TaxID string
	Email string
	Phone string
	Notes string
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{clientRepo: clientRepo}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeMissingRegistryName,
			"client name is required",
			domainerror.ErrMissingRegistryName,
		)
	}

	client := entity.NewClient(input.Name, input.TaxID, input.Email, input.Phone, input.Notes)
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &CreateClientOutput{Client: client}, nil
}

// ListClientsOutput represents the output of listing clients.
type ListClientsOutput struct {
	Clients []*entity.Client
}

// ListClientsUseCase lists the client registry.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo}
}

// Execute lists all clients.
func (uc *ListClientsUseCase) Execute(ctx context.Context) (*ListClientsOutput, error) {
	clients, err := uc.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return &ListClientsOutput{Clients: clients}, nil
}

// UpdateClientInput represents the input for client updates.
// Nil pointer fields are left untouched.
type UpdateClientInput struct {
	ID     uuid.UUID
	Name   *string
	TaxID  *string
	Email  *string
	Phone  *string
	Notes  *string
	Active *bool
}

// UpdateClientOutput represents the output of a client update.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{clientRepo: clientRepo}
}

// Execute performs the client update.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewRegistryError(
				domainerror.ErrCodeMissingRegistryName,
				"client name cannot be empty",
				domainerror.ErrMissingRegistryName,
			)
		}
		client.Name = *input.Name
	}
	if input.TaxID != nil {
		client.TaxID = *input.TaxID
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.Active != nil {
		client.Active = *input.Active
	}
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return &UpdateClientOutput{Client: client}, nil
}

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ID uuid.UUID
}

// DeleteClientUseCase handles client deletion logic. A client that
// obligations still reference cannot be removed.
type DeleteClientUseCase struct {
	clientRepo     adapter.ClientRepository
	obligationRepo adapter.ObligationRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(
	clientRepo adapter.ClientRepository,
	obligationRepo adapter.ObligationRepository,
) *DeleteClientUseCase {
	return &DeleteClientUseCase{clientRepo: clientRepo, obligationRepo: obligationRepo}
}

// Execute performs the client deletion.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) error {
	if _, err := uc.clientRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	count, err := uc.obligationRepo.CountByClient(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count client obligations: %w", err)
	}
	if count > 0 {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeClientStillReferenced,
			fmt.Sprintf("%d obligations still reference this client", count),
			domainerror.ErrClientStillReferenced,
		)
	}

	if err := uc.clientRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
