// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create creates a new client in the database.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindAll retrieves all clients ordered by name.
	FindAll(ctx context.Context) ([]*entity.Client, error)

	// Update updates an existing client in the database.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResponsibleRepository defines the interface for responsible persistence operations.
type ResponsibleRepository interface {
	// Create creates a new responsible in the database.
	Create(ctx context.Context, responsible *entity.Responsible) error

	// FindByID retrieves a responsible by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Responsible, error)

	// FindAll retrieves all responsibles ordered by name.
	FindAll(ctx context.Context) ([]*entity.Responsible, error)

	// Update updates an existing responsible in the database.
	Update(ctx context.Context, responsible *entity.Responsible) error

	// Delete removes a responsible from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
