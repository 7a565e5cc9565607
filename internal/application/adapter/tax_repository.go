// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// TaxRepository defines the interface for tax template persistence operations.
type TaxRepository interface {
	// Create creates a new tax template in the database.
	Create(ctx context.Context, tax *entity.Tax) error

	// FindByID retrieves a tax template by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tax, error)

	// FindAll retrieves all tax templates ordered by name.
	FindAll(ctx context.Context) ([]*entity.Tax, error)

	// FindActive retrieves all active tax templates.
	FindActive(ctx context.Context) ([]*entity.Tax, error)

	// ExistsByCode checks whether a tax with the given code already exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Update updates an existing tax template in the database.
	Update(ctx context.Context, tax *entity.Tax) error

	// Delete removes a tax template from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
