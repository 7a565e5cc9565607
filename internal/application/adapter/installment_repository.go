// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// InstallmentRepository defines the interface for installment plan persistence operations.
type InstallmentRepository interface {
	// Create creates a new installment plan in the database.
	Create(ctx context.Context, plan *entity.InstallmentPlan) error

	// FindByID retrieves an installment plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InstallmentPlan, error)

	// FindAll retrieves all installment plans ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.InstallmentPlan, error)

	// FindByStatus retrieves installment plans with the given status.
	FindByStatus(ctx context.Context, status entity.PlanStatus) ([]*entity.InstallmentPlan, error)

	// Update updates an existing installment plan in the database.
	Update(ctx context.Context, plan *entity.InstallmentPlan) error

	// Delete removes an installment plan from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
