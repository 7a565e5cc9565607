// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// ObligationRepository defines the interface for obligation persistence operations.
type ObligationRepository interface {
	// Create creates a new obligation in the database.
	Create(ctx context.Context, obligation *entity.Obligation) error

	// FindByID retrieves an obligation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error)

	// FindAll retrieves all active obligations ordered by due date.
	FindAll(ctx context.Context) ([]*entity.Obligation, error)

	// FindDueForGeneration retrieves recurring obligations whose next
	// generation date is on or before the given date.
	FindDueForGeneration(ctx context.Context, date time.Time) ([]*entity.Obligation, error)

	// FindOpenDueWithin retrieves open obligations with a due date inside the
	// inclusive range, for the reminder window scan.
	FindOpenDueWithin(ctx context.Context, from, to time.Time) ([]*entity.Obligation, error)

	// Update updates an existing obligation in the database.
	Update(ctx context.Context, obligation *entity.Obligation) error

	// Delete removes an obligation from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByClient counts obligations referencing the given client.
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)

	// CountByResponsible counts obligations referencing the given responsible.
	CountByResponsible(ctx context.Context, responsibleID uuid.UUID) (int64, error)
}
