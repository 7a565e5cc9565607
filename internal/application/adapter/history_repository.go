// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// HistoryRepository defines the interface for change record persistence operations.
// Change records are append-only.
type HistoryRepository interface {
	// Create appends a change record.
	Create(ctx context.Context, record *entity.ChangeRecord) error

	// CreateBatch appends several change records in one operation.
	CreateBatch(ctx context.Context, records []*entity.ChangeRecord) error

	// FindByObligation retrieves all change records for an obligation,
	// newest first.
	FindByObligation(ctx context.Context, obligationID uuid.UUID) ([]*entity.ChangeRecord, error)

	// FindRecent retrieves the most recent change records across all obligations.
	FindRecent(ctx context.Context, limit int) ([]*entity.ChangeRecord, error)
}
