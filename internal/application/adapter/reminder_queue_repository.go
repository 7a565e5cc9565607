// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// ReminderQueueRepository defines the interface for the reminder queue.
type ReminderQueueRepository interface {
	// Enqueue adds a new reminder job to the queue.
	Enqueue(ctx context.Context, job *entity.ReminderJob) error

	// GetPendingJobs retrieves up to limit pending jobs whose scheduled time has passed.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReminderJob, error)

	// Update updates a reminder job's state.
	Update(ctx context.Context, job *entity.ReminderJob) error

	// ExistsForObligation checks whether a reminder of the given template type
	// was already queued for the obligation, to keep the window scan idempotent.
	ExistsForObligation(ctx context.Context, obligationID uuid.UUID, templateType entity.ReminderTemplateType) (bool, error)
}
