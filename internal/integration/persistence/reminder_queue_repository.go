// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/integration/persistence/model"
)

// reminderQueueRepository implements the adapter.ReminderQueueRepository interface.
type reminderQueueRepository struct {
	db *gorm.DB
}

// NewReminderQueueRepository creates a new reminder queue repository instance.
func NewReminderQueueRepository(db *gorm.DB) adapter.ReminderQueueRepository {
	return &reminderQueueRepository{db: db}
}

// Enqueue adds a new reminder job to the queue.
func (r *reminderQueueRepository) Enqueue(ctx context.Context, job *entity.ReminderJob) error {
	jobModel := model.ReminderQueueFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	return result.Error
}

// GetPendingJobs retrieves up to limit pending jobs whose scheduled time has passed.
func (r *reminderQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReminderJob, error) {
	var jobModels []model.ReminderQueueModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", string(entity.ReminderStatusPending), time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.ReminderJob, len(jobModels))
	for i, m := range jobModels {
		jobs[i] = m.ToEntity()
	}
	return jobs, nil
}

// Update updates a reminder job's state.
func (r *reminderQueueRepository) Update(ctx context.Context, job *entity.ReminderJob) error {
	jobModel := model.ReminderQueueFromEntity(job)
	result := r.db.WithContext(ctx).Save(jobModel)
	return result.Error
}

// ExistsForObligation checks whether a reminder of the given template type was
// already queued for the obligation.
func (r *reminderQueueRepository) ExistsForObligation(ctx context.Context, obligationID uuid.UUID, templateType entity.ReminderTemplateType) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReminderQueueModel{}).
		Where("obligation_id = ? AND template_type = ?", obligationID, string(templateType)).
		Count(&count)
	return count > 0, result.Error
}
