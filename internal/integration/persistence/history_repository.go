// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/integration/persistence/model"
)

// historyRepository implements the adapter.HistoryRepository interface.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository instance.
func NewHistoryRepository(db *gorm.DB) adapter.HistoryRepository {
	return &historyRepository{db: db}
}

// Create appends a change record.
func (r *historyRepository) Create(ctx context.Context, record *entity.ChangeRecord) error {
	recordModel := model.ChangeRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	return result.Error
}

// CreateBatch appends several change records in one operation.
func (r *historyRepository) CreateBatch(ctx context.Context, records []*entity.ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}
	recordModels := make([]*model.ChangeRecordModel, len(records))
	for i, record := range records {
		recordModels[i] = model.ChangeRecordFromEntity(record)
	}
	result := r.db.WithContext(ctx).Create(recordModels)
	return result.Error
}

// FindByObligation retrieves all change records for an obligation, newest first.
func (r *historyRepository) FindByObligation(ctx context.Context, obligationID uuid.UUID) ([]*entity.ChangeRecord, error) {
	var recordModels []model.ChangeRecordModel
	result := r.db.WithContext(ctx).
		Where("obligation_id = ?", obligationID).
		Order("recorded_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ChangeRecord, len(recordModels))
	for i, m := range recordModels {
		records[i] = m.ToEntity()
	}
	return records, nil
}

// FindRecent retrieves the most recent change records across all obligations.
func (r *historyRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ChangeRecord, error) {
	var recordModels []model.ChangeRecordModel
	result := r.db.WithContext(ctx).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ChangeRecord, len(recordModels))
	for i, m := range recordModels {
		records[i] = m.ToEntity()
	}
	return records, nil
}
