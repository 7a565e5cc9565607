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

// obligationRepository implements the adapter.ObligationRepository interface.
type obligationRepository struct {
	db *gorm.DB
}

// NewObligationRepository creates a new obligation repository instance.
func NewObligationRepository(db *gorm.DB) adapter.ObligationRepository {
	return &obligationRepository{db: db}
}

// Create creates a new obligation in the database.
func (r *obligationRepository) Create(ctx context.Context, obligation *entity.Obligation) error {
	obligationModel := model.ObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Create(obligationModel)
	return result.Error
}

// FindByID retrieves an obligation by its ID.
func (r *obligationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error) {
	var obligationModel model.ObligationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&obligationModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return obligationModel.ToEntity(), nil
}

// FindAll retrieves all obligations ordered by due date.
func (r *obligationRepository) FindAll(ctx context.Context) ([]*entity.Obligation, error) {
	var obligationModels []model.ObligationModel
	result := r.db.WithContext(ctx).Order("due_date ASC, name ASC").Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.Obligation, len(obligationModels))
	for i, m := range obligationModels {
		obligations[i] = m.ToEntity()
	}
	return obligations, nil
}

// FindDueForGeneration retrieves recurring obligations whose generation date
// has arrived.
func (r *obligationRepository) FindDueForGeneration(ctx context.Context, date time.Time) ([]*entity.Obligation, error) {
	var obligationModels []model.ObligationModel
	result := r.db.WithContext(ctx).
		Where("next_generation_at IS NOT NULL AND next_generation_at <= ? AND completed = ? AND active = ?", date, false, true).
		Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.Obligation, len(obligationModels))
	for i, m := range obligationModels {
		obligations[i] = m.ToEntity()
	}
	return obligations, nil
}

// FindOpenDueWithin retrieves open obligations due inside the window, bounds inclusive.
func (r *obligationRepository) FindOpenDueWithin(ctx context.Context, from, to time.Time) ([]*entity.Obligation, error) {
	var obligationModels []model.ObligationModel
	result := r.db.WithContext(ctx).
		Where("completed = ? AND due_date >= ? AND due_date <= ?", false, from, to).
		Order("due_date ASC").
		Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.Obligation, len(obligationModels))
	for i, m := range obligationModels {
		obligations[i] = m.ToEntity()
	}
	return obligations, nil
}

// Update updates an existing obligation in the database.
func (r *obligationRepository) Update(ctx context.Context, obligation *entity.Obligation) error {
	obligationModel := model.ObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Save(obligationModel)
	return result.Error
}

// Delete removes an obligation from the database (soft delete).
func (r *obligationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ObligationModel{}, "id = ?", id)
	return result.Error
}

// CountByClient counts obligations referencing the client.
func (r *obligationRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ObligationModel{}).
		Where("client_id = ?", clientID).
		Count(&count)
	return count, result.Error
}

// CountByResponsible counts obligations referencing the responsible.
func (r *obligationRepository) CountByResponsible(ctx context.Context, responsibleID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ObligationModel{}).
		Where("responsible_id = ?", responsibleID).
		Count(&count)
	return count, result.Error
}
