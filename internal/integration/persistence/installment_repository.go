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

// installmentRepository implements the adapter.InstallmentRepository interface.
type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository instance.
func NewInstallmentRepository(db *gorm.DB) adapter.InstallmentRepository {
	return &installmentRepository{db: db}
}

// Create creates a new installment plan in the database.
func (r *installmentRepository) Create(ctx context.Context, plan *entity.InstallmentPlan) error {
	planModel := model.InstallmentPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	return result.Error
}

// FindByID retrieves an installment plan by its ID.
func (r *installmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InstallmentPlan, error) {
	var planModel model.InstallmentPlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindAll retrieves all installment plans ordered by creation time.
func (r *installmentRepository) FindAll(ctx context.Context) ([]*entity.InstallmentPlan, error) {
	var planModels []model.InstallmentPlanModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.InstallmentPlan, len(planModels))
	for i, m := range planModels {
		plans[i] = m.ToEntity()
	}
	return plans, nil
}

// FindByStatus retrieves installment plans with the given status.
func (r *installmentRepository) FindByStatus(ctx context.Context, status entity.PlanStatus) ([]*entity.InstallmentPlan, error) {
	var planModels []model.InstallmentPlanModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.InstallmentPlan, len(planModels))
	for i, m := range planModels {
		plans[i] = m.ToEntity()
	}
	return plans, nil
}

// Update updates an existing installment plan in the database.
func (r *installmentRepository) Update(ctx context.Context, plan *entity.InstallmentPlan) error {
	planModel := model.InstallmentPlanFromEntity(plan)
	result := r.db.WithContext(ctx).Save(planModel)
	return result.Error
}

// Delete removes an installment plan from the database (soft delete).
func (r *installmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InstallmentPlanModel{}, "id = ?", id)
	return result.Error
}
