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

// taxRepository implements the adapter.TaxRepository interface.
type taxRepository struct {
	db *gorm.DB
}

// NewTaxRepository creates a new tax repository instance.
func NewTaxRepository(db *gorm.DB) adapter.TaxRepository {
	return &taxRepository{db: db}
}

// Create creates a new tax template in the database.
func (r *taxRepository) Create(ctx context.Context, tax *entity.Tax) error {
	taxModel := model.TaxFromEntity(tax)
	result := r.db.WithContext(ctx).Create(taxModel)
	return result.Error
}

// FindByID retrieves a tax template by its ID.
func (r *taxRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tax, error) {
	var taxModel model.TaxModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&taxModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return taxModel.ToEntity(), nil
}

// FindAll retrieves all tax templates ordered by name.
func (r *taxRepository) FindAll(ctx context.Context) ([]*entity.Tax, error) {
	var taxModels []model.TaxModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&taxModels)
	if result.Error != nil {
		return nil, result.Error
	}

	taxes := make([]*entity.Tax, len(taxModels))
	for i, m := range taxModels {
		taxes[i] = m.ToEntity()
	}
	return taxes, nil
}

// FindActive retrieves all active tax templates.
func (r *taxRepository) FindActive(ctx context.Context) ([]*entity.Tax, error) {
	var taxModels []model.TaxModel
	result := r.db.WithContext(ctx).Where("active = ?", true).Order("name ASC").Find(&taxModels)
	if result.Error != nil {
		return nil, result.Error
	}

	taxes := make([]*entity.Tax, len(taxModels))
	for i, m := range taxModels {
		taxes[i] = m.ToEntity()
	}
	return taxes, nil
}

// ExistsByCode checks whether a tax with the given code already exists.
func (r *taxRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TaxModel{}).
		Where("code = ?", code).
		Count(&count)
	return count > 0, result.Error
}

// Update updates an existing tax template in the database.
func (r *taxRepository) Update(ctx context.Context, tax *entity.Tax) error {
	taxModel := model.TaxFromEntity(tax)
	result := r.db.WithContext(ctx).Save(taxModel)
	return result.Error
}

// Delete removes a tax template from the database (soft delete).
func (r *taxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TaxModel{}, "id = ?", id)
	return result.Error
}
