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

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{db: db}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Create(clientModel)
	return result.Error
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindAll retrieves all clients ordered by name.
func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []model.ClientModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i, m := range clientModels {
		clients[i] = m.ToEntity()
	}
	return clients, nil
}

// Update updates an existing client in the database.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Save(clientModel)
	return result.Error
}

// Delete removes a client from the database (soft delete).
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id)
	return result.Error
}

// responsibleRepository implements the adapter.ResponsibleRepository interface.
type responsibleRepository struct {
	db *gorm.DB
}

// NewResponsibleRepository creates a new responsible repository instance.
func NewResponsibleRepository(db *gorm.DB) adapter.ResponsibleRepository {
	return &responsibleRepository{db: db}
}

// Create creates a new responsible in the database.
func (r *responsibleRepository) Create(ctx context.Context, responsible *entity.Responsible) error {
	responsibleModel := model.ResponsibleFromEntity(responsible)
	result := r.db.WithContext(ctx).Create(responsibleModel)
	return result.Error
}

// FindByID retrieves a responsible by its ID.
func (r *responsibleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Responsible, error) {
	var responsibleModel model.ResponsibleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&responsibleModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return responsibleModel.ToEntity(), nil
}

// FindAll retrieves all responsibles ordered by name.
func (r *responsibleRepository) FindAll(ctx context.Context) ([]*entity.Responsible, error) {
	var responsibleModels []model.ResponsibleModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&responsibleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	responsibles := make([]*entity.Responsible, len(responsibleModels))
	for i, m := range responsibleModels {
		responsibles[i] = m.ToEntity()
	}
	return responsibles, nil
}

// Update updates an existing responsible in the database.
func (r *responsibleRepository) Update(ctx context.Context, responsible *entity.Responsible) error {
	responsibleModel := model.ResponsibleFromEntity(responsible)
	result := r.db.WithContext(ctx).Save(responsibleModel)
	return result.Error
}

// Delete removes a responsible from the database (soft delete).
func (r *responsibleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ResponsibleModel{}, "id = ?", id)
	return result.Error
}
