// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Responsible represents a back-office person accountable for obligations.
type Responsible struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Role      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewResponsible creates a new Responsible entity.
func NewResponsible(name, email, phone, role string) *Responsible {
	now := time.Now().UTC()

	return &Responsible{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Ref returns a weak reference to the responsible for embedding in obligations.
func (r *Responsible) Ref() *EntityRef {
	return &EntityRef{ID: r.ID, Name: r.Name}
}
