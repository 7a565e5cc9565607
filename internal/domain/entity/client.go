// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a client company or person the back-office tracks
// obligations for.
type Client struct {
	ID        uuid.UUID
	Name      string
	TaxID     string // CNPJ or CPF
	Email     string
	Phone     string
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewClient creates a new Client entity.
func NewClient(name, taxID, email, phone, notes string) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:        uuid.New(),
		Name:      name,
		TaxID:     taxID,
		Email:     email,
		Phone:     phone,
		Notes:     notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Ref returns a weak reference to the client for embedding in obligations.
func (c *Client) Ref() *EntityRef {
	return &EntityRef{ID: c.ID, Name: c.Name}
}
