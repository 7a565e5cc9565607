// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	TaxID string `json:"tax_id,omitempty" binding:"omitempty,max=20"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Notes string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateClientRequest represents the request body for client updates.
type UpdateClientRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	TaxID  *string `json:"tax_id,omitempty" binding:"omitempty,max=20"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone  *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Notes  *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Active *bool   `json:"active,omitempty"`
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// CreateResponsibleRequest represents the request body for responsible creation.
type CreateResponsibleRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Role  string `json:"role,omitempty" binding:"omitempty,max=100"`
}

// UpdateResponsibleRequest represents the request body for responsible updates.
type UpdateResponsibleRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone  *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Role   *string `json:"role,omitempty" binding:"omitempty,max=100"`
	Active *bool   `json:"active,omitempty"`
}

// ResponsibleResponse represents a responsible in API responses.
type ResponsibleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResponsibleListResponse represents the response for listing responsibles.
type ResponsibleListResponse struct {
	Responsibles []ResponsibleResponse `json:"responsibles"`
	Total        int                   `json:"total"`
}

// ToClientResponse converts a domain Client entity to its response DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID.String(),
		Name:      client.Name,
		TaxID:     client.TaxID,
		Email:     client.Email,
		Phone:     client.Phone,
		Notes:     client.Notes,
		Active:    client.Active,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// ToClientListResponse converts a list of clients to the list response.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	items := make([]ClientResponse, len(clients))
	for i, client := range clients {
		items[i] = ToClientResponse(client)
	}
	return ClientListResponse{Clients: items, Total: len(items)}
}

// ToResponsibleResponse converts a domain Responsible entity to its response DTO.
func ToResponsibleResponse(responsible *entity.Responsible) ResponsibleResponse {
	return ResponsibleResponse{
		ID:        responsible.ID.String(),
		Name:      responsible.Name,
		Email:     responsible.Email,
		Phone:     responsible.Phone,
		Role:      responsible.Role,
		Active:    responsible.Active,
		CreatedAt: responsible.CreatedAt,
		UpdatedAt: responsible.UpdatedAt,
	}
}

// ToResponsibleListResponse converts a list of responsibles to the list response.
func ToResponsibleListResponse(responsibles []*entity.Responsible) ResponsibleListResponse {
	items := make([]ResponsibleResponse, len(responsibles))
	for i, responsible := range responsibles {
		items[i] = ToResponsibleResponse(responsible)
	}
	return ResponsibleListResponse{Responsibles: items, Total: len(items)}
}
