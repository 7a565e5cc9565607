// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fiscal-tracker/backend/internal/application/usecase/obligation"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// CreateObligationRequest represents the request body for obligation creation.
type CreateObligationRequest struct {
	Name          string                 `json:"name" binding:"required,min=1,max=200"`
	Description   string                 `json:"description,omitempty" binding:"omitempty,max=1000"`
	Kind          string                 `json:"kind" binding:"required,oneof=tax installment declaration document other"`
	DueDate       string                 `json:"due_date" binding:"required"`
	ClientID      *string                `json:"client_id,omitempty" binding:"omitempty,uuid"`
	ResponsibleID *string                `json:"responsible_id,omitempty" binding:"omitempty,uuid"`
	Recurrence    *RecurrenceRuleRequest `json:"recurrence,omitempty"`
}

// UpdateObligationRequest represents the request body for obligation updates.
type UpdateObligationRequest struct {
	Name          *string                `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Description   *string                `json:"description,omitempty" binding:"omitempty,max=1000"`
	Kind          *string                `json:"kind,omitempty" binding:"omitempty,oneof=tax installment declaration document other"`
	DueDate       *string                `json:"due_date,omitempty"`
	ClientID      *string                `json:"client_id,omitempty" binding:"omitempty,uuid"`
	ResponsibleID *string                `json:"responsible_id,omitempty" binding:"omitempty,uuid"`
	Recurrence    *RecurrenceRuleRequest `json:"recurrence,omitempty"`
}

// EntityRefResponse represents a registry reference in API responses.
type EntityRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ObligationResponse represents a single obligation in API responses.
type ObligationResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description,omitempty"`
	Kind         string                  `json:"kind"`
	DueDate      string                  `json:"due_date"`
	Completed    bool                    `json:"completed"`
	CompletedAt  *time.Time              `json:"completed_at,omitempty"`
	Client       *EntityRefResponse      `json:"client,omitempty"`
	Responsible  *EntityRefResponse      `json:"responsible,omitempty"`
	Recurrence   *RecurrenceRuleResponse `json:"recurrence,omitempty"`
	DaysUntilDue *int                    `json:"days_until_due,omitempty"`
	Urgency      string                  `json:"urgency,omitempty"`
	LastEditor   string                  `json:"last_editor,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// ObligationListResponse represents the response for listing obligations.
type ObligationListResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
	Total       int                  `json:"total"`
}

// CompleteObligationResponse represents the response for completing an obligation.
type CompleteObligationResponse struct {
	Obligation     ObligationResponse  `json:"obligation"`
	NextOccurrence *ObligationResponse `json:"next_occurrence,omitempty"`
}

// ToObligationResponse converts a domain Obligation entity to its response DTO.
func ToObligationResponse(o *entity.Obligation) ObligationResponse {
	response := ObligationResponse{
		ID:          o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
		Kind:        string(o.Kind),
		DueDate:     o.DueDate.Format("2006-01-02"),
		Completed:   o.Completed,
		CompletedAt: o.CompletedAt,
		Recurrence:  ToRecurrenceRuleResponse(o.Recurrence),
		LastEditor:  o.LastEditor,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if o.ClientRef != nil {
		response.Client = &EntityRefResponse{ID: o.ClientRef.ID.String(), Name: o.ClientRef.Name}
	}
	if o.ResponsibleRef != nil {
		response.Responsible = &EntityRefResponse{ID: o.ResponsibleRef.ID.String(), Name: o.ResponsibleRef.Name}
	}

	return response
}

// ToObligationWithStatusResponse converts an obligation paired with its
// urgency classification to a response DTO.
func ToObligationWithStatusResponse(ows *obligation.ObligationWithStatus) ObligationResponse {
	response := ToObligationResponse(ows.Obligation)
	days := ows.Classification.DaysUntilDue
	response.DaysUntilDue = &days
	response.Urgency = string(ows.Classification.Tier)
	return response
}

// ToObligationListResponse converts a list of classified obligations to the list response.
func ToObligationListResponse(items []*obligation.ObligationWithStatus) ObligationListResponse {
	obligations := make([]ObligationResponse, len(items))
	for i, item := range items {
		obligations[i] = ToObligationWithStatusResponse(item)
	}
	return ObligationListResponse{
		Obligations: obligations,
		Total:       len(obligations),
	}
}
