// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// CreateTaxRequest represents the request body for tax template creation.
type CreateTaxRequest struct {
	Name              string                `json:"name" binding:"required,min=1,max=200"`
	Code              string                `json:"code" binding:"required,min=1,max=50"`
	Description       string                `json:"description,omitempty" binding:"omitempty,max=1000"`
	Jurisdiction      string                `json:"jurisdiction" binding:"required,oneof=federal state municipal"`
	Recurrence        RecurrenceRuleRequest `json:"recurrence" binding:"required"`
	AdvanceNoticeDays int                   `json:"advance_notice_days" binding:"required,min=1,max=30"`
}

// UpdateTaxRequest represents the request body for tax template updates.
// The code is immutable and cannot be changed after creation.
type UpdateTaxRequest struct {
	Name              *string                `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Description       *string                `json:"description,omitempty" binding:"omitempty,max=1000"`
	Jurisdiction      *string                `json:"jurisdiction,omitempty" binding:"omitempty,oneof=federal state municipal"`
	Recurrence        *RecurrenceRuleRequest `json:"recurrence,omitempty"`
	AdvanceNoticeDays *int                   `json:"advance_notice_days,omitempty" binding:"omitempty,min=1,max=30"`
	Active            *bool                  `json:"active,omitempty"`
}

// TaxResponse represents a tax template in API responses.
type TaxResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Code              string                 `json:"code"`
	Description       string                 `json:"description,omitempty"`
	Jurisdiction      string                 `json:"jurisdiction"`
	Recurrence        RecurrenceRuleResponse `json:"recurrence"`
	AdvanceNoticeDays int                    `json:"advance_notice_days"`
	Active            bool                   `json:"active"`
	LastEditor        string                 `json:"last_editor,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// TaxListResponse represents the response for listing tax templates.
type TaxListResponse struct {
	Taxes []TaxResponse `json:"taxes"`
	Total int           `json:"total"`
}

// GenerateObligationsResponse represents the response for template-driven generation.
type GenerateObligationsResponse struct {
	Generated []ObligationResponse `json:"generated"`
	Skipped   int                  `json:"skipped"`
}

// ToTaxResponse converts a domain Tax entity to its response DTO.
func ToTaxResponse(tax *entity.Tax) TaxResponse {
	return TaxResponse{
		ID:                tax.ID.String(),
		Name:              tax.Name,
		Code:              tax.Code,
		Description:       tax.Description,
		Jurisdiction:      string(tax.Jurisdiction),
		Recurrence:        *ToRecurrenceRuleResponse(&tax.Recurrence),
		AdvanceNoticeDays: tax.AdvanceNoticeDays,
		Active:            tax.Active,
		LastEditor:        tax.LastEditor,
		CreatedAt:         tax.CreatedAt,
		UpdatedAt:         tax.UpdatedAt,
	}
}

// ToTaxListResponse converts a list of tax templates to the list response.
func ToTaxListResponse(taxes []*entity.Tax) TaxListResponse {
	items := make([]TaxResponse, len(taxes))
	for i, tax := range taxes {
		items[i] = ToTaxResponse(tax)
	}
	return TaxListResponse{Taxes: items, Total: len(items)}
}

// ToGenerateObligationsResponse converts generation results to the response DTO.
func ToGenerateObligationsResponse(generated []*entity.Obligation, skipped int) GenerateObligationsResponse {
	items := make([]ObligationResponse, len(generated))
	for i, o := range generated {
		items[i] = ToObligationResponse(o)
	}
	return GenerateObligationsResponse{Generated: items, Skipped: skipped}
}
