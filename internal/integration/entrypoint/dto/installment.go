// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// CreatePlanRequest represents the request body for installment plan creation.
// Amounts travel as strings to avoid float rounding on the wire.
type CreatePlanRequest struct {
	Name             string                `json:"name" binding:"required,min=1,max=200"`
	Description      string                `json:"description,omitempty" binding:"omitempty,max=1000"`
	ClientID         *string               `json:"client_id,omitempty" binding:"omitempty,uuid"`
	ResponsibleID    *string               `json:"responsible_id,omitempty" binding:"omitempty,uuid"`
	TotalAmount      string                `json:"total_amount" binding:"required"`
	InstallmentCount int                   `json:"installment_count" binding:"required,min=1,max=60"`
	StartDate        string                `json:"start_date" binding:"required"`
	Recurrence       RecurrenceRuleRequest `json:"recurrence" binding:"required"`
	Notes            string                `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ChangePlanStatusRequest represents the request body for a plan status change.
type ChangePlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paused completed cancelled"`
}

// PlanResponse represents an installment plan in API responses.
type PlanResponse struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description,omitempty"`
	Client             *EntityRefResponse     `json:"client,omitempty"`
	Responsible        *EntityRefResponse     `json:"responsible,omitempty"`
	TotalAmount        string                 `json:"total_amount"`
	InstallmentAmount  string                 `json:"installment_amount"`
	RemainingAmount    string                 `json:"remaining_amount"`
	InstallmentCount   int                    `json:"installment_count"`
	CurrentInstallment int                    `json:"current_installment"`
	Status             string                 `json:"status"`
	StartDate          string                 `json:"start_date"`
	EndDate            *string                `json:"end_date,omitempty"`
	NextDueDate        *string                `json:"next_due_date,omitempty"`
	Recurrence         RecurrenceRuleResponse `json:"recurrence"`
	Notes              string                 `json:"notes,omitempty"`
	LastEditor         string                 `json:"last_editor,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// PlanListResponse represents the response for listing installment plans.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Total int            `json:"total"`
}

// ToPlanResponse converts a domain InstallmentPlan entity to its response DTO.
func ToPlanResponse(plan *entity.InstallmentPlan) PlanResponse {
	response := PlanResponse{
		ID:                 plan.ID.String(),
		Name:               plan.Name,
		Description:        plan.Description,
		TotalAmount:        plan.TotalAmount.StringFixed(2),
		InstallmentAmount:  plan.InstallmentAmount().StringFixed(2),
		RemainingAmount:    plan.RemainingAmount().StringFixed(2),
		InstallmentCount:   plan.InstallmentCount,
		CurrentInstallment: plan.CurrentInstallment,
		Status:             string(plan.Status),
		StartDate:          plan.StartDate.Format("2006-01-02"),
		Recurrence:         *ToRecurrenceRuleResponse(&plan.Recurrence),
		Notes:              plan.Notes,
		LastEditor:         plan.LastEditor,
		CreatedAt:          plan.CreatedAt,
		UpdatedAt:          plan.UpdatedAt,
	}

	if plan.ClientRef != nil {
		response.Client = &EntityRefResponse{ID: plan.ClientRef.ID.String(), Name: plan.ClientRef.Name}
	}
	if plan.ResponsibleRef != nil {
		response.Responsible = &EntityRefResponse{ID: plan.ResponsibleRef.ID.String(), Name: plan.ResponsibleRef.Name}
	}
	if plan.EndDate != nil {
		endDate := plan.EndDate.Format("2006-01-02")
		response.EndDate = &endDate
	}
	if plan.NextDueDate != nil {
		nextDue := plan.NextDueDate.Format("2006-01-02")
		response.NextDueDate = &nextDue
	}

	return response
}

// ToPlanListResponse converts a list of installment plans to the list response.
func ToPlanListResponse(plans []*entity.InstallmentPlan) PlanListResponse {
	items := make([]PlanResponse, len(plans))
	for i, plan := range plans {
		items[i] = ToPlanResponse(plan)
	}
	return PlanListResponse{Plans: items, Total: len(items)}
}
