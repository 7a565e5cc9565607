// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// PlanStatus represents the lifecycle status of an installment plan.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusSuspended PlanStatus = "suspended"
	PlanStatusCancelled PlanStatus = "cancelled"
)

// ValidPlanStatus reports whether the status is one of the known values.
func ValidPlanStatus(s PlanStatus) bool {
	switch s {
	case PlanStatusActive, PlanStatusCompleted, PlanStatusSuspended, PlanStatusCancelled:
		return true
	default:
		return false
	}
}

// InstallmentPlan represents a debt split into scheduled periodic payments.
type InstallmentPlan struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	ClientRef          *EntityRef
	ResponsibleRef     *EntityRef
	TotalAmount        decimal.Decimal
	InstallmentCount   int // 1-60
	CurrentInstallment int // 1..InstallmentCount
	Status             PlanStatus
	StartDate          time.Time
	EndDate            *time.Time
	Recurrence         valueobject.RecurrenceRule
	NextDueDate        *time.Time
	Notes              string
	Active             bool
	LastEditor         string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewInstallmentPlan creates a new InstallmentPlan entity.
func NewInstallmentPlan(
	name string,
	description string,
	clientRef *EntityRef,
	responsibleRef *EntityRef,
	totalAmount decimal.Decimal,
	installmentCount int,
	startDate time.Time,
	recurrence valueobject.RecurrenceRule,
	notes string,
	lastEditor string,
) *InstallmentPlan {
	now := time.Now().UTC()

	return &InstallmentPlan{
		ID:                 uuid.New(),
		Name:               name,
		Description:        description,
		ClientRef:          clientRef,
		ResponsibleRef:     responsibleRef,
		TotalAmount:        totalAmount,
		InstallmentCount:   installmentCount,
		CurrentInstallment: 1,
		Status:             PlanStatusActive,
		StartDate:          startDate,
		Recurrence:         recurrence,
		Notes:              notes,
		Active:             true,
		LastEditor:         lastEditor,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// InstallmentAmount returns the value of each installment: the total amount
// divided by the installment count, rounded to currency precision.
func (p *InstallmentPlan) InstallmentAmount() decimal.Decimal {
	if p.InstallmentCount <= 0 {
		return decimal.Zero
	}
	return p.TotalAmount.Div(decimal.NewFromInt(int64(p.InstallmentCount))).Round(2)
}

// RemainingAmount returns the amount still owed across unpaid installments.
func (p *InstallmentPlan) RemainingAmount() decimal.Decimal {
	remaining := p.InstallmentCount - p.CurrentInstallment + 1
	if p.Status == PlanStatusCompleted || remaining <= 0 {
		return decimal.Zero
	}
	return p.InstallmentAmount().Mul(decimal.NewFromInt(int64(remaining)))
}

// Advance moves the plan to the next installment, completing it after the last one.
func (p *InstallmentPlan) Advance() {
	if p.CurrentInstallment >= p.InstallmentCount {
		p.Status = PlanStatusCompleted
		p.NextDueDate = nil
	} else {
		p.CurrentInstallment++
	}
	p.UpdatedAt = time.Now().UTC()
}

// CanTransitionTo reports whether a status change is allowed. Completed and
// cancelled plans are terminal.
func (p *InstallmentPlan) CanTransitionTo(status PlanStatus) bool {
	if p.Status == status {
		return false
	}
	switch p.Status {
	case PlanStatusActive:
		return status == PlanStatusSuspended || status == PlanStatusCancelled || status == PlanStatusCompleted
	case PlanStatusSuspended:
		return status == PlanStatusActive || status == PlanStatusCancelled
	default:
		return false
	}
}
