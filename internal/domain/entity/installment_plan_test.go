// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

func newTestPlan(t *testing.T, total string, count int) *InstallmentPlan {
	t.Helper()
	amount, err := decimal.NewFromString(total)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", total, err)
	}
	rule := valueobject.RecurrenceRule{
		Frequency:        valueobject.FrequencyMonthly,
		AnchorDayOfMonth: 10,
	}
	return NewInstallmentPlan("refis", "", nil, nil, amount, count,
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), rule, "", "tester")
}

func TestInstallmentPlan_Amounts(t *testing.T) {
	t.Run("installment amount is the total split evenly", func(t *testing.T) {
		plan := newTestPlan(t, "1200.00", 12)
		if got := plan.InstallmentAmount().StringFixed(2); got != "100.00" {
			t.Errorf("expected installment amount 100.00, got %s", got)
		}
	})

	t.Run("uneven totals round to currency precision", func(t *testing.T) {
		plan := newTestPlan(t, "1000.00", 3)
		if got := plan.InstallmentAmount().StringFixed(2); got != "333.33" {
			t.Errorf("expected installment amount 333.33, got %s", got)
		}
	})

	t.Run("remaining amount shrinks as installments advance", func(t *testing.T) {
		plan := newTestPlan(t, "600.00", 6)
		if got := plan.RemainingAmount().StringFixed(2); got != "600.00" {
			t.Errorf("expected remaining 600.00 at start, got %s", got)
		}

		plan.Advance()
		if got := plan.RemainingAmount().StringFixed(2); got != "500.00" {
			t.Errorf("expected remaining 500.00 after one payment, got %s", got)
		}
	})

	t.Run("completed plan has nothing remaining", func(t *testing.T) {
		plan := newTestPlan(t, "200.00", 2)
		plan.Advance()
		plan.Advance()
		if plan.Status != PlanStatusCompleted {
			t.Fatalf("expected plan to complete, got status %s", plan.Status)
		}
		if !plan.RemainingAmount().IsZero() {
			t.Errorf("expected zero remaining, got %s", plan.RemainingAmount())
		}
	})
}

func TestInstallmentPlan_Advance(t *testing.T) {
	plan := newTestPlan(t, "300.00", 3)

	plan.Advance()
	if plan.CurrentInstallment != 2 {
		t.Errorf("expected installment 2, got %d", plan.CurrentInstallment)
	}
	plan.Advance()
	if plan.CurrentInstallment != 3 {
		t.Errorf("expected installment 3, got %d", plan.CurrentInstallment)
	}

	plan.Advance()
	if plan.Status != PlanStatusCompleted {
		t.Errorf("expected completed status after last installment, got %s", plan.Status)
	}
	if plan.NextDueDate != nil {
		t.Error("expected completed plan to have no next due date")
	}
}

func TestInstallmentPlan_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from PlanStatus
		to   PlanStatus
		want bool
	}{
		{"active can suspend", PlanStatusActive, PlanStatusSuspended, true},
		{"active can cancel", PlanStatusActive, PlanStatusCancelled, true},
		{"active can complete", PlanStatusActive, PlanStatusCompleted, true},
		{"suspended can resume", PlanStatusSuspended, PlanStatusActive, true},
		{"suspended can cancel", PlanStatusSuspended, PlanStatusCancelled, true},
		{"suspended cannot complete", PlanStatusSuspended, PlanStatusCompleted, false},
		{"completed is terminal", PlanStatusCompleted, PlanStatusActive, false},
		{"cancelled is terminal", PlanStatusCancelled, PlanStatusActive, false},
		{"no self transition", PlanStatusActive, PlanStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newTestPlan(t, "100.00", 1)
			plan.Status = tt.from
			if got := plan.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s) from %s = %v, want %v", tt.to, tt.from, got, tt.want)
			}
		})
	}
}
