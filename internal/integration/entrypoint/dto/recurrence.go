// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// RecurrenceRuleRequest represents a recurrence rule in request bodies.
type RecurrenceRuleRequest struct {
	Frequency          string `json:"frequency" binding:"required,oneof=none monthly bimonthly quarterly semiannual annual custom_days"`
	AnchorDayOfMonth   int    `json:"anchor_day_of_month,omitempty" binding:"omitempty,min=1,max=31"`
	AnchorMonth        int    `json:"anchor_month,omitempty" binding:"omitempty,min=1,max=12"`
	CustomIntervalDays int    `json:"custom_interval_days,omitempty" binding:"omitempty,min=1"`
	AdjustForWeekends  bool   `json:"adjust_for_weekends"`
	AdjustForHolidays  bool   `json:"adjust_for_holidays"`
}

// RecurrenceRuleResponse represents a recurrence rule in API responses.
type RecurrenceRuleResponse struct {
	Frequency          string `json:"frequency"`
	AnchorDayOfMonth   int    `json:"anchor_day_of_month,omitempty"`
	AnchorMonth        int    `json:"anchor_month,omitempty"`
	CustomIntervalDays int    `json:"custom_interval_days,omitempty"`
	AdjustForWeekends  bool   `json:"adjust_for_weekends"`
	AdjustForHolidays  bool   `json:"adjust_for_holidays"`
}

// ToRecurrenceRule converts a RecurrenceRuleRequest to the domain value object.
func (r *RecurrenceRuleRequest) ToRecurrenceRule() valueobject.RecurrenceRule {
	return valueobject.RecurrenceRule{
		Frequency:          valueobject.Frequency(r.Frequency),
		AnchorDayOfMonth:   r.AnchorDayOfMonth,
		AnchorMonth:        r.AnchorMonth,
		CustomIntervalDays: r.CustomIntervalDays,
		AdjustForWeekends:  r.AdjustForWeekends,
		AdjustForHolidays:  r.AdjustForHolidays,
	}
}

// ToRecurrenceRuleResponse converts a domain recurrence rule to its response DTO.
func ToRecurrenceRuleResponse(rule *valueobject.RecurrenceRule) *RecurrenceRuleResponse {
	if rule == nil {
		return nil
	}
	return &RecurrenceRuleResponse{
		Frequency:          string(rule.Frequency),
		AnchorDayOfMonth:   rule.AnchorDayOfMonth,
		AnchorMonth:        rule.AnchorMonth,
		CustomIntervalDays: rule.CustomIntervalDays,
		AdjustForWeekends:  rule.AdjustForWeekends,
		AdjustForHolidays:  rule.AdjustForHolidays,
	}
}
