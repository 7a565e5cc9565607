// Package valueobject contains domain value objects for the Fiscal Tracker system.
package valueobject

import (
	"fmt"

	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
)

// Frequency represents how often a recurring due date repeats.
type Frequency string

const (
	FrequencyNone       Frequency = "none"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyBimonthly  Frequency = "bimonthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
	FrequencyCustomDays Frequency = "custom_days"
)

// MonthInterval returns the number of months between occurrences for
// month-aligned frequencies, or 0 for frequencies that are not month-aligned.
func (f Frequency) MonthInterval() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyBimonthly:
		return 2
	case FrequencyQuarterly:
		return 3
	case FrequencySemiannual:
		return 6
	default:
		return 0
	}
}

// IsRecurring reports whether the frequency produces more than one occurrence.
func (f Frequency) IsRecurring() bool {
	switch f {
	case FrequencyMonthly, FrequencyBimonthly, FrequencyQuarterly,
		FrequencySemiannual, FrequencyAnnual, FrequencyCustomDays:
		return true
	default:
		return false
	}
}

// RecurrenceRule describes how successive due dates are generated from an anchor.
// Exactly one anchor family is populated: the day-of-month fields for
// month-aligned frequencies, or CustomIntervalDays for custom frequencies.
type RecurrenceRule struct {
	Frequency          Frequency
	AnchorDayOfMonth   int // 1-31, clamped to the target month's last day
	AnchorMonth        int // 1-12, annual rules only
	CustomIntervalDays int // > 0, custom_days rules only
	AdjustForWeekends  bool
	AdjustForHolidays  bool
}

// Validate checks the field-presence and range invariants for the rule's frequency.
func (r RecurrenceRule) Validate() error {
	switch r.Frequency {
	case FrequencyNone:
		return nil
	case FrequencyMonthly, FrequencyBimonthly, FrequencyQuarterly, FrequencySemiannual:
		if r.AnchorDayOfMonth < 1 || r.AnchorDayOfMonth > 31 {
			return domainerror.NewScheduleError(
				domainerror.ErrCodeMissingAnchorDay,
				fmt.Sprintf("anchor day of month must be between 1 and 31, got %d", r.AnchorDayOfMonth),
				domainerror.ErrInvalidRule,
			)
		}
		if r.CustomIntervalDays != 0 {
			return domainerror.NewScheduleError(
				domainerror.ErrCodeInvalidRule,
				"custom interval days must not be set for month-aligned rules",
				domainerror.ErrInvalidRule,
			)
		}
		return nil
	case FrequencyAnnual:
		if r.AnchorDayOfMonth < 1 || r.AnchorDayOfMonth > 31 {
			return domainerror.NewScheduleError(
				domainerror.ErrCodeMissingAnchorDay,
				fmt.Sprintf("anchor day of month must be between 1 and 31, got %d", r.AnchorDayOfMonth),
				domainerror.ErrInvalidRule,
			)
		}
		if r.AnchorMonth < 1 || r.AnchorMonth > 12 {
			return domainerror.NewScheduleError(
				domainerror.ErrCodeMissingAnchorMonth,
				fmt.Sprintf("anchor month must be between 1 and 12, got %d", r.AnchorMonth),
				domainerror.ErrInvalidRule,
			)
		}
		if r.CustomIntervalDays != 0 {
			return domainerror.NewScheduleError(
				domainerror.ErrCodeInvalidRule,
				"custom interval days must not be set for annual rules",
				domainerror.ErrInvalidRule,
			)
		}
		return nil
	case FrequencyCustomDays:
		if r.CustomIntervalDays <= 0 {
			return domainerror.NewScheduleError(
				domainerror.ErrCodeMissingCustomInterval,
				fmt.Sprintf("custom interval days must be positive, got %d", r.CustomIntervalDays),
				domainerror.ErrInvalidRule,
			)
		}
		if r.AnchorDayOfMonth != 0 || r.AnchorMonth != 0 {
			return domainerror.NewScheduleError(
				domainerror.ErrCodeInvalidRule,
				"anchor fields must not be set for custom interval rules",
				domainerror.ErrInvalidRule,
			)
		}
		return nil
	default:
		return domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidRule,
			fmt.Sprintf("unknown frequency %q", r.Frequency),
			domainerror.ErrInvalidRule,
		)
	}
}
