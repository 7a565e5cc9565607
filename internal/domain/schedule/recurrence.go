package schedule

import (
	"fmt"
	"time"

	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// HolidayCalendar answers whether a given date is a non-business day.
// Implementations are supplied by the caller (a static table, an external
// holiday feed); the core defines no holiday data of its own.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// maxAdjustmentIterations bounds the weekend/holiday adjustment loop. A date
// can cross at most one weekend per week and holiday calendars are sparse, so
// a well-formed calendar stabilizes within a handful of steps. Exceeding the
// bound signals a malformed calendar (e.g. every day marked as a holiday).
const maxAdjustmentIterations = 14

// NextOccurrence returns the first due date strictly after the reference date
// that satisfies the recurrence rule, with the weekend/holiday adjustment
// pass applied. It is stateless: feeding each result back in as the new
// reference date yields the strictly increasing sequence of occurrences.
func NextOccurrence(rule valueobject.RecurrenceRule, after time.Time, calendar HolidayCalendar) (time.Time, error) {
	if err := rule.Validate(); err != nil {
		return time.Time{}, err
	}
	if !rule.Frequency.IsRecurring() {
		return time.Time{}, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidRule,
			fmt.Sprintf("frequency %q does not generate occurrences", rule.Frequency),
			domainerror.ErrInvalidRule,
		)
	}

	raw := rawOccurrence(rule, startOfDay(after))
	return adjustForward(rule, raw, calendar)
}

// AdjustDueDate applies the rule's weekend/holiday shift policy to a date
// outside of occurrence generation, for callers that set due dates directly.
func AdjustDueDate(rule valueobject.RecurrenceRule, date time.Time, calendar HolidayCalendar) (time.Time, error) {
	return adjustForward(rule, startOfDay(date), calendar)
}

// rawOccurrence computes the occurrence before the adjustment pass.
// The reference date is already normalized to midnight.
func rawOccurrence(rule valueobject.RecurrenceRule, after time.Time) time.Time {
	switch rule.Frequency {
	case valueobject.FrequencyCustomDays:
		return after.AddDate(0, 0, rule.CustomIntervalDays)

	case valueobject.FrequencyAnnual:
		// First year whose anchored date lands strictly after the reference.
		for year := after.Year(); ; year++ {
			candidate := anchoredDate(year, time.Month(rule.AnchorMonth), rule.AnchorDayOfMonth)
			if candidate.After(after) {
				return candidate
			}
		}

	default:
		// Month-aligned: walk months in steps of the frequency's interval,
		// starting at the reference month (offset zero is a valid multiple).
		interval := rule.Frequency.MonthInterval()
		firstOfMonth := time.Date(after.Year(), after.Month(), 1, 0, 0, 0, 0, time.UTC)
		for offset := 0; ; offset += interval {
			month := firstOfMonth.AddDate(0, offset, 0)
			candidate := anchoredDate(month.Year(), month.Month(), rule.AnchorDayOfMonth)
			if candidate.After(after) {
				return candidate
			}
		}
	}
}

// anchoredDate builds the date for the anchor day in the given month,
// clamping to the month's last day when the month is shorter.
func anchoredDate(year int, month time.Month, day int) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// adjustForward applies the weekend/holiday adjustment pass. Shifts are
// strictly forward; the result is never earlier than the raw occurrence.
func adjustForward(rule valueobject.RecurrenceRule, raw time.Time, calendar HolidayCalendar) (time.Time, error) {
	date := raw
	for i := 0; i < maxAdjustmentIterations; i++ {
		switch {
		case rule.AdjustForHolidays && calendar != nil && calendar.IsHoliday(date):
			date = date.AddDate(0, 0, 1)
		case rule.AdjustForWeekends && date.Weekday() == time.Saturday:
			date = date.AddDate(0, 0, 2)
		case rule.AdjustForWeekends && date.Weekday() == time.Sunday:
			date = date.AddDate(0, 0, 1)
		default:
			return date, nil
		}
	}

	return time.Time{}, domainerror.NewScheduleError(
		domainerror.ErrCodeNonTerminatingAdjustment,
		fmt.Sprintf("adjustment did not stabilize within %d iterations starting at %s", maxAdjustmentIterations, raw.Format("2006-01-02")),
		domainerror.ErrNonTerminatingAdjustment,
	)
}
