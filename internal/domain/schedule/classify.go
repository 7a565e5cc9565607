// Package schedule implements the due-date computation core: urgency
// classification, recurrence generation and dashboard aggregation. All
// functions are pure; the current time is always an explicit parameter.
package schedule

import "time"

// Tier classifies how close to (or past) its due date an obligation is.
type Tier string

const (
	TierOverdue   Tier = "overdue"
	TierCritical  Tier = "critical"
	TierUrgent    Tier = "urgent"
	TierAttention Tier = "attention"
	TierNormal    Tier = "normal"
)

// Classification is the result of classifying a due date against a reference time.
type Classification struct {
	DaysUntilDue int // negative when overdue
	Tier         Tier
}

// DaysUntilDue returns the number of calendar days between now and the due
// date. Both sides are normalized to midnight, so time-of-day never affects
// the result. Due today is 0; yesterday is -1.
func DaysUntilDue(dueDate, now time.Time) int {
	due := startOfDay(dueDate)
	ref := startOfDay(now)
	return int(due.Sub(ref).Hours() / 24)
}

// Classify computes the days remaining until the due date and maps them to an
// urgency tier. Thresholds are evaluated in order, first match wins; a due
// date of today falls into the critical tier, not overdue.
func Classify(dueDate, now time.Time) Classification {
	days := DaysUntilDue(dueDate, now)

	var tier Tier
	switch {
	case days < 0:
		tier = TierOverdue
	case days <= 3:
		tier = TierCritical
	case days <= 7:
		tier = TierUrgent
	case days <= 15:
		tier = TierAttention
	default:
		tier = TierNormal
	}

	return Classification{DaysUntilDue: days, Tier: tier}
}

// startOfDay maps a timestamp to midnight of its calendar date. UTC is used
// as a neutral location so the subtraction in DaysUntilDue is an exact
// multiple of 24 hours.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
