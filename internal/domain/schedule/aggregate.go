package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

const (
	// DefaultUpcomingWindowDays is the window used by the dashboard's
	// "next due" panel when the caller does not specify one.
	DefaultUpcomingWindowDays = 7
	// DefaultUpcomingLimit caps the upcoming list when the caller does not
	// specify a maximum.
	DefaultUpcomingLimit = 10
)

// Statistics holds dashboard counters computed fresh from a collection of
// obligations. Completed obligations count toward Total and Completed only,
// never toward a tier bucket, so the five tier buckets plus Completed always
// sum to Total.
type Statistics struct {
	Total     int
	Overdue   int
	Critical  int
	Urgent    int
	Attention int
	Normal    int
	Completed int
}

// KindCount summarizes obligations of one kind.
type KindCount struct {
	Count          int
	CompletedCount int
}

// Filter narrows an obligation collection. Zero-valued fields impose no
// constraint; date bounds are inclusive.
type Filter struct {
	ClientID      *uuid.UUID
	ResponsibleID *uuid.UUID
	Kind          *entity.ObligationKind
	Completed     *bool
	DateFrom      *time.Time
	DateTo        *time.Time
}

// Upcoming returns the open obligations due within the window, ordered by
// days-until-due and then name for determinism, truncated to the limit.
// Overdue obligations qualify: a negative day count is within any window.
func Upcoming(obligations []*entity.Obligation, now time.Time, withinDays, limit int) []*entity.Obligation {
	if withinDays <= 0 {
		withinDays = DefaultUpcomingWindowDays
	}
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	upcoming := make([]*entity.Obligation, 0, len(obligations))
	for _, o := range obligations {
		if o.Completed {
			continue
		}
		if DaysUntilDue(o.DueDate, now) <= withinDays {
			upcoming = append(upcoming, o)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		di := DaysUntilDue(upcoming[i].DueDate, now)
		dj := DaysUntilDue(upcoming[j].DueDate, now)
		if di != dj {
			return di < dj
		}
		return upcoming[i].Name < upcoming[j].Name
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// ComputeStatistics counts obligations per urgency tier. Counts are computed
// fresh on every call; nothing is cached.
func ComputeStatistics(obligations []*entity.Obligation, now time.Time) Statistics {
	stats := Statistics{Total: len(obligations)}

	for _, o := range obligations {
		if o.Completed {
			stats.Completed++
			continue
		}
		switch Classify(o.DueDate, now).Tier {
		case TierOverdue:
			stats.Overdue++
		case TierCritical:
			stats.Critical++
		case TierUrgent:
			stats.Urgent++
		case TierAttention:
			stats.Attention++
		case TierNormal:
			stats.Normal++
		}
	}

	return stats
}

// ByKind groups obligations by kind for type-distribution summaries.
func ByKind(obligations []*entity.Obligation) map[entity.ObligationKind]KindCount {
	summary := make(map[entity.ObligationKind]KindCount)
	for _, o := range obligations {
		kc := summary[o.Kind]
		kc.Count++
		if o.Completed {
			kc.CompletedCount++
		}
		summary[o.Kind] = kc
	}
	return summary
}

// ApplyFilters returns the obligations matching every populated filter field,
// preserving input order. The input is never mutated.
func ApplyFilters(obligations []*entity.Obligation, filter Filter) []*entity.Obligation {
	matched := make([]*entity.Obligation, 0, len(obligations))
	for _, o := range obligations {
		if matches(o, filter) {
			matched = append(matched, o)
		}
	}
	return matched
}

func matches(o *entity.Obligation, f Filter) bool {
	if f.ClientID != nil && (o.ClientRef == nil || o.ClientRef.ID != *f.ClientID) {
		return false
	}
	if f.ResponsibleID != nil && (o.ResponsibleRef == nil || o.ResponsibleRef.ID != *f.ResponsibleID) {
		return false
	}
	if f.Kind != nil && o.Kind != *f.Kind {
		return false
	}
	if f.Completed != nil && o.Completed != *f.Completed {
		return false
	}
	if f.DateFrom != nil && startOfDay(o.DueDate).Before(startOfDay(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && startOfDay(o.DueDate).After(startOfDay(*f.DateTo)) {
		return false
	}
	return true
}
