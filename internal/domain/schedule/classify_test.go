package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify_Thresholds(t *testing.T) {
	now := date(2024, time.January, 10)

	cases := []struct {
		name     string
		dueDate  time.Time
		wantDays int
		wantTier Tier
	}{
		{"one day past due is overdue", date(2024, time.January, 9), -1, TierOverdue},
		{"due today is critical, not overdue", date(2024, time.January, 10), 0, TierCritical},
		{"three days out is critical", date(2024, time.January, 13), 3, TierCritical},
		{"four days out is urgent", date(2024, time.January, 14), 4, TierUrgent},
		{"seven days out is urgent", date(2024, time.January, 17), 7, TierUrgent},
		{"fifteen days out is attention", date(2024, time.January, 25), 15, TierAttention},
		{"twenty-two days out is normal", date(2024, time.February, 1), 22, TierNormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.dueDate, now)
			if got.DaysUntilDue != tc.wantDays {
				t.Errorf("expected %d days until due, got %d", tc.wantDays, got.DaysUntilDue)
			}
			if got.Tier != tc.wantTier {
				t.Errorf("expected tier %s, got %s", tc.wantTier, got.Tier)
			}
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// Late evening "now" versus early morning due date on the next day is
	// still one full calendar day apart.
	now := time.Date(2024, time.March, 4, 23, 58, 0, 0, time.UTC)
	due := time.Date(2024, time.March, 5, 0, 30, 0, 0, time.UTC)

	got := Classify(due, now)
	if got.DaysUntilDue != 1 {
		t.Errorf("expected 1 day until due, got %d", got.DaysUntilDue)
	}
	if got.Tier != TierCritical {
		t.Errorf("expected tier %s, got %s", TierCritical, got.Tier)
	}
}

func TestClassify_ShiftInvariance(t *testing.T) {
	// The tier depends only on the distance between the dates: shifting both
	// by the same amount never changes the result.
	now := date(2024, time.January, 10)
	due := date(2024, time.January, 16)
	base := Classify(due, now)

	for _, shiftDays := range []int{-400, -30, -1, 1, 45, 365} {
		shifted := Classify(due.AddDate(0, 0, shiftDays), now.AddDate(0, 0, shiftDays))
		if shifted != base {
			t.Errorf("shift by %d days changed classification: %+v != %+v", shiftDays, shifted, base)
		}
	}
}

func TestDaysUntilDue_FarPast(t *testing.T) {
	now := date(2024, time.June, 1)
	due := date(2024, time.April, 2)

	if got := DaysUntilDue(due, now); got != -60 {
		t.Errorf("expected -60 days, got %d", got)
	}
}
