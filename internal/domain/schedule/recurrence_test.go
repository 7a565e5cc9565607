package schedule

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// holidaySet is a HolidayCalendar backed by a fixed set of dates.
type holidaySet map[string]bool

func (h holidaySet) IsHoliday(date time.Time) bool {
	return h[date.Format("2006-01-02")]
}

// everyDayHoliday marks every date as a holiday, simulating a malformed calendar.
type everyDayHoliday struct{}

func (everyDayHoliday) IsHoliday(time.Time) bool { return true }

func monthlyRule(anchorDay int) valueobject.RecurrenceRule {
	return valueobject.RecurrenceRule{
		Frequency:        valueobject.FrequencyMonthly,
		AnchorDayOfMonth: anchorDay,
	}
}

func TestNextOccurrence_MonthlyClamp(t *testing.T) {
	rule := monthlyRule(31)

	t.Run("same month when anchor is still ahead", func(t *testing.T) {
		got, err := NextOccurrence(rule, date(2024, time.January, 20), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := date(2024, time.January, 31); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("leap february clamps 31 to 29", func(t *testing.T) {
		got, err := NextOccurrence(rule, date(2024, time.January, 31), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := date(2024, time.February, 29); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("non-leap february clamps 31 to 28", func(t *testing.T) {
		got, err := NextOccurrence(rule, date(2023, time.January, 31), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := date(2023, time.February, 28); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestNextOccurrence_WeekendAdjustment(t *testing.T) {
	rule := monthlyRule(13)
	rule.AdjustForWeekends = true

	// April 13th 2024 is a Saturday; the occurrence shifts to Monday the 15th.
	got, err := NextOccurrence(rule, date(2024, time.April, 1), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.April, 15); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNextOccurrence_HolidayThenWeekendChain(t *testing.T) {
	rule := valueobject.RecurrenceRule{
		Frequency:          valueobject.FrequencyCustomDays,
		CustomIntervalDays: 1,
		AdjustForWeekends:  true,
		AdjustForHolidays:  true,
	}
	// Friday 2024-05-03 is a holiday, so the raw date shifts onto the
	// weekend, then past it; Monday the 6th is a holiday too.
	cal := holidaySet{"2024-05-03": true, "2024-05-06": true}

	got, err := NextOccurrence(rule, date(2024, time.May, 2), cal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.May, 7); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNextOccurrence_NeverShiftsBackward(t *testing.T) {
	rule := monthlyRule(15)
	rule.AdjustForHolidays = true
	cal := holidaySet{"2024-03-15": true}

	got, err := NextOccurrence(rule, date(2024, time.March, 1), cal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.March, 16); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNextOccurrence_QuarterlyAlignment(t *testing.T) {
	rule := valueobject.RecurrenceRule{
		Frequency:        valueobject.FrequencyQuarterly,
		AnchorDayOfMonth: 10,
	}

	// The anchor in the reference month has already passed, so the next
	// occurrence lands three months out, not next month.
	got, err := NextOccurrence(rule, date(2024, time.January, 15), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.April, 10); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNextOccurrence_Annual(t *testing.T) {
	rule := valueobject.RecurrenceRule{
		Frequency:        valueobject.FrequencyAnnual,
		AnchorDayOfMonth: 30,
		AnchorMonth:      2,
	}

	got, err := NextOccurrence(rule, date(2023, time.March, 1), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.February, 29); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNextOccurrence_CustomDays(t *testing.T) {
	rule := valueobject.RecurrenceRule{
		Frequency:          valueobject.FrequencyCustomDays,
		CustomIntervalDays: 20,
	}

	got, err := NextOccurrence(rule, date(2024, time.January, 25), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2024, time.February, 14); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestNextOccurrence_StrictProgress(t *testing.T) {
	rules := []valueobject.RecurrenceRule{
		monthlyRule(1),
		monthlyRule(31),
		{Frequency: valueobject.FrequencyBimonthly, AnchorDayOfMonth: 15},
		{Frequency: valueobject.FrequencySemiannual, AnchorDayOfMonth: 28},
		{Frequency: valueobject.FrequencyAnnual, AnchorDayOfMonth: 31, AnchorMonth: 12},
		{Frequency: valueobject.FrequencyCustomDays, CustomIntervalDays: 1},
	}
	starts := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.December, 31),
	}

	for _, rule := range rules {
		for _, start := range starts {
			got, err := NextOccurrence(rule, start, nil)
			if err != nil {
				t.Fatalf("unexpected error for %+v from %s: %v", rule, start, err)
			}
			if !got.After(start) {
				t.Errorf("occurrence %s is not strictly after %s for %+v", got, start, rule)
			}
		}
	}
}

func TestNextOccurrence_MonotonicSequence(t *testing.T) {
	rule := monthlyRule(31)
	rule.AdjustForWeekends = true

	current := date(2024, time.January, 5)
	for i := 0; i < 24; i++ {
		next, err := NextOccurrence(rule, current, nil)
		if err != nil {
			t.Fatalf("unexpected error at step %d: %v", i, err)
		}
		if !next.After(current) {
			t.Fatalf("sequence not strictly increasing at step %d: %s then %s", i, current, next)
		}
		current = next
	}
}

func TestNextOccurrence_InvalidRules(t *testing.T) {
	cases := []struct {
		name string
		rule valueobject.RecurrenceRule
	}{
		{"none frequency", valueobject.RecurrenceRule{Frequency: valueobject.FrequencyNone}},
		{"unknown frequency", valueobject.RecurrenceRule{Frequency: "weekly"}},
		{"monthly without anchor day", valueobject.RecurrenceRule{Frequency: valueobject.FrequencyMonthly}},
		{"monthly anchor day out of range", monthlyRule(32)},
		{"annual without anchor month", valueobject.RecurrenceRule{Frequency: valueobject.FrequencyAnnual, AnchorDayOfMonth: 10}},
		{"annual anchor month out of range", valueobject.RecurrenceRule{Frequency: valueobject.FrequencyAnnual, AnchorDayOfMonth: 10, AnchorMonth: 13}},
		{"custom days without interval", valueobject.RecurrenceRule{Frequency: valueobject.FrequencyCustomDays}},
		{"custom days negative interval", valueobject.RecurrenceRule{Frequency: valueobject.FrequencyCustomDays, CustomIntervalDays: -5}},
		{"monthly with stray custom interval", valueobject.RecurrenceRule{Frequency: valueobject.FrequencyMonthly, AnchorDayOfMonth: 10, CustomIntervalDays: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NextOccurrence(tc.rule, date(2024, time.June, 1), nil)
			if !errors.Is(err, domainerror.ErrInvalidRule) {
				t.Errorf("expected ErrInvalidRule, got %v", err)
			}
		})
	}
}

func TestNextOccurrence_MalformedCalendar(t *testing.T) {
	rule := monthlyRule(10)
	rule.AdjustForHolidays = true

	_, err := NextOccurrence(rule, date(2024, time.January, 1), everyDayHoliday{})
	if !errors.Is(err, domainerror.ErrNonTerminatingAdjustment) {
		t.Errorf("expected ErrNonTerminatingAdjustment, got %v", err)
	}

	var schedErr *domainerror.ScheduleError
	if !errors.As(err, &schedErr) {
		t.Fatalf("expected a ScheduleError, got %T", err)
	}
	if schedErr.Code != domainerror.ErrCodeNonTerminatingAdjustment {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeNonTerminatingAdjustment, schedErr.Code)
	}
}
