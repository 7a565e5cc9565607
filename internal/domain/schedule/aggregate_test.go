package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

func obligation(name string, due time.Time, completed bool) *entity.Obligation {
	o := entity.NewObligation(name, "", entity.ObligationKindTax, due, nil, nil, nil, "test")
	o.Completed = completed
	return o
}

func TestUpcoming(t *testing.T) {
	now := date(2024, time.January, 10)

	obligations := []*entity.Obligation{
		obligation("icms", date(2024, time.January, 14), false),
		obligation("iss", date(2024, time.January, 8), false),   // overdue, still listed
		obligation("darf", date(2024, time.January, 30), false), // outside the window
		obligation("inss", date(2024, time.January, 12), true),  // completed, excluded
		obligation("pis", date(2024, time.January, 14), false),  // ties with icms on days
	}

	got := Upcoming(obligations, now, 0, 0)

	wantNames := []string{"iss", "icms", "pis"}
	if len(got) != len(wantNames) {
		t.Fatalf("expected %d obligations, got %d", len(wantNames), len(got))
	}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestUpcoming_Truncation(t *testing.T) {
	now := date(2024, time.January, 10)

	var obligations []*entity.Obligation
	for i := 0; i < 5; i++ {
		obligations = append(obligations, obligation(string(rune('a'+i)), date(2024, time.January, 11), false))
	}

	got := Upcoming(obligations, now, 7, 3)
	if len(got) != 3 {
		t.Errorf("expected 3 obligations after truncation, got %d", len(got))
	}
}

func TestComputeStatistics(t *testing.T) {
	now := date(2024, time.January, 10)

	obligations := []*entity.Obligation{
		obligation("a", date(2024, time.January, 5), false),  // overdue
		obligation("b", date(2024, time.January, 10), false), // critical
		obligation("c", date(2024, time.January, 13), false), // critical
		obligation("d", date(2024, time.January, 16), false), // urgent
		obligation("e", date(2024, time.January, 20), false), // attention
		obligation("f", date(2024, time.March, 1), false),    // normal
		obligation("g", date(2024, time.January, 5), true),   // completed, overdue date ignored
		obligation("h", date(2024, time.March, 1), true),     // completed
	}

	stats := ComputeStatistics(obligations, now)

	if stats.Total != 8 {
		t.Errorf("expected total 8, got %d", stats.Total)
	}
	if stats.Overdue != 1 {
		t.Errorf("expected 1 overdue, got %d", stats.Overdue)
	}
	if stats.Critical != 2 {
		t.Errorf("expected 2 critical, got %d", stats.Critical)
	}
	if stats.Urgent != 1 {
		t.Errorf("expected 1 urgent, got %d", stats.Urgent)
	}
	if stats.Attention != 1 {
		t.Errorf("expected 1 attention, got %d", stats.Attention)
	}
	if stats.Normal != 1 {
		t.Errorf("expected 1 normal, got %d", stats.Normal)
	}
	if stats.Completed != 2 {
		t.Errorf("expected 2 completed, got %d", stats.Completed)
	}

	// Tier buckets plus completed always sum back to total.
	sum := stats.Overdue + stats.Critical + stats.Urgent + stats.Attention + stats.Normal + stats.Completed
	if sum != stats.Total {
		t.Errorf("buckets sum to %d, expected total %d", sum, stats.Total)
	}
}

func TestByKind(t *testing.T) {
	obligations := []*entity.Obligation{
		obligation("a", date(2024, time.January, 5), false),
		obligation("b", date(2024, time.January, 6), true),
		obligation("c", date(2024, time.January, 7), false),
	}
	obligations[2].Kind = entity.ObligationKindDeclaration

	summary := ByKind(obligations)

	if kc := summary[entity.ObligationKindTax]; kc.Count != 2 || kc.CompletedCount != 1 {
		t.Errorf("tax kind: expected count 2 completed 1, got %+v", kc)
	}
	if kc := summary[entity.ObligationKindDeclaration]; kc.Count != 1 || kc.CompletedCount != 0 {
		t.Errorf("declaration kind: expected count 1 completed 0, got %+v", kc)
	}
}

func TestApplyFilters(t *testing.T) {
	clientID := uuid.New()
	other := uuid.New()

	a := obligation("a", date(2024, time.January, 5), false)
	a.ClientRef = &entity.EntityRef{ID: clientID, Name: "Acme"}
	b := obligation("b", date(2024, time.January, 20), true)
	b.ClientRef = &entity.EntityRef{ID: other, Name: "Other"}
	c := obligation("c", date(2024, time.February, 2), false)

	obligations := []*entity.Obligation{a, b, c}

	t.Run("empty filter returns everything in order", func(t *testing.T) {
		got := ApplyFilters(obligations, Filter{})
		if len(got) != 3 {
			t.Fatalf("expected 3 obligations, got %d", len(got))
		}
		for i := range obligations {
			if got[i] != obligations[i] {
				t.Errorf("position %d: order not preserved", i)
			}
		}
	})

	t.Run("client filter", func(t *testing.T) {
		got := ApplyFilters(obligations, Filter{ClientID: &clientID})
		if len(got) != 1 || got[0] != a {
			t.Errorf("expected only obligation a, got %d results", len(got))
		}
	})

	t.Run("completed filter", func(t *testing.T) {
		completed := true
		got := ApplyFilters(obligations, Filter{Completed: &completed})
		if len(got) != 1 || got[0] != b {
			t.Errorf("expected only obligation b, got %d results", len(got))
		}
	})

	t.Run("inclusive date range", func(t *testing.T) {
		from := date(2024, time.January, 5)
		to := date(2024, time.January, 20)
		got := ApplyFilters(obligations, Filter{DateFrom: &from, DateTo: &to})
		if len(got) != 2 {
			t.Fatalf("expected 2 obligations, got %d", len(got))
		}
		if got[0] != a || got[1] != b {
			t.Error("expected obligations a and b on the range boundaries")
		}
	})

	t.Run("combined filters narrow", func(t *testing.T) {
		kind := entity.ObligationKindTax
		open := false
		got := ApplyFilters(obligations, Filter{Kind: &kind, Completed: &open})
		if len(got) != 2 {
			t.Errorf("expected 2 open tax obligations, got %d", len(got))
		}
	})
}
