// Package obligation contains obligation-related use cases.
package obligation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

type fakeObligationRepo struct {
	store map[uuid.UUID]*entity.Obligation
}

func newFakeObligationRepo() *fakeObligationRepo {
	return &fakeObligationRepo{store: make(map[uuid.UUID]*entity.Obligation)}
}

func (r *fakeObligationRepo) Create(_ context.Context, o *entity.Obligation) error {
	r.store[o.ID] = o
	return nil
}

func (r *fakeObligationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Obligation, error) {
	o, ok := r.store[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return o, nil
}

func (r *fakeObligationRepo) FindAll(_ context.Context) ([]*entity.Obligation, error) {
	result := make([]*entity.Obligation, 0, len(r.store))
	for _, o := range r.store {
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeObligationRepo) FindDueForGeneration(_ context.Context, _ time.Time) ([]*entity.Obligation, error) {
	return nil, nil
}

func (r *fakeObligationRepo) FindOpenDueWithin(_ context.Context, _, _ time.Time) ([]*entity.Obligation, error) {
	return nil, nil
}

func (r *fakeObligationRepo) Update(_ context.Context, o *entity.Obligation) error {
	r.store[o.ID] = o
	return nil
}

func (r *fakeObligationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store, id)
	return nil
}

func (r *fakeObligationRepo) CountByClient(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeObligationRepo) CountByResponsible(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeHistoryRepo struct {
	records []*entity.ChangeRecord
}

func (r *fakeHistoryRepo) Create(_ context.Context, record *entity.ChangeRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeHistoryRepo) CreateBatch(_ context.Context, records []*entity.ChangeRecord) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *fakeHistoryRepo) FindByObligation(_ context.Context, _ uuid.UUID) ([]*entity.ChangeRecord, error) {
	return r.records, nil
}

func (r *fakeHistoryRepo) FindRecent(_ context.Context, _ int) ([]*entity.ChangeRecord, error) {
	return r.records, nil
}

type noHolidays struct{}

func (noHolidays) IsHoliday(time.Time) bool { return false }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompleteObligationUseCase_Execute(t *testing.T) {
	t.Run("completing a one-off obligation creates no next occurrence", func(t *testing.T) {
		repo := newFakeObligationRepo()
		history := &fakeHistoryRepo{}
		uc := NewCompleteObligationUseCase(repo, history, noHolidays{})

		o := entity.NewObligation("annual report", "", entity.ObligationKindDocument,
			date(2024, time.March, 15), nil, nil, nil, "tester")
		repo.store[o.ID] = o

		out, err := uc.Execute(context.Background(), CompleteObligationInput{
			ID:     o.ID,
			Editor: "tester",
			Now:    date(2024, time.March, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Obligation.Completed {
			t.Error("expected obligation to be marked completed")
		}
		if out.NextOccurrence != nil {
			t.Error("expected no next occurrence for a one-off obligation")
		}
		if len(repo.store) != 1 {
			t.Errorf("expected 1 stored obligation, got %d", len(repo.store))
		}
		if len(history.records) != 1 {
			t.Fatalf("expected 1 change record, got %d", len(history.records))
		}
		if history.records[0].Field != "completed" {
			t.Errorf("expected change record field 'completed', got %q", history.records[0].Field)
		}
	})

	t.Run("completing a monthly obligation creates the next occurrence", func(t *testing.T) {
		repo := newFakeObligationRepo()
		history := &fakeHistoryRepo{}
		uc := NewCompleteObligationUseCase(repo, history, noHolidays{})

		rule := &valueobject.RecurrenceRule{
			Frequency:        valueobject.FrequencyMonthly,
			AnchorDayOfMonth: 20,
		}
		o := entity.NewObligation("ICMS", "", entity.ObligationKindTax,
			date(2024, time.May, 20), nil, nil, rule, "tester")
		repo.store[o.ID] = o

		out, err := uc.Execute(context.Background(), CompleteObligationInput{
			ID:     o.ID,
			Editor: "tester",
			Now:    date(2024, time.May, 18),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.NextOccurrence == nil {
			t.Fatal("expected a next occurrence for a recurring obligation")
		}
		// June 20 2024 is a Thursday, no shift applies.
		want := date(2024, time.June, 20)
		if !out.NextOccurrence.DueDate.Equal(want) {
			t.Errorf("expected next due date %s, got %s",
				want.Format(time.DateOnly), out.NextOccurrence.DueDate.Format(time.DateOnly))
		}
		if out.NextOccurrence.Completed {
			t.Error("expected next occurrence to start uncompleted")
		}
		if out.NextOccurrence.ID == o.ID {
			t.Error("expected next occurrence to have a fresh id")
		}
		if out.NextOccurrence.NextGenerationAt == nil {
			t.Error("expected next occurrence to carry a generation date")
		}
		if out.Obligation.NextGenerationAt != nil {
			t.Error("expected completed occurrence to stop driving generation")
		}
		if len(repo.store) != 2 {
			t.Errorf("expected 2 stored obligations, got %d", len(repo.store))
		}
	})

	t.Run("completing twice is rejected", func(t *testing.T) {
		repo := newFakeObligationRepo()
		history := &fakeHistoryRepo{}
		uc := NewCompleteObligationUseCase(repo, history, noHolidays{})

		o := entity.NewObligation("DAS", "", entity.ObligationKindTax,
			date(2024, time.April, 20), nil, nil, nil, "tester")
		repo.store[o.ID] = o

		if _, err := uc.Execute(context.Background(), CompleteObligationInput{ID: o.ID, Editor: "tester"}); err != nil {
			t.Fatalf("unexpected error on first completion: %v", err)
		}

		_, err := uc.Execute(context.Background(), CompleteObligationInput{ID: o.ID, Editor: "tester"})
		if err == nil {
			t.Fatal("expected error on second completion")
		}

		var obligationErr *domainerror.ObligationError
		if !errors.As(err, &obligationErr) {
			t.Fatalf("expected ObligationError, got %T", err)
		}
		if obligationErr.Code != domainerror.ErrCodeObligationAlreadyCompleted {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeObligationAlreadyCompleted, obligationErr.Code)
		}
	})

	t.Run("unknown obligation is rejected", func(t *testing.T) {
		repo := newFakeObligationRepo()
		uc := NewCompleteObligationUseCase(repo, &fakeHistoryRepo{}, noHolidays{})

		_, err := uc.Execute(context.Background(), CompleteObligationInput{ID: uuid.New(), Editor: "tester"})
		if !errors.Is(err, domainerror.ErrObligationNotFound) {
			t.Errorf("expected ErrObligationNotFound, got %v", err)
		}
	})
}

func TestCreateObligationUseCase_Execute(t *testing.T) {
	t.Run("creating with a weekend-adjusting rule shifts the due date", func(t *testing.T) {
		repo := newFakeObligationRepo()
		uc := NewCreateObligationUseCase(repo, nil, nil, noHolidays{})

		rule := &valueobject.RecurrenceRule{
			Frequency:         valueobject.FrequencyMonthly,
			AnchorDayOfMonth:  13,
			AdjustForWeekends: true,
		}
		out, err := uc.Execute(context.Background(), CreateObligationInput{
			Name:       "PIS",
			Kind:       entity.ObligationKindTax,
			DueDate:    date(2024, time.April, 13), // Saturday
			Recurrence: rule,
			Editor:     "tester",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := date(2024, time.April, 15) // following Monday
		if !out.Obligation.DueDate.Equal(want) {
			t.Errorf("expected due date %s, got %s",
				want.Format(time.DateOnly), out.Obligation.DueDate.Format(time.DateOnly))
		}
		if out.Obligation.NextGenerationAt == nil {
			t.Error("expected recurring obligation to carry a generation date")
		}
	})

	t.Run("invalid kind is rejected", func(t *testing.T) {
		repo := newFakeObligationRepo()
		uc := NewCreateObligationUseCase(repo, nil, nil, noHolidays{})

		_, err := uc.Execute(context.Background(), CreateObligationInput{
			Name:    "something",
			Kind:    entity.ObligationKind("mystery"),
			DueDate: date(2024, time.April, 1),
			Editor:  "tester",
		})
		if !errors.Is(err, domainerror.ErrInvalidObligationKind) {
			t.Errorf("expected ErrInvalidObligationKind, got %v", err)
		}
	})

	t.Run("invalid recurrence rule is rejected", func(t *testing.T) {
		repo := newFakeObligationRepo()
		uc := NewCreateObligationUseCase(repo, nil, nil, noHolidays{})

		_, err := uc.Execute(context.Background(), CreateObligationInput{
			Name:       "broken",
			Kind:       entity.ObligationKindTax,
			DueDate:    date(2024, time.April, 1),
			Recurrence: &valueobject.RecurrenceRule{Frequency: valueobject.FrequencyMonthly},
			Editor:     "tester",
		})
		if !errors.Is(err, domainerror.ErrInvalidRule) {
			t.Errorf("expected ErrInvalidRule, got %v", err)
		}
	})
}
