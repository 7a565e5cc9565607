package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/application/usecase/tax"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

type noHolidays struct{}

func (noHolidays) IsHoliday(time.Time) bool { return false }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeObligationRepo struct {
	obligations map[uuid.UUID]*entity.Obligation
}

func newFakeObligationRepo() *fakeObligationRepo {
	return &fakeObligationRepo{obligations: make(map[uuid.UUID]*entity.Obligation)}
}

func (r *fakeObligationRepo) Create(_ context.Context, o *entity.Obligation) error {
	r.obligations[o.ID] = o
	return nil
}

func (r *fakeObligationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Obligation, error) {
	return r.obligations[id], nil
}

func (r *fakeObligationRepo) FindAll(_ context.Context) ([]*entity.Obligation, error) {
	result := make([]*entity.Obligation, 0, len(r.obligations))
	for _, o := range r.obligations {
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeObligationRepo) FindDueForGeneration(_ context.Context, at time.Time) ([]*entity.Obligation, error) {
	var result []*entity.Obligation
	for _, o := range r.obligations {
		if o.NextGenerationAt != nil && !o.NextGenerationAt.After(at) && !o.Completed && o.Active {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeObligationRepo) FindOpenDueWithin(_ context.Context, from, to time.Time) ([]*entity.Obligation, error) {
	var result []*entity.Obligation
	for _, o := range r.obligations {
		if o.Completed || !o.Active {
			continue
		}
		if o.DueDate.Before(from) || o.DueDate.After(to) {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeObligationRepo) Update(_ context.Context, o *entity.Obligation) error {
	r.obligations[o.ID] = o
	return nil
}

func (r *fakeObligationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.obligations, id)
	return nil
}

func (r *fakeObligationRepo) CountByClient(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeObligationRepo) CountByResponsible(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeResponsibleRepo struct {
	responsibles map[uuid.UUID]*entity.Responsible
}

func (r *fakeResponsibleRepo) Create(_ context.Context, resp *entity.Responsible) error {
	r.responsibles[resp.ID] = resp
	return nil
}

func (r *fakeResponsibleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Responsible, error) {
	return r.responsibles[id], nil
}

func (r *fakeResponsibleRepo) FindAll(_ context.Context) ([]*entity.Responsible, error) {
	return nil, nil
}

func (r *fakeResponsibleRepo) Update(_ context.Context, _ *entity.Responsible) error { return nil }
func (r *fakeResponsibleRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }

type fakeReminderQueue struct {
	queued []*entity.ReminderJob
}

func (q *fakeReminderQueue) Enqueue(_ context.Context, job *entity.ReminderJob) error {
	q.queued = append(q.queued, job)
	return nil
}

func (q *fakeReminderQueue) GetPendingJobs(_ context.Context, _ int) ([]*entity.ReminderJob, error) {
	return nil, nil
}

func (q *fakeReminderQueue) Update(_ context.Context, _ *entity.ReminderJob) error { return nil }

func (q *fakeReminderQueue) ExistsForObligation(_ context.Context, obligationID uuid.UUID, templateType entity.ReminderTemplateType) (bool, error) {
	for _, job := range q.queued {
		if job.ObligationID != nil && *job.ObligationID == obligationID && job.TemplateType == templateType {
			return true, nil
		}
	}
	return false, nil
}

// fakeReminderService queues directly into the fake queue, mirroring what the
// real service does through the repository.
type fakeReminderService struct {
	queue *fakeReminderQueue
}

func (s *fakeReminderService) QueueDueDateReminder(ctx context.Context, input adapter.QueueDueDateReminderInput) error {
	job := entity.NewReminderJob(entity.TemplateDueDateReminder, input.RecipientEmail, input.RecipientName, "", nil)
	if id, err := uuid.Parse(input.ObligationID); err == nil {
		job.ObligationID = &id
	}
	return s.queue.Enqueue(ctx, job)
}

func (s *fakeReminderService) QueueOverdueNotice(ctx context.Context, input adapter.QueueOverdueNoticeInput) error {
	job := entity.NewReminderJob(entity.TemplateOverdueNotice, input.RecipientEmail, input.RecipientName, "", nil)
	if id, err := uuid.Parse(input.ObligationID); err == nil {
		job.ObligationID = &id
	}
	return s.queue.Enqueue(ctx, job)
}

func (s *fakeReminderService) QueuePasswordResetEmail(_ context.Context, _ adapter.QueuePasswordResetInput) error {
	return nil
}

type fakeTaxRepo struct {
	taxes []*entity.Tax
}

func (r *fakeTaxRepo) Create(_ context.Context, _ *entity.Tax) error                { return nil }
func (r *fakeTaxRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Tax, error) { return nil, nil }
func (r *fakeTaxRepo) FindAll(_ context.Context) ([]*entity.Tax, error)             { return r.taxes, nil }
func (r *fakeTaxRepo) FindActive(_ context.Context) ([]*entity.Tax, error) {
	var active []*entity.Tax
	for _, t := range r.taxes {
		if t.Active {
			active = append(active, t)
		}
	}
	return active, nil
}
func (r *fakeTaxRepo) ExistsByCode(_ context.Context, _ string) (bool, error) { return false, nil }
func (r *fakeTaxRepo) Update(_ context.Context, _ *entity.Tax) error          { return nil }
func (r *fakeTaxRepo) Delete(_ context.Context, _ uuid.UUID) error            { return nil }

func newTestWorker(obligations *fakeObligationRepo, queue *fakeReminderQueue, taxes *fakeTaxRepo) *Worker {
	generateUC := tax.NewGenerateObligationsUseCase(taxes, obligations, noHolidays{})
	config := DefaultConfig()
	config.FallbackEmail = "contador@example.com"
	config.FallbackName = "Contador"
	return NewWorker(
		obligations,
		&fakeResponsibleRepo{responsibles: make(map[uuid.UUID]*entity.Responsible)},
		queue,
		&fakeReminderService{queue: queue},
		generateUC,
		noHolidays{},
		config,
	)
}

func monthlyRule(day int) *valueobject.RecurrenceRule {
	return &valueobject.RecurrenceRule{
		Frequency:        valueobject.FrequencyMonthly,
		AnchorDayOfMonth: day,
	}
}

func TestWorkerRollForward(t *testing.T) {
	obligations := newFakeObligationRepo()
	queue := &fakeReminderQueue{}
	worker := newTestWorker(obligations, queue, &fakeTaxRepo{})

	o := entity.NewObligation("DAS mensal", "", entity.ObligationKindTax,
		date(2024, time.May, 20), nil, nil, monthlyRule(20), "tester")
	generation := o.DueDate
	o.NextGenerationAt = &generation
	obligations.obligations[o.ID] = o

	worker.RunOnce(context.Background(), date(2024, time.May, 21))

	if len(obligations.obligations) != 2 {
		t.Fatalf("expected next occurrence to be created, got %d obligations", len(obligations.obligations))
	}

	if o.NextGenerationAt != nil {
		t.Error("expected generation date to be cleared on the rolled obligation")
	}

	var next *entity.Obligation
	for _, candidate := range obligations.obligations {
		if candidate.ID != o.ID {
			next = candidate
		}
	}
	want := date(2024, time.June, 20)
	if !next.DueDate.Equal(want) {
		t.Errorf("next occurrence due %s, want %s", next.DueDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if next.NextGenerationAt == nil || !next.NextGenerationAt.Equal(want) {
		t.Error("expected next occurrence to carry its own generation date")
	}
	if next.LastEditor != systemEditor {
		t.Errorf("next occurrence editor = %q, want %q", next.LastEditor, systemEditor)
	}
}

func TestWorkerQueuesDueDateReminderOnce(t *testing.T) {
	obligations := newFakeObligationRepo()
	queue := &fakeReminderQueue{}
	worker := newTestWorker(obligations, queue, &fakeTaxRepo{})

	o := entity.NewObligation("DCTF", "", entity.ObligationKindDeclaration,
		date(2024, time.May, 24), nil, nil, nil, "tester")
	obligations.obligations[o.ID] = o

	now := date(2024, time.May, 21)
	worker.RunOnce(context.Background(), now)
	worker.RunOnce(context.Background(), now)

	var reminders int
	for _, job := range queue.queued {
		if job.TemplateType == entity.TemplateDueDateReminder {
			reminders++
			if job.RecipientEmail != "contador@example.com" {
				t.Errorf("reminder recipient = %q, want fallback", job.RecipientEmail)
			}
		}
	}
	if reminders != 1 {
		t.Errorf("expected exactly one reminder after two scans, got %d", reminders)
	}
}

func TestWorkerQueuesOverdueNotice(t *testing.T) {
	obligations := newFakeObligationRepo()
	queue := &fakeReminderQueue{}
	worker := newTestWorker(obligations, queue, &fakeTaxRepo{})

	o := entity.NewObligation("ISS atrasado", "", entity.ObligationKindTax,
		date(2024, time.May, 10), nil, nil, nil, "tester")
	obligations.obligations[o.ID] = o

	worker.RunOnce(context.Background(), date(2024, time.May, 15))

	var notices int
	for _, job := range queue.queued {
		if job.TemplateType == entity.TemplateOverdueNotice {
			notices++
		}
	}
	if notices != 1 {
		t.Errorf("expected one overdue notice, got %d", notices)
	}
}

func TestWorkerGeneratesFromTemplates(t *testing.T) {
	obligations := newFakeObligationRepo()
	queue := &fakeReminderQueue{}
	taxes := &fakeTaxRepo{}

	template := entity.NewTax("DAS", "DAS", "Simples Nacional", entity.JurisdictionFederal,
		valueobject.RecurrenceRule{Frequency: valueobject.FrequencyMonthly, AnchorDayOfMonth: 20}, 7, "tester")
	taxes.taxes = append(taxes.taxes, template)

	worker := newTestWorker(obligations, queue, taxes)
	worker.RunOnce(context.Background(), date(2024, time.May, 1))

	var generated int
	for _, o := range obligations.obligations {
		if o.Name == "DAS 2024-05" {
			generated++
		}
	}
	if generated != 1 {
		t.Errorf("expected one generated obligation named from the template, got %d", generated)
	}
}
