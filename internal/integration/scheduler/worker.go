// Package scheduler runs the periodic jobs that keep recurring obligations
// rolling forward and reminders flowing.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/application/usecase/tax"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

const systemEditor = "Sistema"

// Config holds configuration for the scheduler worker.
type Config struct {
	ScanInterval       time.Duration
	ReminderWindowDays int
	OverdueGraceDays   int
	FallbackEmail      string
	FallbackName       string
}

// DefaultConfig returns the default scheduler configuration.
func DefaultConfig() Config {
	return Config{
		ScanInterval:       1 * time.Hour,
		ReminderWindowDays: 7,
		OverdueGraceDays:   30,
	}
}

// Worker rolls recurring obligations forward, materializes obligations from
// tax templates and queues due-date and overdue reminders.
type Worker struct {
	obligationRepo  adapter.ObligationRepository
	responsibleRepo adapter.ResponsibleRepository
	reminderQueue   adapter.ReminderQueueRepository
	reminderService adapter.ReminderService
	generateUseCase *tax.GenerateObligationsUseCase
	calendar        schedule.HolidayCalendar
	config          Config
}

// NewWorker creates a new scheduler worker.
func NewWorker(
	obligationRepo adapter.ObligationRepository,
	responsibleRepo adapter.ResponsibleRepository,
	reminderQueue adapter.ReminderQueueRepository,
	reminderService adapter.ReminderService,
	generateUseCase *tax.GenerateObligationsUseCase,
	calendar schedule.HolidayCalendar,
	config Config,
) *Worker {
	return &Worker{
		obligationRepo:  obligationRepo,
		responsibleRepo: responsibleRepo,
		reminderQueue:   reminderQueue,
		reminderService: reminderService,
		generateUseCase: generateUseCase,
		calendar:        calendar,
		config:          config,
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Scheduler worker started",
		"scan_interval", w.config.ScanInterval,
		"reminder_window_days", w.config.ReminderWindowDays,
	)

	ticker := time.NewTicker(w.config.ScanInterval)
	defer ticker.Stop()

	// Run immediately on start, then on ticker
	w.RunOnce(ctx, time.Now().UTC())

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler worker shutting down")
			return
		case <-ticker.C:
			w.RunOnce(ctx, time.Now().UTC())
		}
	}
}

// RunOnce executes a single scheduler pass anchored at the given time.
func (w *Worker) RunOnce(ctx context.Context, now time.Time) {
	w.rollForward(ctx, now)
	w.generateFromTemplates(ctx, now)
	w.scanDueDateReminders(ctx, now)
	w.scanOverdueNotices(ctx, now)
}

// rollForward creates the next occurrence for recurring obligations whose
// generation date has passed, so the series keeps going even when the current
// occurrence was never completed.
func (w *Worker) rollForward(ctx context.Context, now time.Time) {
	due, err := w.obligationRepo.FindDueForGeneration(ctx, now)
	if err != nil {
		slog.Error("Failed to load obligations due for generation", "error", err)
		return
	}

	for _, o := range due {
		if !o.IsRecurring() {
			continue
		}

		logger := slog.With("obligation_id", o.ID, "name", o.Name)

		nextDue, err := schedule.NextOccurrence(*o.Recurrence, o.DueDate, w.calendar)
		if err != nil {
			logger.Error("Failed to compute next occurrence", "error", err)
			continue
		}

		next := o.NextOfSeries(nextDue, systemEditor)
		nextGeneration := nextDue
		next.NextGenerationAt = &nextGeneration

		if err := w.obligationRepo.Create(ctx, next); err != nil {
			logger.Error("Failed to create next occurrence", "error", err)
			continue
		}

		// The series handle moves to the new occurrence.
		o.NextGenerationAt = nil
		if err := w.obligationRepo.Update(ctx, o); err != nil {
			logger.Error("Failed to clear generation date", "error", err)
			continue
		}

		logger.Info("Rolled obligation forward", "next_due", nextDue.Format("2006-01-02"))
	}
}

// generateFromTemplates materializes obligations from active tax templates.
func (w *Worker) generateFromTemplates(ctx context.Context, now time.Time) {
	output, err := w.generateUseCase.Execute(ctx, tax.GenerateObligationsInput{
		Now:    now,
		Editor: systemEditor,
	})
	if err != nil {
		slog.Error("Failed to generate obligations from templates", "error", err)
		return
	}

	if len(output.Generated) > 0 {
		slog.Info("Generated obligations from templates",
			"generated", len(output.Generated),
			"skipped", output.Skipped,
		)
	}
}

// scanDueDateReminders queues a reminder for every open obligation entering
// the reminder window. The queue check keeps repeated scans idempotent.
func (w *Worker) scanDueDateReminders(ctx context.Context, now time.Time) {
	from := startOfDay(now)
	to := from.AddDate(0, 0, w.config.ReminderWindowDays)

	open, err := w.obligationRepo.FindOpenDueWithin(ctx, from, to)
	if err != nil {
		slog.Error("Failed to scan reminder window", "error", err)
		return
	}

	for _, o := range open {
		logger := slog.With("obligation_id", o.ID, "name", o.Name)

		exists, err := w.reminderQueue.ExistsForObligation(ctx, o.ID, entity.TemplateDueDateReminder)
		if err != nil {
			logger.Error("Failed to check reminder queue", "error", err)
			continue
		}
		if exists {
			continue
		}

		email, name := w.recipientFor(ctx, o)
		if email == "" {
			continue
		}

		daysUntilDue := int(startOfDay(o.DueDate).Sub(from).Hours() / 24)

		err = w.reminderService.QueueDueDateReminder(ctx, adapter.QueueDueDateReminderInput{
			ObligationID:   o.ID.String(),
			ObligationName: o.Name,
			DueDate:        o.DueDate.Format("02/01/2006"),
			DaysUntilDue:   daysUntilDue,
			RecipientEmail: email,
			RecipientName:  name,
		})
		if err != nil {
			logger.Error("Failed to queue due date reminder", "error", err)
			continue
		}

		logger.Info("Queued due date reminder", "days_until_due", daysUntilDue)
	}
}

// scanOverdueNotices queues a notice for every open obligation past its due
// date, up to the configured grace period back.
func (w *Worker) scanOverdueNotices(ctx context.Context, now time.Time) {
	today := startOfDay(now)
	from := today.AddDate(0, 0, -w.config.OverdueGraceDays)
	to := today.AddDate(0, 0, -1)

	overdue, err := w.obligationRepo.FindOpenDueWithin(ctx, from, to)
	if err != nil {
		slog.Error("Failed to scan overdue window", "error", err)
		return
	}

	for _, o := range overdue {
		logger := slog.With("obligation_id", o.ID, "name", o.Name)

		exists, err := w.reminderQueue.ExistsForObligation(ctx, o.ID, entity.TemplateOverdueNotice)
		if err != nil {
			logger.Error("Failed to check reminder queue", "error", err)
			continue
		}
		if exists {
			continue
		}

		email, name := w.recipientFor(ctx, o)
		if email == "" {
			continue
		}

		daysOverdue := int(today.Sub(startOfDay(o.DueDate)).Hours() / 24)

		err = w.reminderService.QueueOverdueNotice(ctx, adapter.QueueOverdueNoticeInput{
			ObligationID:   o.ID.String(),
			ObligationName: o.Name,
			DueDate:        o.DueDate.Format("02/01/2006"),
			DaysOverdue:    daysOverdue,
			RecipientEmail: email,
			RecipientName:  name,
		})
		if err != nil {
			logger.Error("Failed to queue overdue notice", "error", err)
			continue
		}

		logger.Info("Queued overdue notice", "days_overdue", daysOverdue)
	}
}

// recipientFor resolves who should receive mail about the obligation: its
// responsible when one is assigned, the configured fallback otherwise.
func (w *Worker) recipientFor(ctx context.Context, o *entity.Obligation) (email, name string) {
	if o.ResponsibleRef != nil {
		responsible, err := w.responsibleRepo.FindByID(ctx, o.ResponsibleRef.ID)
		if err == nil && responsible != nil && responsible.Email != "" {
			return responsible.Email, responsible.Name
		}
	}
	return w.config.FallbackEmail, w.config.FallbackName
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
