// Package email provides reminder mail delivery via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
)

// Service handles reminder mail queueing operations.
type Service struct {
	queue      adapter.ReminderQueueRepository
	appBaseURL string
}

// NewService creates a new reminder mail service.
func NewService(queue adapter.ReminderQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueDueDateReminder queues a due-date reminder for an obligation.
func (s *Service) QueueDueDateReminder(ctx context.Context, input adapter.QueueDueDateReminderInput) error {
	subject := fmt.Sprintf("Vencimento em %d dias: %s - Fiscal Tracker", input.DaysUntilDue, input.ObligationName)
	if input.DaysUntilDue == 0 {
		subject = fmt.Sprintf("Vence hoje: %s - Fiscal Tracker", input.ObligationName)
	}

	templateData := map[string]interface{}{
		"obligation_name": input.ObligationName,
		"due_date":        input.DueDate,
		"days_until_due":  fmt.Sprintf("%d", input.DaysUntilDue),
		"obligation_url":  fmt.Sprintf("%s/obrigacoes/%s", s.appBaseURL, input.ObligationID),
	}

	job := entity.NewReminderJob(
		entity.TemplateDueDateReminder,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)
	if id, err := uuid.Parse(input.ObligationID); err == nil {
		job.ObligationID = &id
	}

	if err := s.queue.Enqueue(ctx, job); err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeQueueFailed,
			"failed to queue due date reminder",
			err,
		)
	}

	return nil
}

// QueueOverdueNotice queues an overdue notice for an obligation past its due date.
func (s *Service) QueueOverdueNotice(ctx context.Context, input adapter.QueueOverdueNoticeInput) error {
	subject := fmt.Sprintf("Obrigacao em atraso: %s - Fiscal Tracker", input.ObligationName)

	templateData := map[string]interface{}{
		"obligation_name": input.ObligationName,
		"due_date":        input.DueDate,
		"days_overdue":    fmt.Sprintf("%d", input.DaysOverdue),
		"obligation_url":  fmt.Sprintf("%s/obrigacoes/%s", s.appBaseURL, input.ObligationID),
	}

	job := entity.NewReminderJob(
		entity.TemplateOverdueNotice,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)
	if id, err := uuid.Parse(input.ObligationID); err == nil {
		job.ObligationID = &id
	}

	if err := s.queue.Enqueue(ctx, job); err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeQueueFailed,
			"failed to queue overdue notice",
			err,
		)
	}

	return nil
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Redefinir sua senha - Fiscal Tracker"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewReminderJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Enqueue(ctx, job); err != nil {
		return domainerror.NewReminderError(
			domainerror.ErrCodeQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.ReminderService.
var _ adapter.ReminderService = (*Service)(nil)
