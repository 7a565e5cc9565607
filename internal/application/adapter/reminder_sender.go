// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReminderService defines the interface for queueing reminder mail.
type ReminderService interface {
	// QueueDueDateReminder queues a due-date reminder for an obligation.
	QueueDueDateReminder(ctx context.Context, input QueueDueDateReminderInput) error

	// QueueOverdueNotice queues an overdue notice for an obligation past its due date.
	QueueOverdueNotice(ctx context.Context, input QueueOverdueNoticeInput) error

	// QueuePasswordResetEmail queues a password reset email.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error
}

// QueueOverdueNoticeInput represents the input for queueing an overdue notice.
type QueueOverdueNoticeInput struct {
	ObligationID   string
	ObligationName string
	DueDate        string
	DaysOverdue    int
	RecipientEmail string
	RecipientName  string
}

// QueueDueDateReminderInput represents the input for queueing a due-date reminder.
type QueueDueDateReminderInput struct {
	ObligationID   string
	ObligationName string
	DueDate        string
	DaysUntilDue   int
	RecipientEmail string
	RecipientName  string
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}
