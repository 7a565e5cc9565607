// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderStatus represents the status of a reminder job in the queue.
type ReminderStatus string

const (
	ReminderStatusPending    ReminderStatus = "pending"
	ReminderStatusProcessing ReminderStatus = "processing"
	ReminderStatusSent       ReminderStatus = "sent"
	ReminderStatusFailed     ReminderStatus = "failed"
)

// ReminderTemplateType represents the type of reminder template.
type ReminderTemplateType string

const (
	TemplateDueDateReminder ReminderTemplateType = "due_date_reminder"
	TemplateOverdueNotice   ReminderTemplateType = "overdue_notice"
	TemplatePasswordReset   ReminderTemplateType = "password_reset"
)

// ReminderJob represents a queued reminder email waiting to be sent.
type ReminderJob struct {
	ID             uuid.UUID
	ObligationID   *uuid.UUID // nil for non-obligation mail such as password resets
	TemplateType   ReminderTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         ReminderStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewReminderJob creates a new ReminderJob with default values.
func NewReminderJob(templateType ReminderTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *ReminderJob {
	now := time.Now().UTC()
	return &ReminderJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         ReminderStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the reminder job as currently being processed.
func (r *ReminderJob) MarkProcessing() {
	r.Status = ReminderStatusProcessing
}

// MarkSent marks the reminder job as successfully sent.
func (r *ReminderJob) MarkSent(providerID string) {
	r.Status = ReminderStatusSent
	r.ProviderID = providerID
	now := time.Now().UTC()
	r.ProcessedAt = &now
}

// MarkFailed marks the reminder job as failed and schedules a retry if attempts remain.
func (r *ReminderJob) MarkFailed(err error, permanent bool) {
	r.Attempts++
	r.LastError = err.Error()

	if permanent || r.Attempts >= r.MaxAttempts {
		r.Status = ReminderStatusFailed
		now := time.Now().UTC()
		r.ProcessedAt = &now
	} else {
		r.Status = ReminderStatusPending
		r.ScheduledAt = r.nextRetry()
	}
}

// nextRetry calculates the next retry time using exponential backoff.
// Retry delays: 0s (immediate), 1min, 5min
func (r *ReminderJob) nextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if r.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[r.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// CanRetry returns true if the reminder job can be retried.
func (r *ReminderJob) CanRetry() bool {
	return r.Attempts < r.MaxAttempts
}
