// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// ObligationKind represents the kind of fiscal obligation.
type ObligationKind string

const (
	ObligationKindTax         ObligationKind = "tax"
	ObligationKindInstallment ObligationKind = "installment"
	ObligationKindDeclaration ObligationKind = "declaration"
	ObligationKindDocument    ObligationKind = "document"
	ObligationKindOther       ObligationKind = "other"
)

// ValidObligationKind reports whether the kind is one of the known kinds.
func ValidObligationKind(kind ObligationKind) bool {
	switch kind {
	case ObligationKindTax, ObligationKindInstallment, ObligationKindDeclaration,
		ObligationKindDocument, ObligationKindOther:
		return true
	default:
		return false
	}
}

// EntityRef is a weak reference to a registry entity: the id plus a cached
// display name. Ownership stays with the registry; the holder only looks it up.
type EntityRef struct {
	ID   uuid.UUID
	Name string
}

// Obligation represents a fiscal duty (tax payment, filing, installment)
// with a due date, tracked for completion.
type Obligation struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Kind             ObligationKind
	DueDate          time.Time
	Completed        bool
	CompletedAt      *time.Time
	ClientRef        *EntityRef
	ResponsibleRef   *EntityRef
	Recurrence       *valueobject.RecurrenceRule // nil means one-off
	NextGenerationAt *time.Time                  // when the recurrence worker should roll this forward
	Active           bool
	LastEditor       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft-delete support
}

// NewObligation creates a new Obligation entity.
func NewObligation(
	name string,
	description string,
	kind ObligationKind,
	dueDate time.Time,
	clientRef *EntityRef,
	responsibleRef *EntityRef,
	recurrence *valueobject.RecurrenceRule,
	lastEditor string,
) *Obligation {
	now := time.Now().UTC()

	return &Obligation{
		ID:             uuid.New(),
		Name:           name,
		Description:    description,
		Kind:           kind,
		DueDate:        dueDate,
		ClientRef:      clientRef,
		ResponsibleRef: responsibleRef,
		Recurrence:     recurrence,
		Active:         true,
		LastEditor:     lastEditor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsRecurring reports whether the obligation carries a recurrence rule that
// produces further occurrences.
func (o *Obligation) IsRecurring() bool {
	return o.Recurrence != nil && o.Recurrence.Frequency.IsRecurring()
}

// MarkCompleted marks the obligation as completed at the given time.
func (o *Obligation) MarkCompleted(at time.Time) {
	o.Completed = true
	completedAt := at.UTC()
	o.CompletedAt = &completedAt
	o.UpdatedAt = time.Now().UTC()
}

// NextOfSeries returns a copy of the obligation set up as the next occurrence
// of its series, due on the given date.
func (o *Obligation) NextOfSeries(dueDate time.Time, editor string) *Obligation {
	next := NewObligation(
		o.Name,
		o.Description,
		o.Kind,
		dueDate,
		o.ClientRef,
		o.ResponsibleRef,
		o.Recurrence,
		editor,
	)
	return next
}
