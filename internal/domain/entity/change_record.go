// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChangeRecord is a field-level audit entry for an obligation edit.
// Records are append-only; obligations are never hard-deleted while
// change records reference them.
type ChangeRecord struct {
	ID            uuid.UUID
	ObligationID  uuid.UUID
	Field         string
	PreviousValue string
	NewValue      string
	Editor        string
	EditorIP      string
	Tags          []string
	Notes         string
	RecordedAt    time.Time
}

// NewChangeRecord creates a new ChangeRecord entity.
func NewChangeRecord(obligationID uuid.UUID, field, previousValue, newValue, editor, editorIP string) *ChangeRecord {
	return &ChangeRecord{
		ID:            uuid.New(),
		ObligationID:  obligationID,
		Field:         field,
		PreviousValue: previousValue,
		NewValue:      newValue,
		Editor:        editor,
		EditorIP:      editorIP,
		RecordedAt:    time.Now().UTC(),
	}
}
