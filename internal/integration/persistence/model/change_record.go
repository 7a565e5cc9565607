// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// ChangeRecordModel represents the change_records table in the database.
// Records are append-only; there is no update or delete path.
type ChangeRecordModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ObligationID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Field         string         `gorm:"type:varchar(50);not null"`
	PreviousValue string         `gorm:"type:text"`
	NewValue      string         `gorm:"type:text"`
	Editor        string         `gorm:"type:varchar(100);not null"`
	EditorIP      string         `gorm:"type:varchar(45)"`
	Tags          pq.StringArray `gorm:"type:text[]"`
	Notes         string         `gorm:"type:text"`
	RecordedAt    time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the ChangeRecordModel.
func (ChangeRecordModel) TableName() string {
	return "change_records"
}

// ToEntity converts a ChangeRecordModel to a domain ChangeRecord entity.
func (m *ChangeRecordModel) ToEntity() *entity.ChangeRecord {
	return &entity.ChangeRecord{
		ID:            m.ID,
		ObligationID:  m.ObligationID,
		Field:         m.Field,
		PreviousValue: m.PreviousValue,
		NewValue:      m.NewValue,
		Editor:        m.Editor,
		EditorIP:      m.EditorIP,
		Tags:          []string(m.Tags),
		Notes:         m.Notes,
		RecordedAt:    m.RecordedAt,
	}
}

// ChangeRecordFromEntity creates a ChangeRecordModel from a domain ChangeRecord entity.
func ChangeRecordFromEntity(r *entity.ChangeRecord) *ChangeRecordModel {
	return &ChangeRecordModel{
		ID:            r.ID,
		ObligationID:  r.ObligationID,
		Field:         r.Field,
		PreviousValue: r.PreviousValue,
		NewValue:      r.NewValue,
		Editor:        r.Editor,
		EditorIP:      r.EditorIP,
		Tags:          pq.StringArray(r.Tags),
		Notes:         r.Notes,
		RecordedAt:    r.RecordedAt,
	}
}
