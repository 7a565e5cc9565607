// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// TaxModel represents the taxes table in the database.
type TaxModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"type:varchar(255);not null"`
	Code               string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description        string         `gorm:"type:text"`
	Jurisdiction       string         `gorm:"type:varchar(20);not null;index"`
	Frequency          string         `gorm:"type:varchar(20);not null"`
	AnchorDayOfMonth   int            `gorm:"not null;default:0"`
	AnchorMonth        int            `gorm:"not null;default:0"`
	CustomIntervalDays int            `gorm:"not null;default:0"`
	AdjustForWeekends  bool           `gorm:"not null;default:false"`
	AdjustForHolidays  bool           `gorm:"not null;default:false"`
	AdvanceNoticeDays  int            `gorm:"not null;default:7"`
	Active             bool           `gorm:"not null;default:true;index"`
	LastEditor         string         `gorm:"type:varchar(100)"`
	CreatedAt          time.Time      `gorm:"not null"`
	UpdatedAt          time.Time      `gorm:"not null"`
	DeletedAt          gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TaxModel.
func (TaxModel) TableName() string {
	return "taxes"
}

// ToEntity converts a TaxModel to a domain Tax entity.
func (m *TaxModel) ToEntity() *entity.Tax {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Tax{
		ID:           m.ID,
		Name:         m.Name,
		Code:         m.Code,
		Description:  m.Description,
		Jurisdiction: entity.Jurisdiction(m.Jurisdiction),
		Recurrence: valueobject.RecurrenceRule{
			Frequency:          valueobject.Frequency(m.Frequency),
			AnchorDayOfMonth:   m.AnchorDayOfMonth,
			AnchorMonth:        m.AnchorMonth,
			CustomIntervalDays: m.CustomIntervalDays,
			AdjustForWeekends:  m.AdjustForWeekends,
			AdjustForHolidays:  m.AdjustForHolidays,
		},
		AdvanceNoticeDays: m.AdvanceNoticeDays,
		Active:            m.Active,
		LastEditor:        m.LastEditor,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// TaxFromEntity creates a TaxModel from a domain Tax entity.
func TaxFromEntity(t *entity.Tax) *TaxModel {
	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	}

	return &TaxModel{
		ID:                 t.ID,
		Name:               t.Name,
		Code:               t.Code,
		Description:        t.Description,
		Jurisdiction:       string(t.Jurisdiction),
		Frequency:          string(t.Recurrence.Frequency),
		AnchorDayOfMonth:   t.Recurrence.AnchorDayOfMonth,
		AnchorMonth:        t.Recurrence.AnchorMonth,
		CustomIntervalDays: t.Recurrence.CustomIntervalDays,
		AdjustForWeekends:  t.Recurrence.AdjustForWeekends,
		AdjustForHolidays:  t.Recurrence.AdjustForHolidays,
		AdvanceNoticeDays:  t.AdvanceNoticeDays,
		Active:             t.Active,
		LastEditor:         t.LastEditor,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}
