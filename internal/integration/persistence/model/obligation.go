// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// ObligationModel represents the obligations table in the database.
// The recurrence rule is stored flattened; a NULL frequency means one-off.
type ObligationModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"type:varchar(255);not null;index"`
	Description        string         `gorm:"type:text"`
	Kind               string         `gorm:"type:varchar(20);not null;index"`
	DueDate            time.Time      `gorm:"type:date;not null;index"`
	Completed          bool           `gorm:"not null;default:false;index"`
	CompletedAt        *time.Time     `gorm:"type:timestamptz"`
	ClientID           *uuid.UUID     `gorm:"type:uuid;index"`
	ClientName         string         `gorm:"type:varchar(255)"`
	ResponsibleID      *uuid.UUID     `gorm:"type:uuid;index"`
	ResponsibleName    string         `gorm:"type:varchar(255)"`
	Frequency          string         `gorm:"type:varchar(20)"`
	AnchorDayOfMonth   int            `gorm:"not null;default:0"`
	AnchorMonth        int            `gorm:"not null;default:0"`
	CustomIntervalDays int            `gorm:"not null;default:0"`
	AdjustForWeekends  bool           `gorm:"not null;default:false"`
	AdjustForHolidays  bool           `gorm:"not null;default:false"`
	NextGenerationAt   *time.Time     `gorm:"type:date;index"`
	Active             bool           `gorm:"not null;default:true"`
	LastEditor         string         `gorm:"type:varchar(100)"`
	CreatedAt          time.Time      `gorm:"not null"`
	UpdatedAt          time.Time      `gorm:"not null"`
	DeletedAt          gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ObligationModel.
func (ObligationModel) TableName() string {
	return "obligations"
}

// ToEntity converts an ObligationModel to a domain Obligation entity.
func (m *ObligationModel) ToEntity() *entity.Obligation {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var recurrence *valueobject.RecurrenceRule
	if m.Frequency != "" {
		recurrence = &valueobject.RecurrenceRule{
			Frequency:          valueobject.Frequency(m.Frequency),
			AnchorDayOfMonth:   m.AnchorDayOfMonth,
			AnchorMonth:        m.AnchorMonth,
			CustomIntervalDays: m.CustomIntervalDays,
			AdjustForWeekends:  m.AdjustForWeekends,
			AdjustForHolidays:  m.AdjustForHolidays,
		}
	}

	var clientRef *entity.EntityRef
	if m.ClientID != nil {
		clientRef = &entity.EntityRef{ID: *m.ClientID, Name: m.ClientName}
	}
	var responsibleRef *entity.EntityRef
	if m.ResponsibleID != nil {
		responsibleRef = &entity.EntityRef{ID: *m.ResponsibleID, Name: m.ResponsibleName}
	}

	return &entity.Obligation{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Kind:             entity.ObligationKind(m.Kind),
		DueDate:          m.DueDate,
		Completed:        m.Completed,
		CompletedAt:      m.CompletedAt,
		ClientRef:        clientRef,
		ResponsibleRef:   responsibleRef,
		Recurrence:       recurrence,
		NextGenerationAt: m.NextGenerationAt,
		Active:           m.Active,
		LastEditor:       m.LastEditor,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}

// ObligationFromEntity creates an ObligationModel from a domain Obligation entity.
func ObligationFromEntity(o *entity.Obligation) *ObligationModel {
	var deletedAt gorm.DeletedAt
	if o.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *o.DeletedAt, Valid: true}
	}

	m := &ObligationModel{
		ID:               o.ID,
		Name:             o.Name,
		Description:      o.Description,
		Kind:             string(o.Kind),
		DueDate:          o.DueDate,
		Completed:        o.Completed,
		CompletedAt:      o.CompletedAt,
		NextGenerationAt: o.NextGenerationAt,
		Active:           o.Active,
		LastEditor:       o.LastEditor,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		DeletedAt:        deletedAt,
	}

	if o.ClientRef != nil {
		clientID := o.ClientRef.ID
		m.ClientID = &clientID
		m.ClientName = o.ClientRef.Name
	}
	if o.ResponsibleRef != nil {
		responsibleID := o.ResponsibleRef.ID
		m.ResponsibleID = &responsibleID
		m.ResponsibleName = o.ResponsibleRef.Name
	}
	if o.Recurrence != nil {
		m.Frequency = string(o.Recurrence.Frequency)
		m.AnchorDayOfMonth = o.Recurrence.AnchorDayOfMonth
		m.AnchorMonth = o.Recurrence.AnchorMonth
		m.CustomIntervalDays = o.Recurrence.CustomIntervalDays
		m.AdjustForWeekends = o.Recurrence.AdjustForWeekends
		m.AdjustForHolidays = o.Recurrence.AdjustForHolidays
	}

	return m
}
