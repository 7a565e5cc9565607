// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// InstallmentPlanModel represents the installment_plans table in the database.
type InstallmentPlanModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Description        string          `gorm:"type:text"`
	ClientID           *uuid.UUID      `gorm:"type:uuid;index"`
	ClientName         string          `gorm:"type:varchar(255)"`
	ResponsibleID      *uuid.UUID      `gorm:"type:uuid;index"`
	ResponsibleName    string          `gorm:"type:varchar(255)"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentCount   int             `gorm:"not null"`
	CurrentInstallment int             `gorm:"not null;default:1"`
	Status             string          `gorm:"type:varchar(20);not null;default:'active';index"`
	StartDate          time.Time       `gorm:"type:date;not null"`
	EndDate            *time.Time      `gorm:"type:date"`
	Frequency          string          `gorm:"type:varchar(20);not null"`
	AnchorDayOfMonth   int             `gorm:"not null;default:0"`
	AnchorMonth        int             `gorm:"not null;default:0"`
	CustomIntervalDays int             `gorm:"not null;default:0"`
	AdjustForWeekends  bool            `gorm:"not null;default:false"`
	AdjustForHolidays  bool            `gorm:"not null;default:false"`
	NextDueDate        *time.Time      `gorm:"type:date;index"`
	Notes              string          `gorm:"type:text"`
	Active             bool            `gorm:"not null;default:true"`
	LastEditor         string          `gorm:"type:varchar(100)"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the InstallmentPlanModel.
func (InstallmentPlanModel) TableName() string {
	return "installment_plans"
}

// ToEntity converts an InstallmentPlanModel to a domain InstallmentPlan entity.
func (m *InstallmentPlanModel) ToEntity() *entity.InstallmentPlan {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var clientRef *entity.EntityRef
	if m.ClientID != nil {
		clientRef = &entity.EntityRef{ID: *m.ClientID, Name: m.ClientName}
	}
	var responsibleRef *entity.EntityRef
	if m.ResponsibleID != nil {
		responsibleRef = &entity.EntityRef{ID: *m.ResponsibleID, Name: m.ResponsibleName}
	}

	return &entity.InstallmentPlan{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		ClientRef:          clientRef,
		ResponsibleRef:     responsibleRef,
		TotalAmount:        m.TotalAmount,
		InstallmentCount:   m.InstallmentCount,
		CurrentInstallment: m.CurrentInstallment,
		Status:             entity.PlanStatus(m.Status),
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		Recurrence: valueobject.RecurrenceRule{
			Frequency:          valueobject.Frequency(m.Frequency),
			AnchorDayOfMonth:   m.AnchorDayOfMonth,
			AnchorMonth:        m.AnchorMonth,
			CustomIntervalDays: m.CustomIntervalDays,
			AdjustForWeekends:  m.AdjustForWeekends,
			AdjustForHolidays:  m.AdjustForHolidays,
		},
		NextDueDate: m.NextDueDate,
		Notes:       m.Notes,
		Active:      m.Active,
		LastEditor:  m.LastEditor,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// InstallmentPlanFromEntity creates an InstallmentPlanModel from a domain InstallmentPlan entity.
func InstallmentPlanFromEntity(p *entity.InstallmentPlan) *InstallmentPlanModel {
	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	}

	m := &InstallmentPlanModel{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		TotalAmount:        p.TotalAmount,
		InstallmentCount:   p.InstallmentCount,
		CurrentInstallment: p.CurrentInstallment,
		Status:             string(p.Status),
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Frequency:          string(p.Recurrence.Frequency),
		AnchorDayOfMonth:   p.Recurrence.AnchorDayOfMonth,
		AnchorMonth:        p.Recurrence.AnchorMonth,
		CustomIntervalDays: p.Recurrence.CustomIntervalDays,
		AdjustForWeekends:  p.Recurrence.AdjustForWeekends,
		AdjustForHolidays:  p.Recurrence.AdjustForHolidays,
		NextDueDate:        p.NextDueDate,
		Notes:              p.Notes,
		Active:             p.Active,
		LastEditor:         p.LastEditor,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
		DeletedAt:          deletedAt,
	}

	if p.ClientRef != nil {
		clientID := p.ClientRef.ID
		m.ClientID = &clientID
		m.ClientName = p.ClientRef.Name
	}
	if p.ResponsibleRef != nil {
		responsibleID := p.ResponsibleRef.ID
		m.ResponsibleID = &responsibleID
		m.ResponsibleName = p.ResponsibleRef.Name
	}

	return m
}
