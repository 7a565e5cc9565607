// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// Jurisdiction represents the sphere a tax belongs to.
type Jurisdiction string

const (
	JurisdictionFederal      Jurisdiction = "federal"
	JurisdictionState        Jurisdiction = "state"
	JurisdictionMunicipal    Jurisdiction = "municipal"
	JurisdictionContribution Jurisdiction = "contribution"
	JurisdictionFee          Jurisdiction = "fee"
	JurisdictionOther        Jurisdiction = "other"
)

// ValidJurisdiction reports whether the jurisdiction is one of the known values.
func ValidJurisdiction(j Jurisdiction) bool {
	switch j {
	case JurisdictionFederal, JurisdictionState, JurisdictionMunicipal,
		JurisdictionContribution, JurisdictionFee, JurisdictionOther:
		return true
	default:
		return false
	}
}

// Tax is a configuration template for a recurring tax, not an individual
// obligation instance. Obligations are generated from active templates.
type Tax struct {
	ID                uuid.UUID
	Name              string
	Code              string
	Description       string
	Jurisdiction      Jurisdiction
	Recurrence        valueobject.RecurrenceRule
	AdvanceNoticeDays int // 1-30, how long before the due date reminders fire
	Active            bool
	LastEditor        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support
}

// NewTax creates a new Tax template entity.
func NewTax(
	name string,
	code string,
	description string,
	jurisdiction Jurisdiction,
	recurrence valueobject.RecurrenceRule,
	advanceNoticeDays int,
	lastEditor string,
) *Tax {
	now := time.Now().UTC()

	return &Tax{
		ID:                uuid.New(),
		Name:              name,
		Code:              code,
		Description:       description,
		Jurisdiction:      jurisdiction,
		Recurrence:        recurrence,
		AdvanceNoticeDays: advanceNoticeDays,
		Active:            true,
		LastEditor:        lastEditor,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
