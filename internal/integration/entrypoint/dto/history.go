// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fiscal-tracker/backend/internal/domain/entity"
)

// ChangeRecordResponse represents an audit trail entry in API responses.
type ChangeRecordResponse struct {
	ID            string    `json:"id"`
	ObligationID  string    `json:"obligation_id"`
	Field         string    `json:"field"`
	PreviousValue string    `json:"previous_value,omitempty"`
	NewValue      string    `json:"new_value,omitempty"`
	Editor        string    `json:"editor"`
	EditorIP      string    `json:"editor_ip,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// ChangeRecordListResponse represents the response for listing change records.
type ChangeRecordListResponse struct {
	Records []ChangeRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}

// ToChangeRecordResponse converts a domain ChangeRecord entity to its response DTO.
func ToChangeRecordResponse(record *entity.ChangeRecord) ChangeRecordResponse {
	return ChangeRecordResponse{
		ID:            record.ID.String(),
		ObligationID:  record.ObligationID.String(),
		Field:         record.Field,
		PreviousValue: record.PreviousValue,
		NewValue:      record.NewValue,
		Editor:        record.Editor,
		EditorIP:      record.EditorIP,
		Tags:          record.Tags,
		Notes:         record.Notes,
		RecordedAt:    record.RecordedAt,
	}
}

// ToChangeRecordListResponse converts a list of change records to the list response.
func ToChangeRecordListResponse(records []*entity.ChangeRecord) ChangeRecordListResponse {
	items := make([]ChangeRecordResponse, len(records))
	for i, record := range records {
		items[i] = ToChangeRecordResponse(record)
	}
	return ChangeRecordListResponse{Records: items, Total: len(items)}
}
