// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fiscal-tracker/backend/internal/application/usecase/dashboard"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
)

// StatisticsResponse represents the urgency tier counters of the dashboard.
type StatisticsResponse struct {
	Total     int `json:"total"`
	Overdue   int `json:"overdue"`
	Critical  int `json:"critical"`
	Urgent    int `json:"urgent"`
	Attention int `json:"attention"`
	Normal    int `json:"normal"`
	Completed int `json:"completed"`
}

// UpcomingResponse represents the upcoming-obligations panel.
type UpcomingResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
	Total       int                  `json:"total"`
}

// KindCountResponse summarizes obligations of one kind.
type KindCountResponse struct {
	Count          int `json:"count"`
	CompletedCount int `json:"completed_count"`
}

// KindSummaryResponse represents the kind-distribution panel, keyed by kind.
type KindSummaryResponse struct {
	Summary map[string]KindCountResponse `json:"summary"`
}

// CalendarDayResponse groups the obligations due on one day of the month.
type CalendarDayResponse struct {
	Date        string               `json:"date"`
	Obligations []ObligationResponse `json:"obligations"`
}

// CalendarResponse represents the month calendar view.
type CalendarResponse struct {
	Days []CalendarDayResponse `json:"days"`
}

// ToStatisticsResponse converts urgency statistics to the response DTO.
func ToStatisticsResponse(stats schedule.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Total:     stats.Total,
		Overdue:   stats.Overdue,
		Critical:  stats.Critical,
		Urgent:    stats.Urgent,
		Attention: stats.Attention,
		Normal:    stats.Normal,
		Completed: stats.Completed,
	}
}

// ToUpcomingResponse converts upcoming entries to the response DTO.
func ToUpcomingResponse(entries []*dashboard.UpcomingEntry) UpcomingResponse {
	obligations := make([]ObligationResponse, len(entries))
	for i, entry := range entries {
		obligations[i] = toClassifiedObligationResponse(entry)
	}
	return UpcomingResponse{Obligations: obligations, Total: len(obligations)}
}

// ToKindSummaryResponse converts the kind summary to the response DTO.
func ToKindSummaryResponse(summary map[entity.ObligationKind]schedule.KindCount) KindSummaryResponse {
	out := make(map[string]KindCountResponse, len(summary))
	for kind, count := range summary {
		out[string(kind)] = KindCountResponse{
			Count:          count.Count,
			CompletedCount: count.CompletedCount,
		}
	}
	return KindSummaryResponse{Summary: out}
}

// ToCalendarResponse converts the month calendar to the response DTO.
func ToCalendarResponse(days []*dashboard.CalendarDay) CalendarResponse {
	out := make([]CalendarDayResponse, len(days))
	for i, day := range days {
		obligations := make([]ObligationResponse, len(day.Obligations))
		for j, entry := range day.Obligations {
			obligations[j] = toClassifiedObligationResponse(entry)
		}
		out[i] = CalendarDayResponse{
			Date:        day.Date.Format("2006-01-02"),
			Obligations: obligations,
		}
	}
	return CalendarResponse{Days: out}
}

func toClassifiedObligationResponse(entry *dashboard.UpcomingEntry) ObligationResponse {
	response := ToObligationResponse(entry.Obligation)
	days := entry.Classification.DaysUntilDue
	response.DaysUntilDue = &days
	response.Urgency = string(entry.Classification.Tier)
	return response
}
