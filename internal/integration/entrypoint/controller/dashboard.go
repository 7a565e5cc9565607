// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiscal-tracker/backend/internal/application/usecase/dashboard"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard panel endpoints.
type DashboardController struct {
	statisticsUseCase  *dashboard.GetStatisticsUseCase
	upcomingUseCase    *dashboard.GetUpcomingUseCase
	kindSummaryUseCase *dashboard.GetKindSummaryUseCase
	calendarUseCase    *dashboard.GetCalendarUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	statisticsUseCase *dashboard.GetStatisticsUseCase,
	upcomingUseCase *dashboard.GetUpcomingUseCase,
	kindSummaryUseCase *dashboard.GetKindSummaryUseCase,
	calendarUseCase *dashboard.GetCalendarUseCase,
) *DashboardController {
	return &DashboardController{
		statisticsUseCase:  statisticsUseCase,
		upcomingUseCase:    upcomingUseCase,
		kindSummaryUseCase: kindSummaryUseCase,
		calendarUseCase:    calendarUseCase,
	}
}

// Statistics handles GET /dashboard/statistics requests.
func (c *DashboardController) Statistics(ctx *gin.Context) {
	filter, err := parseObligationFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid filter: " + err.Error(),
		})
		return
	}

	input := dashboard.GetStatisticsInput{
		Filter: filter,
	}

	output, err := c.statisticsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute statistics",
		})
		return
	}

	response := dto.ToStatisticsResponse(output.Statistics)
	ctx.JSON(http.StatusOK, response)
}

// Upcoming handles GET /dashboard/upcoming requests.
func (c *DashboardController) Upcoming(ctx *gin.Context) {
	filter, err := parseObligationFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid filter: " + err.Error(),
		})
		return
	}

	input := dashboard.GetUpcomingInput{
		Filter: filter,
	}

	if raw := ctx.Query("within_days"); raw != "" {
		withinDays, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid within_days value",
			})
			return
		}
		input.WithinDays = withinDays
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit value",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.upcomingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute upcoming obligations",
		})
		return
	}

	response := dto.ToUpcomingResponse(output.Entries)
	ctx.JSON(http.StatusOK, response)
}

// KindSummary handles GET /dashboard/kinds requests.
func (c *DashboardController) KindSummary(ctx *gin.Context) {
	filter, err := parseObligationFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid filter: " + err.Error(),
		})
		return
	}

	input := dashboard.GetKindSummaryInput{
		Filter: filter,
	}

	output, err := c.kindSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute kind summary",
		})
		return
	}

	response := dto.ToKindSummaryResponse(output.Summary)
	ctx.JSON(http.StatusOK, response)
}

// Calendar handles GET /dashboard/calendar requests. Defaults to the
// current month when year and month are omitted.
func (c *DashboardController) Calendar(ctx *gin.Context) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year value",
			})
			return
		}
		year = parsed
	}
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month value",
			})
			return
		}
		month = time.Month(parsed)
	}

	input := dashboard.GetCalendarInput{
		Year:  year,
		Month: month,
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute calendar",
		})
		return
	}

	response := dto.ToCalendarResponse(output.Days)
	ctx.JSON(http.StatusOK, response)
}
