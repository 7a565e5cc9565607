// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/usecase/history"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
)

// HistoryController handles audit trail endpoints.
type HistoryController struct {
	listUseCase *history.ListChangesUseCase
}

// NewHistoryController creates a new history controller instance.
func NewHistoryController(listUseCase *history.ListChangesUseCase) *HistoryController {
	return &HistoryController{listUseCase: listUseCase}
}

// List handles GET /history requests. An obligation_id query parameter
// narrows the trail to one obligation.
func (c *HistoryController) List(ctx *gin.Context) {
	input := history.ListChangesInput{}

	if raw := ctx.Query("obligation_id"); raw != "" {
		obligationID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid obligation ID format",
			})
			return
		}
		input.ObligationID = &obligationID
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve change history",
		})
		return
	}

	response := dto.ToChangeRecordListResponse(output.Records)
	ctx.JSON(http.StatusOK, response)
}
