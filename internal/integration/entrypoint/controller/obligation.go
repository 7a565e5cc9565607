// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/usecase/obligation"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/domain/schedule"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/middleware"
)

// ObligationController handles obligation endpoints.
type ObligationController struct {
	listUseCase     *obligation.ListObligationsUseCase
	createUseCase   *obligation.CreateObligationUseCase
	getUseCase      *obligation.GetObligationUseCase
	updateUseCase   *obligation.UpdateObligationUseCase
	completeUseCase *obligation.CompleteObligationUseCase
	deleteUseCase   *obligation.DeleteObligationUseCase
}

// NewObligationController creates a new obligation controller instance.
func NewObligationController(
	listUseCase *obligation.ListObligationsUseCase,
	createUseCase *obligation.CreateObligationUseCase,
	getUseCase *obligation.GetObligationUseCase,
	updateUseCase *obligation.UpdateObligationUseCase,
	completeUseCase *obligation.CompleteObligationUseCase,
	deleteUseCase *obligation.DeleteObligationUseCase,
) *ObligationController {
	return &ObligationController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		completeUseCase: completeUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /obligations requests.
func (c *ObligationController) List(ctx *gin.Context) {
	filter, err := parseObligationFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid filter: " + err.Error(),
		})
		return
	}

	input := obligation.ListObligationsInput{
		Filter: filter,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve obligations",
		})
		return
	}

	response := dto.ToObligationListResponse(output.Obligations)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /obligations requests.
func (c *ObligationController) Create(ctx *gin.Context) {
	var req dto.CreateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingObligationFields),
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingDueDate),
		})
		return
	}

	input := obligation.CreateObligationInput{
		Name:        req.Name,
		Description: req.Description,
		Kind:        entity.ObligationKind(req.Kind),
		DueDate:     dueDate,
		Editor:      editorFromContext(ctx),
	}

	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid client ID format",
			})
			return
		}
		input.ClientID = &clientID
	}
	if req.ResponsibleID != nil {
		responsibleID, err := uuid.Parse(*req.ResponsibleID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid responsible ID format",
			})
			return
		}
		input.ResponsibleID = &responsibleID
	}
	if req.Recurrence != nil {
		rule := req.Recurrence.ToRecurrenceRule()
		input.Recurrence = &rule
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	response := dto.ToObligationResponse(output.Obligation)
	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /obligations/:id requests.
func (c *ObligationController) Get(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	input := obligation.GetObligationInput{
		ID: obligationID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	response := dto.ToObligationWithStatusResponse(output.Obligation)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /obligations/:id requests.
func (c *ObligationController) Update(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	var req dto.UpdateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := obligation.UpdateObligationInput{
		ID:          obligationID,
		Name:        req.Name,
		Description: req.Description,
		Editor:      editorFromContext(ctx),
		EditorIP:    ctx.ClientIP(),
	}

	if req.Kind != nil {
		kind := entity.ObligationKind(*req.Kind)
		input.Kind = &kind
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingDueDate),
			})
			return
		}
		input.DueDate = &dueDate
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid client ID format",
			})
			return
		}
		input.ClientID = &clientID
	}
	if req.ResponsibleID != nil {
		responsibleID, err := uuid.Parse(*req.ResponsibleID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid responsible ID format",
			})
			return
		}
		input.ResponsibleID = &responsibleID
	}
	if req.Recurrence != nil {
		rule := req.Recurrence.ToRecurrenceRule()
		input.Recurrence = &rule
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	response := dto.ToObligationResponse(output.Obligation)
	ctx.JSON(http.StatusOK, response)
}

// Complete handles POST /obligations/:id/complete requests.
func (c *ObligationController) Complete(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	input := obligation.CompleteObligationInput{
		ID:     obligationID,
		Editor: editorFromContext(ctx),
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	response := dto.CompleteObligationResponse{
		Obligation: dto.ToObligationResponse(output.Obligation),
	}
	if output.NextOccurrence != nil {
		next := dto.ToObligationResponse(output.NextOccurrence)
		response.NextOccurrence = &next
	}
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /obligations/:id requests.
func (c *ObligationController) Delete(ctx *gin.Context) {
	obligationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid obligation ID format",
		})
		return
	}

	input := obligation.DeleteObligationInput{
		ID:     obligationID,
		Editor: editorFromContext(ctx),
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseObligationFilter builds a schedule.Filter from query parameters.
func parseObligationFilter(ctx *gin.Context) (schedule.Filter, error) {
	var filter schedule.Filter

	if raw := ctx.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.ClientID = &clientID
	}
	if raw := ctx.Query("responsible_id"); raw != "" {
		responsibleID, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.ResponsibleID = &responsibleID
	}
	if raw := ctx.Query("kind"); raw != "" {
		kind := entity.ObligationKind(raw)
		filter.Kind = &kind
	}
	if raw := ctx.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, err
		}
		filter.Completed = &completed
	}
	if raw := ctx.Query("date_from"); raw != "" {
		dateFrom, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &dateFrom
	}
	if raw := ctx.Query("date_to"); raw != "" {
		dateTo, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &dateTo
	}

	return filter, nil
}

// editorFromContext resolves the editor identity from the authenticated session.
func editorFromContext(ctx *gin.Context) string {
	if email, ok := middleware.GetUserEmailFromContext(ctx); ok {
		return email
	}
	return ""
}

// handleObligationError handles obligation errors and returns appropriate HTTP responses.
func (c *ObligationController) handleObligationError(ctx *gin.Context, err error) {
	var obligationErr *domainerror.ObligationError
	if errors.As(err, &obligationErr) {
		statusCode := c.getStatusCodeForObligationError(obligationErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: obligationErr.Message,
			Code:  string(obligationErr.Code),
		})
		return
	}

	var scheduleErr *domainerror.ScheduleError
	if errors.As(err, &scheduleErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: scheduleErr.Message,
			Code:  string(scheduleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForObligationError maps obligation error codes to HTTP status codes.
func (c *ObligationController) getStatusCodeForObligationError(code domainerror.ObligationErrorCode) int {
	switch code {
	case domainerror.ErrCodeObligationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeObligationAlreadyCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidObligationKind,
		domainerror.ErrCodeMissingDueDate,
		domainerror.ErrCodeMissingObligationFields,
		domainerror.ErrCodeObligationClientNotFound,
		domainerror.ErrCodeObligationResponsibleMissing:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
