// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiscal-tracker/backend/internal/application/usecase/installment"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
)

// InstallmentController handles installment plan endpoints.
type InstallmentController struct {
	listUseCase         *installment.ListPlansUseCase
	createUseCase       *installment.CreatePlanUseCase
	advanceUseCase      *installment.AdvanceInstallmentUseCase
	changeStatusUseCase *installment.ChangePlanStatusUseCase
	deleteUseCase       *installment.DeletePlanUseCase
}

// NewInstallmentController creates a new installment controller instance.
func NewInstallmentController(
	listUseCase *installment.ListPlansUseCase,
	createUseCase *installment.CreatePlanUseCase,
	advanceUseCase *installment.AdvanceInstallmentUseCase,
	changeStatusUseCase *installment.ChangePlanStatusUseCase,
	deleteUseCase *installment.DeletePlanUseCase,
) *InstallmentController {
	return &InstallmentController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		advanceUseCase:      advanceUseCase,
		changeStatusUseCase: changeStatusUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// List handles GET /installments requests.
func (c *InstallmentController) List(ctx *gin.Context) {
	input := installment.ListPlansInput{}
	if raw := ctx.Query("status"); raw != "" {
		status := entity.PlanStatus(raw)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve installment plans",
		})
		return
	}

	response := dto.ToPlanListResponse(output.Plans)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /installments requests.
func (c *InstallmentController) Create(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingInstallmentFields),
		})
		return
	}

	totalAmount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid total amount format",
			Code:  string(domainerror.ErrCodeInvalidTotalAmount),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingInstallmentFields),
		})
		return
	}

	input := installment.CreatePlanInput{
		Name:             req.Name,
		Description:      req.Description,
		TotalAmount:      totalAmount,
		InstallmentCount: req.InstallmentCount,
		StartDate:        startDate,
		Recurrence:       req.Recurrence.ToRecurrenceRule(),
		Notes:            req.Notes,
		Editor:           editorFromContext(ctx),
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	response := dto.ToPlanResponse(output.Plan)
	ctx.JSON(http.StatusCreated, response)
}

// Advance handles POST /installments/:id/advance requests. It registers
// payment of the current installment.
func (c *InstallmentController) Advance(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	input := installment.AdvanceInstallmentInput{
		ID:     planID,
		Editor: editorFromContext(ctx),
	}

	output, err := c.advanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	response := dto.ToPlanResponse(output.Plan)
	ctx.JSON(http.StatusOK, response)
}

// ChangeStatus handles PATCH /installments/:id/status requests.
func (c *InstallmentController) ChangeStatus(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	var req dto.ChangePlanStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidStatusTransition),
		})
		return
	}

	input := installment.ChangePlanStatusInput{
		ID:     planID,
		Status: entity.PlanStatus(req.Status),
		Editor: editorFromContext(ctx),
	}

	output, err := c.changeStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	response := dto.ToPlanResponse(output.Plan)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /installments/:id requests.
func (c *InstallmentController) Delete(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), installment.DeletePlanInput{ID: planID}); err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInstallmentError handles installment errors and returns appropriate HTTP responses.
func (c *InstallmentController) handleInstallmentError(ctx *gin.Context, err error) {
	var installmentErr *domainerror.InstallmentError
	if errors.As(err, &installmentErr) {
		statusCode := c.getStatusCodeForInstallmentError(installmentErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: installmentErr.Message,
			Code:  string(installmentErr.Code),
		})
		return
	}

	var registryErr *domainerror.RegistryError
	if errors.As(err, &registryErr) {
		ctx.JSON(getStatusCodeForRegistryError(registryErr.Code), dto.ErrorResponse{
			Error: registryErr.Message,
			Code:  string(registryErr.Code),
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

// getStatusCodeForInstallmentError maps installment error codes to HTTP status codes.
func (c *InstallmentController) getStatusCodeForInstallmentError(code domainerror.InstallmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInstallmentPlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePlanNotActive, domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTotalAmount,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeMissingInstallmentFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
