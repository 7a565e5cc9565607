// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/usecase/tax"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
)

// TaxController handles tax template endpoints.
type TaxController struct {
	listUseCase     *tax.ListTaxesUseCase
	createUseCase   *tax.CreateTaxUseCase
	updateUseCase   *tax.UpdateTaxUseCase
	deleteUseCase   *tax.DeleteTaxUseCase
	generateUseCase *tax.GenerateObligationsUseCase
}

// NewTaxController creates a new tax controller instance.
func NewTaxController(
	listUseCase *tax.ListTaxesUseCase,
	createUseCase *tax.CreateTaxUseCase,
	updateUseCase *tax.UpdateTaxUseCase,
	deleteUseCase *tax.DeleteTaxUseCase,
	generateUseCase *tax.GenerateObligationsUseCase,
) *TaxController {
	return &TaxController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		generateUseCase: generateUseCase,
	}
}

// List handles GET /taxes requests.
func (c *TaxController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve tax templates",
		})
		return
	}

	response := dto.ToTaxListResponse(output.Taxes)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /taxes requests.
func (c *TaxController) Create(ctx *gin.Context) {
	var req dto.CreateTaxRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	input := tax.CreateTaxInput{
		Name:              req.Name,
		Code:              req.Code,
		Description:       req.Description,
		Jurisdiction:      entity.Jurisdiction(req.Jurisdiction),
		Recurrence:        req.Recurrence.ToRecurrenceRule(),
		AdvanceNoticeDays: req.AdvanceNoticeDays,
		Editor:            editorFromContext(ctx),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	response := dto.ToTaxResponse(output.Tax)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /taxes/:id requests.
func (c *TaxController) Update(ctx *gin.Context) {
	taxID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tax ID format",
		})
		return
	}

	var req dto.UpdateTaxRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := tax.UpdateTaxInput{
		ID:                taxID,
		Name:              req.Name,
		Description:       req.Description,
		AdvanceNoticeDays: req.AdvanceNoticeDays,
		Active:            req.Active,
		Editor:            editorFromContext(ctx),
	}

	if req.Jurisdiction != nil {
		jurisdiction := entity.Jurisdiction(*req.Jurisdiction)
		input.Jurisdiction = &jurisdiction
	}
	if req.Recurrence != nil {
		rule := req.Recurrence.ToRecurrenceRule()
		input.Recurrence = &rule
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	response := dto.ToTaxResponse(output.Tax)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /taxes/:id requests.
func (c *TaxController) Delete(ctx *gin.Context) {
	taxID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tax ID format",
		})
		return
	}

	input := tax.DeleteTaxInput{
		ID: taxID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Generate handles POST /taxes/generate requests. It materializes obligations
// from active templates for their next occurrences.
func (c *TaxController) Generate(ctx *gin.Context) {
	input := tax.GenerateObligationsInput{
		Editor: editorFromContext(ctx),
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	response := dto.ToGenerateObligationsResponse(output.Generated, output.Skipped)
	ctx.JSON(http.StatusOK, response)
}

// handleTaxError handles tax errors and returns appropriate HTTP responses.
func (c *TaxController) handleTaxError(ctx *gin.Context, err error) {
	var taxErr *domainerror.TaxError
	if errors.As(err, &taxErr) {
		statusCode := c.getStatusCodeForTaxError(taxErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taxErr.Message,
			Code:  string(taxErr.Code),
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

// getStatusCodeForTaxError maps tax error codes to HTTP status codes.
func (c *TaxController) getStatusCodeForTaxError(code domainerror.TaxErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaxNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTaxCodeAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidJurisdiction,
		domainerror.ErrCodeInvalidAdvanceNotice,
		domainerror.ErrCodeMissingTaxFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeTaxInactive:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
