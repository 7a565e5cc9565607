// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/usecase/responsible"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
)

// ResponsibleController handles responsible registry endpoints.
type ResponsibleController struct {
	listUseCase   *responsible.ListResponsiblesUseCase
	createUseCase *responsible.CreateResponsibleUseCase
	updateUseCase *responsible.UpdateResponsibleUseCase
	deleteUseCase *responsible.DeleteResponsibleUseCase
}

// NewResponsibleController creates a new responsible controller instance.
func NewResponsibleController(
	listUseCase *responsible.ListResponsiblesUseCase,
	createUseCase *responsible.CreateResponsibleUseCase,
	updateUseCase *responsible.UpdateResponsibleUseCase,
	deleteUseCase *responsible.DeleteResponsibleUseCase,
) *ResponsibleController {
	return &ResponsibleController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /responsibles requests.
func (c *ResponsibleController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve responsibles",
		})
		return
	}

	response := dto.ToResponsibleListResponse(output.Responsibles)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /responsibles requests.
func (c *ResponsibleController) Create(ctx *gin.Context) {
	var req dto.CreateResponsibleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRegistryName),
		})
		return
	}

	input := responsible.CreateResponsibleInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRegistryError(ctx, err)
		return
	}

	response := dto.ToResponsibleResponse(output.Responsible)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /responsibles/:id requests.
func (c *ResponsibleController) Update(ctx *gin.Context) {
	responsibleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid responsible ID format",
		})
		return
	}

	var req dto.UpdateResponsibleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := responsible.UpdateResponsibleInput{
		ID:     responsibleID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Active: req.Active,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRegistryError(ctx, err)
		return
	}

	response := dto.ToResponsibleResponse(output.Responsible)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /responsibles/:id requests.
func (c *ResponsibleController) Delete(ctx *gin.Context) {
	responsibleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid responsible ID format",
		})
		return
	}

	input := responsible.DeleteResponsibleInput{
		ID: responsibleID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleRegistryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRegistryError handles registry errors and returns appropriate HTTP responses.
func (c *ResponsibleController) handleRegistryError(ctx *gin.Context, err error) {
	var registryErr *domainerror.RegistryError
	if errors.As(err, &registryErr) {
		statusCode := getStatusCodeForRegistryError(registryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: registryErr.Message,
			Code:  string(registryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
