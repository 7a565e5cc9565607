// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/usecase/client"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client registry endpoints.
type ClientController struct {
	listUseCase   *client.ListClientsUseCase
	createUseCase *client.CreateClientUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listUseCase *client.ListClientsUseCase,
	createUseCase *client.CreateClientUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve clients",
		})
		return
	}

	response := dto.ToClientListResponse(output.Clients)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRegistryName),
		})
		return
	}

	input := client.CreateClientInput{
		Name:  req.Name,
		TaxID: req.TaxID,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRegistryError(ctx, err)
		return
	}

	response := dto.ToClientResponse(output.Client)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := client.UpdateClientInput{
		ID:     clientID,
		Name:   req.Name,
		TaxID:  req.TaxID,
		Email:  req.Email,
		Phone:  req.Phone,
		Notes:  req.Notes,
		Active: req.Active,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRegistryError(ctx, err)
		return
	}

	response := dto.ToClientResponse(output.Client)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	input := client.DeleteClientInput{
		ID: clientID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleRegistryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRegistryError handles registry errors and returns appropriate HTTP responses.
func (c *ClientController) handleRegistryError(ctx *gin.Context, err error) {
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

// getStatusCodeForRegistryError maps registry error codes to HTTP status codes.
func getStatusCodeForRegistryError(code domainerror.RegistryErrorCode) int {
	switch code {
	case domainerror.ErrCodeClientNotFound, domainerror.ErrCodeResponsibleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeClientStillReferenced, domainerror.ErrCodeResponsibleStillReferenced:
		return http.StatusConflict
	case domainerror.ErrCodeMissingRegistryName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
