// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiscal-tracker/backend/internal/application/usecase/suggestion"
	domainerror "github.com/fiscal-tracker/backend/internal/domain/error"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles AI classification endpoints.
type SuggestionController struct {
	startUseCase  *suggestion.StartSuggestionUseCase
	statusUseCase *suggestion.GetStatusUseCase
	clearUseCase  *suggestion.ClearSuggestionsUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(
	startUseCase *suggestion.StartSuggestionUseCase,
	statusUseCase *suggestion.GetStatusUseCase,
	clearUseCase *suggestion.ClearSuggestionsUseCase,
) *SuggestionController {
	return &SuggestionController{
		startUseCase:  startUseCase,
		statusUseCase: statusUseCase,
		clearUseCase:  clearUseCase,
	}
}

// Start handles POST /suggestions requests. It kicks off an asynchronous
// classification run for the submitted drafts.
func (c *SuggestionController) Start(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.StartSuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeNoDrafts),
		})
		return
	}

	input := suggestion.StartSuggestionInput{
		UserID: userID,
		Drafts: make([]suggestion.DraftInput, len(req.Drafts)),
	}
	for i, draft := range req.Drafts {
		input.Drafts[i] = suggestion.DraftInput{
			Name:        draft.Name,
			Description: draft.Description,
		}
	}

	output, err := c.startUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.StartSuggestionResponse{
		JobID:   output.JobID,
		Message: output.Message,
	})
}

// Status handles GET /suggestions/status requests.
func (c *SuggestionController) Status(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := suggestion.GetStatusInput{
		UserID: userID,
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve classification status",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionStatusResponse(output))
}

// Clear handles DELETE /suggestions requests.
func (c *SuggestionController) Clear(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := suggestion.ClearSuggestionsInput{
		UserID: userID,
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear suggestions",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSuggestionError handles suggestion errors and returns appropriate HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var suggestionErr *domainerror.SuggestionError
	if errors.As(err, &suggestionErr) {
		statusCode := c.getStatusCodeForSuggestionError(suggestionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: suggestionErr.Message,
			Code:  string(suggestionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSuggestionError maps suggestion error codes to HTTP status codes.
func (c *SuggestionController) getStatusCodeForSuggestionError(code domainerror.SuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSuggestionAlreadyProcessing:
		return http.StatusConflict
	case domainerror.ErrCodeNoDrafts:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
