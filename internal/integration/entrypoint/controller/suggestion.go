// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/usecase/suggestion"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles AI habit suggestion endpoints.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestHabitsUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(suggestUseCase *suggestion.SuggestHabitsUseCase) *SuggestionController {
	return &SuggestionController{
		suggestUseCase: suggestUseCase,
	}
}

// Suggest handles POST /ai/habit-suggestions requests.
func (c *SuggestionController) Suggest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SuggestHabitsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeSuggestionGoalNotFound),
		})
		return
	}

	goalID, err := uuid.Parse(req.GoalID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeSuggestionGoalNotFound),
		})
		return
	}

	input := suggestion.SuggestHabitsInput{
		UserID: userID,
		GoalID: goalID,
		Count:  req.Count,
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestHabitsResponse(output.Suggestions))
}

// handleSuggestionError handles suggestion errors and returns
// appropriate HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var suggestionErr *domainerror.SuggestionError
	if errors.As(err, &suggestionErr) {
		statusCode := getStatusCodeForSuggestionError(suggestionErr.Code)
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

// getStatusCodeForSuggestionError maps suggestion error codes to HTTP
// status codes.
func getStatusCodeForSuggestionError(code domainerror.SuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSuggestionGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAIDisabled:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeAIRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeAIServiceError,
		domainerror.ErrCodeAIInvalidResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
