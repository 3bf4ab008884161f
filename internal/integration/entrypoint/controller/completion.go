// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/usecase/completion"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// CompletionController handles habit completion endpoints.
type CompletionController struct {
	toggleUseCase *completion.ToggleCompletionUseCase
	listUseCase   *completion.ListCompletionsUseCase
}

// NewCompletionController creates a new completion controller instance.
func NewCompletionController(
	toggleUseCase *completion.ToggleCompletionUseCase,
	listUseCase *completion.ListCompletionsUseCase,
) *CompletionController {
	return &CompletionController{
		toggleUseCase: toggleUseCase,
		listUseCase:   listUseCase,
	}
}

// Toggle handles POST /habits/:id/toggle requests.
func (c *CompletionController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	// An empty body toggles today.
	var req dto.ToggleCompletionRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
				Code:  string(domainerror.ErrCodeInvalidCompletionDate),
			})
			return
		}
	}

	date, ok := dto.ParseDate(req.Date)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidCompletionDate),
		})
		return
	}

	input := completion.ToggleCompletionInput{
		HabitID: habitID,
		UserID:  userID,
		Date:    date,
		Note:    req.Note,
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCompletionError(ctx, err)
		return
	}

	response := dto.ToggleCompletionResponse{
		Completed: output.Completed,
		Date:      output.Date.Format("2006-01-02"),
	}
	if output.Completion != nil {
		completionResp := dto.ToCompletionResponse(output.Completion)
		response.Completion = &completionResp
	}

	ctx.JSON(http.StatusOK, response)
}

// List handles GET /habits/:id/completions requests. Supports ?days=
// to bound the history window.
func (c *CompletionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	days := 0
	if daysParam := ctx.Query("days"); daysParam != "" {
		days, err = strconv.Atoi(daysParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid days parameter",
				Code:  string(domainerror.ErrCodeInvalidHistoryDays),
			})
			return
		}
	}

	input := completion.ListCompletionsInput{
		HabitID: habitID,
		UserID:  userID,
		Days:    days,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCompletionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompletionListResponse(output.Completions))
}

// handleCompletionError handles completion errors and returns appropriate
// HTTP responses. Toggle and listing can also surface habit ownership
// errors and window validation errors.
func (c *CompletionController) handleCompletionError(ctx *gin.Context, err error) {
	var completionErr *domainerror.CompletionError
	if errors.As(err, &completionErr) {
		statusCode := getStatusCodeForCompletionError(completionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: completionErr.Message,
			Code:  string(completionErr.Code),
		})
		return
	}

	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		ctx.JSON(getStatusCodeForHabitError(habitErr.Code), dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCompletionError maps completion error codes to HTTP
// status codes.
func getStatusCodeForCompletionError(code domainerror.CompletionErrorCode) int {
	switch code {
	case domainerror.ErrCodeCompletionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCompletionConflict:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCompletionDate,
		domainerror.ErrCodeInactiveHabitCompletion:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
