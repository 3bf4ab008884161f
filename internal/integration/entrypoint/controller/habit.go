// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/usecase/habit"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit endpoints.
type HabitController struct {
	listUseCase   *habit.ListHabitsUseCase
	createUseCase *habit.CreateHabitUseCase
	getUseCase    *habit.GetHabitUseCase
	updateUseCase *habit.UpdateHabitUseCase
	deleteUseCase *habit.DeleteHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	listUseCase *habit.ListHabitsUseCase,
	createUseCase *habit.CreateHabitUseCase,
	getUseCase *habit.GetHabitUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
) *HabitController {
	return &HabitController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /habits requests. Supports ?goal_id= and
// ?due_today=true filters.
func (c *HabitController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := habit.ListHabitsInput{
		UserID:   userID,
		DueToday: ctx.Query("due_today") == "true",
	}

	if goalIDParam := ctx.Query("goal_id"); goalIDParam != "" {
		goalID, err := uuid.Parse(goalIDParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid goal ID format",
				Code:  string(domainerror.ErrCodeHabitGoalNotFound),
			})
			return
		}
		input.GoalID = &goalID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve habits",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitName),
		})
		return
	}

	goalID, err := uuid.Parse(req.GoalID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeHabitGoalNotFound),
		})
		return
	}

	input := habit.CreateHabitInput{
		UserID:           userID,
		GoalID:           goalID,
		Name:             req.Name,
		Description:      req.Description,
		Type:             entity.HabitType(req.Type),
		Frequency:        entity.Frequency(req.Frequency),
		PreferredTime:    req.PreferredTime,
		Cue:              req.Cue,
		Reward:           req.Reward,
		Notes:            req.Notes,
		RemindersEnabled: req.RemindersEnabled,
	}
	if req.Weekday != nil {
		weekday := time.Weekday(*req.Weekday)
		input.Weekday = &weekday
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit))
}

// Get handles GET /habits/:id requests.
func (c *HabitController) Get(ctx *gin.Context) {
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

	input := habit.GetHabitInput{
		HabitID: habitID,
		UserID:  userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
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

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitName),
		})
		return
	}

	input := habit.UpdateHabitInput{
		HabitID:          habitID,
		UserID:           userID,
		Name:             req.Name,
		Description:      req.Description,
		PreferredTime:    req.PreferredTime,
		Cue:              req.Cue,
		Reward:           req.Reward,
		Notes:            req.Notes,
		RemindersEnabled: req.RemindersEnabled,
	}
	if req.Type != nil {
		habitType := entity.HabitType(*req.Type)
		input.Type = &habitType
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.Weekday != nil {
		weekday := time.Weekday(*req.Weekday)
		input.Weekday = &weekday
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
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

	input := habit.DeleteHabitInput{
		HabitID: habitID,
		UserID:  userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Habit deleted",
	})
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound,
		domainerror.ErrCodeHabitGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingHabitName,
		domainerror.ErrCodeInvalidHabitType,
		domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeHabitGoalInactive:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnauthorizedHabitAccess:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
