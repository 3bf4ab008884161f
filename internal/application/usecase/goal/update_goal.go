// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID         uuid.UUID
	UserID         uuid.UUID
	Title          *string              // Optional
	Description    *string              // Optional
	Category       *entity.GoalCategory // Optional
	Color          *string              // Optional
	TargetDate     *time.Time           // Optional
	MotivationNote *string              // Optional
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	// Find the existing goal
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	// Check if user is authorized to modify this goal
	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	// Update title if provided
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalTitle,
				"title cannot be empty",
				domainerror.ErrMissingGoalTitle,
			)
		}
		goal.Title = title
	}

	// Update category if provided
	if input.Category != nil {
		if !entity.IsValidGoalCategory(*input.Category) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalCategory,
				"unknown goal category",
				domainerror.ErrInvalidGoalCategory,
			)
		}
		goal.Category = *input.Category
	}

	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.Color != nil {
		goal.Color = *input.Color
	}
	if input.TargetDate != nil {
		goal.TargetDate = entity.NormalizeDate(*input.TargetDate)
	}
	if input.MotivationNote != nil {
		goal.MotivationNote = *input.MotivationNote
	}

	// Update timestamp
	goal.UpdatedAt = time.Now().UTC()

	// Save updated goal
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
