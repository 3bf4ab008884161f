// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID         uuid.UUID
	Title          string
	Description    string
	Category       entity.GoalCategory
	Color          string
	TargetDate     *time.Time // Optional
	MotivationNote string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	// Validate title
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalTitle,
			"title is required",
			domainerror.ErrMissingGoalTitle,
		)
	}

	// Validate category
	if !entity.IsValidGoalCategory(input.Category) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCategory,
			"unknown goal category",
			domainerror.ErrInvalidGoalCategory,
		)
	}

	var targetDate time.Time
	if input.TargetDate != nil {
		targetDate = entity.NormalizeDate(*input.TargetDate)
		if !targetDate.After(entity.NormalizeDate(time.Now().UTC())) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetDate,
				"target date must be in the future",
				domainerror.ErrInvalidTargetDate,
			)
		}
	}

	// Create goal entity
	goal := entity.NewGoal(
		input.UserID,
		strings.TrimSpace(input.Title),
		input.Description,
		input.Category,
		input.Color,
		targetDate,
		input.MotivationNote,
	)

	// Save goal to database
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
