// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single goal.
type GetGoalOutput struct {
	Goal   *entity.Goal
	Habits []*entity.Habit
}

// GetGoalUseCase handles fetching one goal with its active habits.
type GetGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	habitRepo adapter.HabitRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository, habitRepo adapter.HabitRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:  goalRepo,
		habitRepo: habitRepo,
	}
}

// Execute performs the goal fetch.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	habits, err := uc.habitRepo.FindActiveByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits for goal: %w", err)
	}

	return &GetGoalOutput{
		Goal:   goal,
		Habits: habits,
	}, nil
}
