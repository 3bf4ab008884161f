// Package habit contains habit-related use cases.
package habit

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

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID           uuid.UUID
	GoalID           uuid.UUID
	Name             string
	Description      string
	Type             entity.HabitType
	Frequency        entity.Frequency
	PreferredTime    string
	Weekday          *time.Weekday // Optional, for weekly habits
	Cue              string
	Reward           string
	Notes            string
	RemindersEnabled bool
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	goalRepo  adapter.GoalRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository, goalRepo adapter.GoalRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
		goalRepo:  goalRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	// Validate name
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitName,
			"name is required",
			domainerror.ErrMissingHabitName,
		)
	}

	// Validate type
	if !entity.IsValidHabitType(input.Type) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitType,
			"type must be 'build' or 'break'",
			domainerror.ErrInvalidHabitType,
		)
	}

	// Validate frequency
	if !entity.IsValidFrequency(input.Frequency) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'daily', 'weekly', or 'custom'",
			domainerror.ErrInvalidFrequency,
		)
	}

	// Validate the goal exists, belongs to the user and is active
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitGoalNotFound,
				"goal not found",
				domainerror.ErrHabitGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if goal.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitGoalNotFound,
			"goal not found",
			domainerror.ErrHabitGoalNotFound,
		)
	}
	if !goal.IsActive {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitGoalInactive,
			"cannot attach a habit to a deleted goal",
			domainerror.ErrHabitGoalInactive,
		)
	}

	// Create habit entity
	habit := entity.NewHabit(
		input.UserID,
		input.GoalID,
		strings.TrimSpace(input.Name),
		input.Type,
		input.Frequency,
	)
	habit.Description = input.Description
	habit.PreferredTime = input.PreferredTime
	habit.Weekday = input.Weekday
	habit.Cue = input.Cue
	habit.Reward = input.Reward
	habit.Notes = input.Notes
	habit.RemindersEnabled = input.RemindersEnabled

	// Save habit to database
	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{
		Habit: habit,
	}, nil
}
