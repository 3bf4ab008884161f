// Package habit contains habit-related use cases.
package habit

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

// UpdateHabitInput represents the input for habit update.
type UpdateHabitInput struct {
	HabitID          uuid.UUID
	UserID           uuid.UUID
	Name             *string           // Optional
	Description      *string           // Optional
	Type             *entity.HabitType // Optional
	Frequency        *entity.Frequency // Optional
	PreferredTime    *string           // Optional
	Weekday          *time.Weekday     // Optional
	Cue              *string           // Optional
	Reward           *string           // Optional
	Notes            *string           // Optional
	RemindersEnabled *bool             // Optional
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
	habit, err := findOwnedHabit(ctx, uc.habitRepo, input.HabitID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Update name if provided
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeMissingHabitName,
				"name cannot be empty",
				domainerror.ErrMissingHabitName,
			)
		}
		habit.Name = name
	}

	// Update type if provided
	if input.Type != nil {
		if !entity.IsValidHabitType(*input.Type) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitType,
				"type must be 'build' or 'break'",
				domainerror.ErrInvalidHabitType,
			)
		}
		habit.Type = *input.Type
	}

	// Update frequency if provided
	if input.Frequency != nil {
		if !entity.IsValidFrequency(*input.Frequency) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be 'daily', 'weekly', or 'custom'",
				domainerror.ErrInvalidFrequency,
			)
		}
		habit.Frequency = *input.Frequency
	}

	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.PreferredTime != nil {
		habit.PreferredTime = *input.PreferredTime
	}
	if input.Weekday != nil {
		habit.Weekday = input.Weekday
	}
	if input.Cue != nil {
		habit.Cue = *input.Cue
	}
	if input.Reward != nil {
		habit.Reward = *input.Reward
	}
	if input.Notes != nil {
		habit.Notes = *input.Notes
	}
	if input.RemindersEnabled != nil {
		habit.RemindersEnabled = *input.RemindersEnabled
	}

	// Update timestamp
	habit.UpdatedAt = time.Now().UTC()

	// Save updated habit
	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{
		Habit: habit,
	}, nil
}
