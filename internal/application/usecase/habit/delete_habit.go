// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	HabitID uuid.UUID
	UserID  uuid.UUID
}

// DeleteHabitOutput represents the output of habit deletion.
type DeleteHabitOutput struct {
	Success bool
}

// DeleteHabitUseCase handles habit deletion logic. Deletion is a soft
// delete; completion history for the habit is kept.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit deletion.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) (*DeleteHabitOutput, error) {
	habit, err := findOwnedHabit(ctx, uc.habitRepo, input.HabitID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.habitRepo.Deactivate(ctx, habit.ID); err != nil {
		return nil, fmt.Errorf("failed to delete habit: %w", err)
	}

	return &DeleteHabitOutput{
		Success: true,
	}, nil
}
