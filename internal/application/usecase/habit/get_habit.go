// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// GetHabitInput represents the input for fetching a single habit.
type GetHabitInput struct {
	HabitID uuid.UUID
	UserID  uuid.UUID
}

// GetHabitOutput represents the output of fetching a single habit.
type GetHabitOutput struct {
	Habit *entity.Habit
}

// GetHabitUseCase handles fetching one habit.
type GetHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewGetHabitUseCase creates a new GetHabitUseCase instance.
func NewGetHabitUseCase(habitRepo adapter.HabitRepository) *GetHabitUseCase {
	return &GetHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit fetch.
func (uc *GetHabitUseCase) Execute(ctx context.Context, input GetHabitInput) (*GetHabitOutput, error) {
	habit, err := findOwnedHabit(ctx, uc.habitRepo, input.HabitID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetHabitOutput{
		Habit: habit,
	}, nil
}

// findOwnedHabit loads a habit and verifies ownership. A habit owned
// by another user is reported as not found.
func findOwnedHabit(ctx context.Context, repo adapter.HabitRepository, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.FindByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	if habit.UserID != userID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	return habit, nil
}
