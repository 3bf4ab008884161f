// Package completion contains habit completion use cases.
package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// ToggleCompletionInput represents the input for toggling a completion.
type ToggleCompletionInput struct {
	HabitID uuid.UUID
	UserID  uuid.UUID
	Date    *time.Time // Optional, defaults to today in the user's timezone
	Note    string
}

// ToggleCompletionOutput represents the output of toggling a completion.
type ToggleCompletionOutput struct {
	Completed  bool // true when the toggle recorded a completion
	Date       time.Time
	Completion *entity.HabitCompletion // set when Completed is true
}

// ToggleCompletionUseCase flips completion state for a habit on one
// calendar date: insert when absent, delete when present. This is the
// only mutation path for completion state.
type ToggleCompletionUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	settingsRepo   adapter.SettingsRepository
	now            func() time.Time
}

// NewToggleCompletionUseCase creates a new ToggleCompletionUseCase instance.
func NewToggleCompletionUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	settingsRepo adapter.SettingsRepository,
) *ToggleCompletionUseCase {
	return &ToggleCompletionUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
}

// Execute performs the toggle.
func (uc *ToggleCompletionUseCase) Execute(ctx context.Context, input ToggleCompletionInput) (*ToggleCompletionOutput, error) {
	habit, err := uc.findOwnedHabit(ctx, input.HabitID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !habit.IsActive {
		return nil, domainerror.NewCompletionError(
			domainerror.ErrCodeInactiveHabitCompletion,
			"habit is not active",
			domainerror.ErrInactiveHabitCompletion,
		)
	}

	var date time.Time
	if input.Date != nil {
		date = entity.NormalizeDate(*input.Date)
	} else {
		date, err = userToday(ctx, uc.settingsRepo, input.UserID, uc.now)
		if err != nil {
			return nil, err
		}
	}

	existing, err := uc.completionRepo.FindByHabitAndDate(ctx, habit.ID, date)
	if err != nil && !errors.Is(err, domainerror.ErrCompletionNotFound) {
		return nil, fmt.Errorf("failed to look up completion: %w", err)
	}

	if existing != nil {
		if err := uc.completionRepo.DeleteByHabitAndDate(ctx, habit.ID, date); err != nil {
			return nil, fmt.Errorf("failed to remove completion: %w", err)
		}
		return &ToggleCompletionOutput{Completed: false, Date: date}, nil
	}

	completion := entity.NewHabitCompletion(input.UserID, habit.ID, date, input.Note)
	if err := uc.completionRepo.Create(ctx, completion); err != nil {
		// A concurrent toggle can win the insert race; the unique index
		// turns that into a conflict instead of a double completion.
		if errors.Is(err, domainerror.ErrCompletionConflict) {
			return nil, domainerror.NewCompletionError(
				domainerror.ErrCodeCompletionConflict,
				"completion already recorded for this date",
				domainerror.ErrCompletionConflict,
			)
		}
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	return &ToggleCompletionOutput{
		Completed:  true,
		Date:       date,
		Completion: completion,
	}, nil
}

func (uc *ToggleCompletionUseCase) findOwnedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := uc.habitRepo.FindByID(ctx, habitID)
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
