// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/progress"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID   uuid.UUID
	GoalID   *uuid.UUID // Optional, restrict to one goal
	DueToday bool       // Optional, restrict to habits due today
}

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*HabitOutput
}

// HabitOutput represents a single habit in the output, with goal
// display fields and today's derived metrics.
type HabitOutput struct {
	Habit          *entity.Habit
	GoalTitle      string
	GoalColor      string
	DueToday       bool
	CompletedToday bool
	Streak         int
	CompletionRate int
}

// ListHabitsUseCase handles listing habits with their metrics.
type ListHabitsUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	settingsRepo   adapter.SettingsRepository
	now            func() time.Time
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	settingsRepo adapter.SettingsRepository,
) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
}

// Execute performs the habit listing.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	today, err := userToday(ctx, uc.settingsRepo, input.UserID, uc.now)
	if err != nil {
		return nil, err
	}

	since := today.AddDate(0, 0, -progress.HistoryWindowDays)
	completions, err := uc.completionRepo.FindDatesByUserSince(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	output := &ListHabitsOutput{
		Habits: make([]*HabitOutput, 0, len(habits)),
	}

	for _, hg := range habits {
		h := hg.Habit
		if input.GoalID != nil && h.GoalID != *input.GoalID {
			continue
		}

		due := progress.IsDueOn(h, today)
		if input.DueToday && !due {
			continue
		}

		dates := completions[h.ID]
		output.Habits = append(output.Habits, &HabitOutput{
			Habit:          h,
			GoalTitle:      hg.GoalTitle,
			GoalColor:      hg.GoalColor,
			DueToday:       due,
			CompletedToday: completedOn(dates, today),
			Streak:         progress.Streak(dates, today),
			CompletionRate: progress.CompletionRate(dates, today),
		})
	}

	return output, nil
}

func completedOn(dates []time.Time, day time.Time) bool {
	for _, d := range dates {
		if entity.NormalizeDate(d).Equal(day) {
			return true
		}
	}
	return false
}
