// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/progress"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// GoalOutput represents a single goal in the output, with its derived
// progress for today.
type GoalOutput struct {
	Goal               *entity.Goal
	Streak             int
	TotalHabitsToday   int
	CompletedToday     int
	ProgressPercentage int
}

// ListGoalsUseCase handles listing goals with today's progress.
type ListGoalsUseCase struct {
	goalRepo       adapter.GoalRepository
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	settingsRepo   adapter.SettingsRepository
	now            func() time.Time
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	settingsRepo adapter.SettingsRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:       goalRepo,
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	today, err := userToday(ctx, uc.settingsRepo, input.UserID, uc.now)
	if err != nil {
		return nil, err
	}

	// One query for every habit's completion history in the streak and
	// rate windows, grouped by habit.
	since := today.AddDate(0, 0, -progress.HistoryWindowDays)
	completions, err := uc.completionRepo.FindDatesByUserSince(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}

	for _, g := range goals {
		habits, err := uc.habitRepo.FindActiveByGoalID(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list habits for goal: %w", err)
		}

		status := progress.BuildGoalStatus(g, habits, completions, today)

		output.Goals = append(output.Goals, &GoalOutput{
			Goal:               g,
			Streak:             status.Streak,
			TotalHabitsToday:   status.TotalHabitsToday,
			CompletedToday:     status.CompletedToday,
			ProgressPercentage: status.ProgressPercentage,
		})
	}

	return output, nil
}
