// Package dashboard contains the dashboard aggregation use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/progress"
)

// GetDashboardInput represents the input for the dashboard aggregate.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// GetDashboardOutput represents the dashboard read model.
type GetDashboardOutput struct {
	Summary *progress.Summary
	Today   time.Time
}

// GetDashboardUseCase computes the full dashboard aggregate: per-goal
// and per-habit derived metrics plus user-level totals, all against one
// "today" snapshot taken at the start of the request.
type GetDashboardUseCase struct {
	goalRepo       adapter.GoalRepository
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	settingsRepo   adapter.SettingsRepository
	now            func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	goalRepo adapter.GoalRepository,
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	settingsRepo adapter.SettingsRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		goalRepo:       goalRepo,
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
}

// Execute computes the dashboard aggregate.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	settings, err := uc.settingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}
	today := entity.TodayIn(uc.now(), settings.Location())

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	withGoals, err := uc.habitRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	habits := make([]*entity.Habit, 0, len(withGoals))
	for _, hg := range withGoals {
		habits = append(habits, hg.Habit)
	}

	since := today.AddDate(0, 0, -progress.HistoryWindowDays)
	completions, err := uc.completionRepo.FindDatesByUserSince(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	return &GetDashboardOutput{
		Summary: progress.BuildSummary(goals, habits, completions, today),
		Today:   today,
	}, nil
}
