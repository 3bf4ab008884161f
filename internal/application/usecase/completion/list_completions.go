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

// DefaultHistoryDays is the default completions window when the caller
// does not specify one.
const DefaultHistoryDays = 90

// ListCompletionsInput represents the input for listing completions.
type ListCompletionsInput struct {
	HabitID uuid.UUID
	UserID  uuid.UUID
	Days    int // 0 means DefaultHistoryDays
}

// ListCompletionsOutput represents the output of listing completions.
type ListCompletionsOutput struct {
	Completions []*entity.HabitCompletion
}

// ListCompletionsUseCase lists a habit's completion history.
type ListCompletionsUseCase struct {
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	settingsRepo   adapter.SettingsRepository
	now            func() time.Time
}

// NewListCompletionsUseCase creates a new ListCompletionsUseCase instance.
func NewListCompletionsUseCase(
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	settingsRepo adapter.SettingsRepository,
) *ListCompletionsUseCase {
	return &ListCompletionsUseCase{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
}

// Execute performs the listing.
func (uc *ListCompletionsUseCase) Execute(ctx context.Context, input ListCompletionsInput) (*ListCompletionsOutput, error) {
	days := input.Days
	if days == 0 {
		days = DefaultHistoryDays
	}
	if days < 1 || days > 365 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidHistoryDays,
			"days must be between 1 and 365",
			domainerror.ErrInvalidHistoryDays,
		)
	}

	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
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
	if habit.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	today, err := userToday(ctx, uc.settingsRepo, input.UserID, uc.now)
	if err != nil {
		return nil, err
	}

	since := today.AddDate(0, 0, -(days - 1))
	completions, err := uc.completionRepo.FindByHabitSince(ctx, habit.ID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	return &ListCompletionsOutput{
		Completions: completions,
	}, nil
}
