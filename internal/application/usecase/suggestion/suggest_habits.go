// Package suggestion contains the AI habit suggestion use case.
package suggestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// DefaultSuggestionCount is how many suggestions are requested when the
// caller does not specify a count.
const DefaultSuggestionCount = 3

// SuggestHabitsInput represents the input for habit suggestions.
type SuggestHabitsInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Count  int // 0 means DefaultSuggestionCount
}

// SuggestHabitsOutput represents the output of habit suggestions.
type SuggestHabitsOutput struct {
	Suggestions []*adapter.HabitSuggestion
}

// SuggestHabitsUseCase asks the AI service for habit suggestions
// tailored to one of the user's goals.
type SuggestHabitsUseCase struct {
	goalRepo  adapter.GoalRepository
	habitRepo adapter.HabitRepository
	aiService adapter.HabitSuggestionService
}

// NewSuggestHabitsUseCase creates a new SuggestHabitsUseCase instance.
func NewSuggestHabitsUseCase(
	goalRepo adapter.GoalRepository,
	habitRepo adapter.HabitRepository,
	aiService adapter.HabitSuggestionService,
) *SuggestHabitsUseCase {
	return &SuggestHabitsUseCase{
		goalRepo:  goalRepo,
		habitRepo: habitRepo,
		aiService: aiService,
	}
}

// Execute performs the suggestion request.
func (uc *SuggestHabitsUseCase) Execute(ctx context.Context, input SuggestHabitsInput) (*SuggestHabitsOutput, error) {
	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeAIDisabled,
			"ai suggestions are not configured",
			domainerror.ErrAIDisabled,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewSuggestionError(
				domainerror.ErrCodeSuggestionGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if goal.UserID != input.UserID {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	habits, err := uc.habitRepo.FindActiveByGoalID(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	existing := make([]string, 0, len(habits))
	for _, h := range habits {
		existing = append(existing, h.Name)
	}

	count := input.Count
	if count <= 0 {
		count = DefaultSuggestionCount
	}

	suggestions, err := uc.aiService.SuggestHabits(ctx, &adapter.HabitSuggestionRequest{
		GoalTitle:       goal.Title,
		GoalDescription: goal.Description,
		GoalCategory:    goal.Category,
		ExistingHabits:  existing,
		Count:           count,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrAIRateLimited) {
			return nil, domainerror.NewSuggestionError(
				domainerror.ErrCodeAIRateLimited,
				"ai service rate limited, try again later",
				domainerror.ErrAIRateLimited,
			)
		}
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeAIServiceError,
			"ai service failed",
			err,
		)
	}

	return &SuggestHabitsOutput{
		Suggestions: suggestions,
	}, nil
}
