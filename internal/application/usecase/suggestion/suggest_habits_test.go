package suggestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(context.Context, uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if g, ok := r.goals[id]; ok {
		g.IsActive = false
	}
	return nil
}

type fakeHabitRepo struct {
	habits []*entity.Habit
}

func (r *fakeHabitRepo) Create(context.Context, *entity.Habit) error { return nil }

func (r *fakeHabitRepo) FindByID(context.Context, uuid.UUID) (*entity.Habit, error) {
	return nil, domainerror.ErrHabitNotFound
}

func (r *fakeHabitRepo) FindActiveByUserID(context.Context, uuid.UUID) ([]*entity.HabitWithGoal, error) {
	return nil, nil
}

func (r *fakeHabitRepo) FindActiveByGoalID(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return r.habits, nil
}

func (r *fakeHabitRepo) FindRemindableByUserID(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return nil, nil
}

func (r *fakeHabitRepo) Update(context.Context, *entity.Habit) error { return nil }
func (r *fakeHabitRepo) Deactivate(context.Context, uuid.UUID) error { return nil }

type fakeAIService struct {
	available   bool
	err         error
	lastRequest *adapter.HabitSuggestionRequest
}

func (s *fakeAIService) SuggestHabits(_ context.Context, request *adapter.HabitSuggestionRequest) ([]*adapter.HabitSuggestion, error) {
	s.lastRequest = request
	if s.err != nil {
		return nil, s.err
	}
	suggestions := make([]*adapter.HabitSuggestion, 0, request.Count)
	for i := 0; i < request.Count; i++ {
		suggestions = append(suggestions, &adapter.HabitSuggestion{
			Name:      "Suggested habit",
			Type:      entity.HabitTypeBuild,
			Frequency: entity.FrequencyDaily,
		})
	}
	return suggestions, nil
}

func (s *fakeAIService) IsAvailable() bool { return s.available }

func newSuggestFixture() (*SuggestHabitsUseCase, *fakeGoalRepo, *fakeHabitRepo, *fakeAIService, *entity.Goal) {
	userID := uuid.New()
	goal := entity.NewGoal(userID, "Sleep better", "Get 8 hours", entity.GoalCategoryWellness, "#10b981", time.Time{}, "")

	goalRepo := &fakeGoalRepo{goals: map[uuid.UUID]*entity.Goal{goal.ID: goal}}
	habitRepo := &fakeHabitRepo{}
	aiService := &fakeAIService{available: true}

	uc := NewSuggestHabitsUseCase(goalRepo, habitRepo, aiService)
	return uc, goalRepo, habitRepo, aiService, goal
}

func TestSuggestHabits(t *testing.T) {
	t.Run("returns suggestions for an owned goal", func(t *testing.T) {
		uc, _, habitRepo, aiService, goal := newSuggestFixture()
		habitRepo.habits = []*entity.Habit{
			entity.NewHabit(goal.UserID, goal.ID, "Wind down at 22:00", entity.HabitTypeBuild, entity.FrequencyDaily),
		}

		output, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: goal.UserID,
			GoalID: goal.ID,
			Count:  5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Suggestions) != 5 {
			t.Errorf("expected 5 suggestions, got %d", len(output.Suggestions))
		}
		if aiService.lastRequest.GoalTitle != "Sleep better" {
			t.Errorf("expected goal title in request, got %s", aiService.lastRequest.GoalTitle)
		}
		if len(aiService.lastRequest.ExistingHabits) != 1 || aiService.lastRequest.ExistingHabits[0] != "Wind down at 22:00" {
			t.Errorf("expected existing habit names in request, got %v", aiService.lastRequest.ExistingHabits)
		}
	})

	t.Run("zero count falls back to the default", func(t *testing.T) {
		uc, _, _, aiService, goal := newSuggestFixture()

		output, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: goal.UserID,
			GoalID: goal.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if aiService.lastRequest.Count != DefaultSuggestionCount {
			t.Errorf("expected count %d, got %d", DefaultSuggestionCount, aiService.lastRequest.Count)
		}
		if len(output.Suggestions) != DefaultSuggestionCount {
			t.Errorf("expected %d suggestions, got %d", DefaultSuggestionCount, len(output.Suggestions))
		}
	})

	t.Run("ai service not available", func(t *testing.T) {
		uc, _, _, aiService, goal := newSuggestFixture()
		aiService.available = false

		_, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: goal.UserID,
			GoalID: goal.ID,
		})
		assertSuggestionCode(t, err, domainerror.ErrCodeAIDisabled)
	})

	t.Run("nil ai service", func(t *testing.T) {
		_, goalRepo, habitRepo, _, goal := newSuggestFixture()
		uc := NewSuggestHabitsUseCase(goalRepo, habitRepo, nil)

		_, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: goal.UserID,
			GoalID: goal.ID,
		})
		assertSuggestionCode(t, err, domainerror.ErrCodeAIDisabled)
	})

	t.Run("goal not found", func(t *testing.T) {
		uc, _, _, _, goal := newSuggestFixture()

		_, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: goal.UserID,
			GoalID: uuid.New(),
		})
		assertSuggestionCode(t, err, domainerror.ErrCodeSuggestionGoalNotFound)
	})

	t.Run("goal owned by another user", func(t *testing.T) {
		uc, _, _, _, goal := newSuggestFixture()

		_, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: uuid.New(),
			GoalID: goal.ID,
		})
		assertSuggestionCode(t, err, domainerror.ErrCodeSuggestionGoalNotFound)
	})

	t.Run("ai service rate limited", func(t *testing.T) {
		uc, _, _, aiService, goal := newSuggestFixture()
		aiService.err = domainerror.ErrAIRateLimited

		_, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: goal.UserID,
			GoalID: goal.ID,
		})
		assertSuggestionCode(t, err, domainerror.ErrCodeAIRateLimited)
	})

	t.Run("ai service failure", func(t *testing.T) {
		uc, _, _, aiService, goal := newSuggestFixture()
		aiService.err = errors.New("upstream timeout")

		_, err := uc.Execute(context.Background(), SuggestHabitsInput{
			UserID: goal.UserID,
			GoalID: goal.ID,
		})
		assertSuggestionCode(t, err, domainerror.ErrCodeAIServiceError)
	})
}

func assertSuggestionCode(t *testing.T, err error, code domainerror.SuggestionErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var suggestionErr *domainerror.SuggestionError
	if !errors.As(err, &suggestionErr) {
		t.Fatalf("expected SuggestionError, got %T", err)
	}
	if suggestionErr.Code != code {
		t.Errorf("expected code %s, got %s", code, suggestionErr.Code)
	}
}
