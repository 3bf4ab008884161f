package completion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

type fakeHabitRepo struct {
	habits map[uuid.UUID]*entity.Habit
}

func (r *fakeHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	r.habits[h.ID] = h
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	h, ok := r.habits[id]
	if !ok {
		return nil, domainerror.ErrHabitNotFound
	}
	return h, nil
}

func (r *fakeHabitRepo) FindActiveByUserID(context.Context, uuid.UUID) ([]*entity.HabitWithGoal, error) {
	return nil, nil
}

func (r *fakeHabitRepo) FindActiveByGoalID(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return nil, nil
}

func (r *fakeHabitRepo) FindRemindableByUserID(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return nil, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, h *entity.Habit) error {
	r.habits[h.ID] = h
	return nil
}

func (r *fakeHabitRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if h, ok := r.habits[id]; ok {
		h.IsActive = false
	}
	return nil
}

type completionKey struct {
	habitID uuid.UUID
	date    time.Time
}

type fakeCompletionRepo struct {
	completions map[completionKey]*entity.HabitCompletion
	createErr   error
}

func (r *fakeCompletionRepo) Create(_ context.Context, c *entity.HabitCompletion) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := completionKey{c.HabitID, c.CompletedDate}
	if _, exists := r.completions[key]; exists {
		return domainerror.ErrCompletionConflict
	}
	r.completions[key] = c
	return nil
}

func (r *fakeCompletionRepo) FindByHabitAndDate(_ context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	c, ok := r.completions[completionKey{habitID, entity.NormalizeDate(date)}]
	if !ok {
		return nil, domainerror.ErrCompletionNotFound
	}
	return c, nil
}

func (r *fakeCompletionRepo) DeleteByHabitAndDate(_ context.Context, habitID uuid.UUID, date time.Time) error {
	delete(r.completions, completionKey{habitID, entity.NormalizeDate(date)})
	return nil
}

func (r *fakeCompletionRepo) FindByHabitSince(context.Context, uuid.UUID, time.Time) ([]*entity.HabitCompletion, error) {
	return nil, nil
}

func (r *fakeCompletionRepo) FindDatesByUserSince(context.Context, uuid.UUID, time.Time) (map[uuid.UUID][]time.Time, error) {
	return nil, nil
}

type fakeSettingsRepo struct{}

func (r *fakeSettingsRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	return entity.NewUserSettings(userID), nil
}

func (r *fakeSettingsRepo) Save(context.Context, *entity.UserSettings) error {
	return nil
}

func (r *fakeSettingsRepo) FindNotifiable(context.Context) ([]*entity.UserSettings, error) {
	return nil, nil
}

func newToggleFixture() (*ToggleCompletionUseCase, *fakeHabitRepo, *fakeCompletionRepo, *entity.Habit) {
	userID := uuid.New()
	habit := entity.NewHabit(userID, uuid.New(), "Meditate", entity.HabitTypeBuild, entity.FrequencyDaily)

	habitRepo := &fakeHabitRepo{habits: map[uuid.UUID]*entity.Habit{habit.ID: habit}}
	completionRepo := &fakeCompletionRepo{completions: map[completionKey]*entity.HabitCompletion{}}

	uc := NewToggleCompletionUseCase(habitRepo, completionRepo, &fakeSettingsRepo{})
	uc.now = func() time.Time {
		return time.Date(2025, time.June, 18, 15, 30, 0, 0, time.UTC)
	}
	return uc, habitRepo, completionRepo, habit
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("first toggle records a completion", func(t *testing.T) {
		uc, _, repo, habit := newToggleFixture()

		out, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: habit.ID, UserID: habit.UserID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.Completed {
			t.Error("expected Completed = true")
		}
		wantDate := time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)
		if !out.Date.Equal(wantDate) {
			t.Errorf("Date = %v, want %v", out.Date, wantDate)
		}
		if len(repo.completions) != 1 {
			t.Errorf("stored completions = %d, want 1", len(repo.completions))
		}
	})

	t.Run("second toggle removes the completion", func(t *testing.T) {
		uc, _, repo, habit := newToggleFixture()

		if _, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: habit.ID, UserID: habit.UserID}); err != nil {
			t.Fatalf("first Execute() error = %v", err)
		}
		out, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: habit.ID, UserID: habit.UserID})
		if err != nil {
			t.Fatalf("second Execute() error = %v", err)
		}
		if out.Completed {
			t.Error("expected Completed = false after second toggle")
		}
		if len(repo.completions) != 0 {
			t.Errorf("stored completions = %d, want 0", len(repo.completions))
		}
	})

	t.Run("explicit date is normalized", func(t *testing.T) {
		uc, _, repo, habit := newToggleFixture()

		date := time.Date(2025, time.June, 10, 22, 45, 0, 0, time.UTC)
		out, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: habit.ID, UserID: habit.UserID, Date: &date})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		wantDate := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
		if !out.Date.Equal(wantDate) {
			t.Errorf("Date = %v, want %v", out.Date, wantDate)
		}
		if _, ok := repo.completions[completionKey{habit.ID, wantDate}]; !ok {
			t.Error("completion not stored under the normalized date")
		}
	})

	t.Run("unknown habit", func(t *testing.T) {
		uc, _, _, habit := newToggleFixture()

		_, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: uuid.New(), UserID: habit.UserID})
		if !errors.Is(err, domainerror.ErrHabitNotFound) {
			t.Errorf("error = %v, want ErrHabitNotFound", err)
		}
	})

	t.Run("habit of another user is not found", func(t *testing.T) {
		uc, _, _, habit := newToggleFixture()

		_, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: habit.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrHabitNotFound) {
			t.Errorf("error = %v, want ErrHabitNotFound", err)
		}
	})

	t.Run("inactive habit rejects toggling", func(t *testing.T) {
		uc, habitRepo, _, habit := newToggleFixture()
		habitRepo.habits[habit.ID].IsActive = false

		_, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: habit.ID, UserID: habit.UserID})
		if !errors.Is(err, domainerror.ErrInactiveHabitCompletion) {
			t.Errorf("error = %v, want ErrInactiveHabitCompletion", err)
		}
	})

	t.Run("insert race surfaces as conflict", func(t *testing.T) {
		uc, _, repo, habit := newToggleFixture()
		repo.createErr = domainerror.ErrCompletionConflict

		_, err := uc.Execute(ctx, ToggleCompletionInput{HabitID: habit.ID, UserID: habit.UserID})
		if !errors.Is(err, domainerror.ErrCompletionConflict) {
			t.Errorf("error = %v, want ErrCompletionConflict", err)
		}
	})
}
