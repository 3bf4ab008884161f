package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

type fakeSettingsRepo struct {
	settings []*entity.UserSettings
}

func (r *fakeSettingsRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	for _, s := range r.settings {
		if s.UserID == userID {
			return s, nil
		}
	}
	return entity.NewUserSettings(userID), nil
}

func (r *fakeSettingsRepo) Save(context.Context, *entity.UserSettings) error { return nil }

func (r *fakeSettingsRepo) FindNotifiable(context.Context) ([]*entity.UserSettings, error) {
	return r.settings, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error    { return nil }

func (r *fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

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
	out := make([]*entity.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(context.Context, *entity.Goal) error  { return nil }
func (r *fakeGoalRepo) Deactivate(context.Context, uuid.UUID) error { return nil }

type fakeHabitRepo struct {
	habits []*entity.Habit
}

func (r *fakeHabitRepo) Create(context.Context, *entity.Habit) error { return nil }

func (r *fakeHabitRepo) FindByID(context.Context, uuid.UUID) (*entity.Habit, error) {
	return nil, domainerror.ErrHabitNotFound
}

func (r *fakeHabitRepo) FindActiveByUserID(context.Context, uuid.UUID) ([]*entity.HabitWithGoal, error) {
	out := make([]*entity.HabitWithGoal, 0, len(r.habits))
	for _, h := range r.habits {
		out = append(out, &entity.HabitWithGoal{Habit: h})
	}
	return out, nil
}

func (r *fakeHabitRepo) FindActiveByGoalID(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return nil, nil
}

func (r *fakeHabitRepo) FindRemindableByUserID(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return r.habits, nil
}

func (r *fakeHabitRepo) Update(context.Context, *entity.Habit) error { return nil }
func (r *fakeHabitRepo) Deactivate(context.Context, uuid.UUID) error { return nil }

type fakeCompletionRepo struct{}

func (r *fakeCompletionRepo) Create(context.Context, *entity.HabitCompletion) error { return nil }

func (r *fakeCompletionRepo) FindByHabitAndDate(context.Context, uuid.UUID, time.Time) (*entity.HabitCompletion, error) {
	return nil, domainerror.ErrCompletionNotFound
}

func (r *fakeCompletionRepo) DeleteByHabitAndDate(context.Context, uuid.UUID, time.Time) error {
	return nil
}

func (r *fakeCompletionRepo) FindByHabitSince(context.Context, uuid.UUID, time.Time) ([]*entity.HabitCompletion, error) {
	return nil, nil
}

func (r *fakeCompletionRepo) FindDatesByUserSince(context.Context, uuid.UUID, time.Time) (map[uuid.UUID][]time.Time, error) {
	return nil, nil
}

type fakeEmailService struct {
	reminders []adapter.QueueHabitReminderInput
	reports   []adapter.QueueWeeklyReportInput
}

func (s *fakeEmailService) QueuePasswordResetEmail(context.Context, adapter.QueuePasswordResetInput) error {
	return nil
}

func (s *fakeEmailService) QueueHabitReminderEmail(_ context.Context, input adapter.QueueHabitReminderInput) error {
	s.reminders = append(s.reminders, input)
	return nil
}

func (s *fakeEmailService) QueueWeeklyReportEmail(_ context.Context, input adapter.QueueWeeklyReportInput) error {
	s.reports = append(s.reports, input)
	return nil
}

func newReminderFixture(now time.Time) (*EnqueueRemindersUseCase, *fakeSettingsRepo, *fakeHabitRepo, *fakeEmailService, *entity.User, *entity.Goal) {
	user := entity.NewUser("reminder@example.com", "Reminder User", "hash", time.Now().UTC())
	goal := entity.NewGoal(user.ID, "Get fit", "", entity.GoalCategoryHealth, "#10b981", time.Time{}, "")

	settingsRepo := &fakeSettingsRepo{}
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	goalRepo := &fakeGoalRepo{goals: map[uuid.UUID]*entity.Goal{goal.ID: goal}}
	habitRepo := &fakeHabitRepo{}
	emailService := &fakeEmailService{}

	uc := NewEnqueueRemindersUseCase(
		settingsRepo,
		userRepo,
		goalRepo,
		habitRepo,
		&fakeCompletionRepo{},
		emailService,
		"https://habitflow.app",
	)
	uc.now = func() time.Time { return now }
	return uc, settingsRepo, habitRepo, emailService, user, goal
}

func TestEnqueueReminders(t *testing.T) {
	// A Wednesday, 09:00 UTC
	now := time.Date(2025, time.June, 18, 9, 0, 30, 0, time.UTC)

	t.Run("queues reminders for habits due at the reminder time", func(t *testing.T) {
		uc, settingsRepo, habitRepo, emailService, user, goal := newReminderFixture(now)
		settingsRepo.settings = []*entity.UserSettings{entity.NewUserSettings(user.ID)}
		habitRepo.habits = []*entity.Habit{
			entity.NewHabit(user.ID, goal.ID, "Morning run", entity.HabitTypeBuild, entity.FrequencyDaily),
		}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.RemindersQueued != 1 {
			t.Fatalf("expected 1 reminder queued, got %d", output.RemindersQueued)
		}
		reminder := emailService.reminders[0]
		if reminder.UserEmail != "reminder@example.com" {
			t.Errorf("expected user email, got %s", reminder.UserEmail)
		}
		if reminder.HabitName != "Morning run" {
			t.Errorf("expected habit name, got %s", reminder.HabitName)
		}
		if reminder.GoalTitle != "Get fit" {
			t.Errorf("expected goal title, got %s", reminder.GoalTitle)
		}
	})

	t.Run("skips users whose reminder time does not match", func(t *testing.T) {
		uc, settingsRepo, habitRepo, emailService, user, goal := newReminderFixture(now)
		settings := entity.NewUserSettings(user.ID)
		settings.ReminderTime = "21:00"
		settingsRepo.settings = []*entity.UserSettings{settings}
		habitRepo.habits = []*entity.Habit{
			entity.NewHabit(user.ID, goal.ID, "Morning run", entity.HabitTypeBuild, entity.FrequencyDaily),
		}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.RemindersQueued != 0 || len(emailService.reminders) != 0 {
			t.Errorf("expected no reminders, got %d", len(emailService.reminders))
		}
	})

	t.Run("matches the reminder time in the user's timezone", func(t *testing.T) {
		uc, settingsRepo, habitRepo, emailService, user, goal := newReminderFixture(now)
		settings := entity.NewUserSettings(user.ID)
		settings.Timezone = "America/Sao_Paulo" // UTC-3: 09:00 UTC is 06:00 local
		settings.ReminderTime = "06:00"
		settingsRepo.settings = []*entity.UserSettings{settings}
		habitRepo.habits = []*entity.Habit{
			entity.NewHabit(user.ID, goal.ID, "Journal", entity.HabitTypeBuild, entity.FrequencyDaily),
		}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.RemindersQueued != 1 {
			t.Errorf("expected 1 reminder queued, got %d", len(emailService.reminders))
		}
	})

	t.Run("skips weekly habits not due today", func(t *testing.T) {
		uc, settingsRepo, habitRepo, emailService, user, goal := newReminderFixture(now)
		settingsRepo.settings = []*entity.UserSettings{entity.NewUserSettings(user.ID)}
		weekly := entity.NewHabit(user.ID, goal.ID, "Long run", entity.HabitTypeBuild, entity.FrequencyWeekly)
		saturday := time.Saturday
		weekly.Weekday = &saturday
		habitRepo.habits = []*entity.Habit{weekly}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.RemindersQueued != 0 || len(emailService.reminders) != 0 {
			t.Errorf("expected no reminders for off-day weekly habit, got %d", len(emailService.reminders))
		}
	})

	t.Run("queues the weekly report on sundays", func(t *testing.T) {
		sunday := time.Date(2025, time.June, 22, 9, 0, 0, 0, time.UTC)
		uc, settingsRepo, _, emailService, user, _ := newReminderFixture(sunday)
		settingsRepo.settings = []*entity.UserSettings{entity.NewUserSettings(user.ID)}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ReportsQueued != 1 {
			t.Fatalf("expected 1 report queued, got %d", output.ReportsQueued)
		}
		if emailService.reports[0].UserEmail != "reminder@example.com" {
			t.Errorf("expected user email on report, got %s", emailService.reports[0].UserEmail)
		}
	})

	t.Run("no weekly report on other days", func(t *testing.T) {
		uc, settingsRepo, _, emailService, user, _ := newReminderFixture(now)
		settingsRepo.settings = []*entity.UserSettings{entity.NewUserSettings(user.ID)}

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ReportsQueued != 0 || len(emailService.reports) != 0 {
			t.Errorf("expected no reports on a Wednesday, got %d", len(emailService.reports))
		}
	})
}
