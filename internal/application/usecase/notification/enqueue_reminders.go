package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/domain/progress"
)

// EnqueueRemindersOutput reports how many emails one pass queued.
type EnqueueRemindersOutput struct {
	RemindersQueued int
	ReportsQueued   int
}

// EnqueueRemindersUseCase queues habit reminder emails for users whose
// configured reminder time matches the current minute in their own
// timezone, and weekly report emails at the same time on Sundays. The
// scheduler runs it once per minute; the match-on-minute check makes a
// pass fire at most once per user per day.
type EnqueueRemindersUseCase struct {
	settingsRepo   adapter.SettingsRepository
	userRepo       adapter.UserRepository
	goalRepo       adapter.GoalRepository
	habitRepo      adapter.HabitRepository
	completionRepo adapter.CompletionRepository
	emailService   adapter.EmailService
	appBaseURL     string
	now            func() time.Time
}

// NewEnqueueRemindersUseCase creates a new EnqueueRemindersUseCase instance.
func NewEnqueueRemindersUseCase(
	settingsRepo adapter.SettingsRepository,
	userRepo adapter.UserRepository,
	goalRepo adapter.GoalRepository,
	habitRepo adapter.HabitRepository,
	completionRepo adapter.CompletionRepository,
	emailService adapter.EmailService,
	appBaseURL string,
) *EnqueueRemindersUseCase {
	return &EnqueueRemindersUseCase{
		settingsRepo:   settingsRepo,
		userRepo:       userRepo,
		goalRepo:       goalRepo,
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		emailService:   emailService,
		appBaseURL:     appBaseURL,
		now:            time.Now,
	}
}

// Execute runs one reminder pass. A failure for one user never blocks
// the others.
func (uc *EnqueueRemindersUseCase) Execute(ctx context.Context) (*EnqueueRemindersOutput, error) {
	settingsList, err := uc.settingsRepo.FindNotifiable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifiable settings: %w", err)
	}

	output := &EnqueueRemindersOutput{}
	for _, settings := range settingsList {
		local := uc.now().In(settings.Location())
		if local.Format("15:04") != settings.ReminderTime {
			continue
		}

		user, err := uc.userRepo.FindByID(ctx, settings.UserID)
		if err != nil {
			slog.Warn("Skipping reminders for user", "user_id", settings.UserID, "error", err)
			continue
		}

		if settings.NotificationsEnabled {
			queued, err := uc.queueHabitReminders(ctx, user, local)
			if err != nil {
				slog.Warn("Failed to queue habit reminders", "user_id", user.ID, "error", err)
			}
			output.RemindersQueued += queued
		}

		if settings.WeeklyReportEnabled && local.Weekday() == time.Sunday {
			if err := uc.queueWeeklyReport(ctx, user, settings); err != nil {
				slog.Warn("Failed to queue weekly report", "user_id", user.ID, "error", err)
				continue
			}
			output.ReportsQueued++
		}
	}
	return output, nil
}

// queueHabitReminders queues one email per remindable habit due today.
func (uc *EnqueueRemindersUseCase) queueHabitReminders(ctx context.Context, user *entity.User, local time.Time) (int, error) {
	habits, err := uc.habitRepo.FindRemindableByUserID(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to list remindable habits: %w", err)
	}

	goalTitles := make(map[uuid.UUID]string)
	queued := 0
	for _, habit := range progress.DueHabits(habits, local) {
		title, ok := goalTitles[habit.GoalID]
		if !ok {
			goal, err := uc.goalRepo.FindByID(ctx, habit.GoalID)
			if err != nil {
				slog.Warn("Skipping reminder, goal lookup failed", "habit_id", habit.ID, "error", err)
				continue
			}
			title = goal.Title
			goalTitles[habit.GoalID] = title
		}

		err := uc.emailService.QueueHabitReminderEmail(ctx, adapter.QueueHabitReminderInput{
			UserEmail:     user.Email,
			UserName:      user.Name,
			HabitName:     habit.Name,
			GoalTitle:     title,
			PreferredTime: habit.PreferredTime,
			AppURL:        uc.appBaseURL,
		})
		if err != nil {
			return queued, fmt.Errorf("failed to queue reminder for habit %s: %w", habit.ID, err)
		}
		queued++
	}
	return queued, nil
}

// queueWeeklyReport queues one progress report covering the last 7 days.
func (uc *EnqueueRemindersUseCase) queueWeeklyReport(ctx context.Context, user *entity.User, settings *entity.UserSettings) error {
	today := entity.TodayIn(uc.now(), settings.Location())

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to list goals: %w", err)
	}

	withGoals, err := uc.habitRepo.FindActiveByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}
	habits := make([]*entity.Habit, 0, len(withGoals))
	for _, hg := range withGoals {
		habits = append(habits, hg.Habit)
	}

	since := today.AddDate(0, 0, -progress.HistoryWindowDays)
	completions, err := uc.completionRepo.FindDatesByUserSince(ctx, user.ID, since)
	if err != nil {
		return fmt.Errorf("failed to load completions: %w", err)
	}
	summary := progress.BuildSummary(goals, habits, completions, today)

	weekStart := today.AddDate(0, 0, -6)
	completedCount := 0
	for _, dates := range completions {
		for _, d := range dates {
			if !d.Before(weekStart) && !d.After(today) {
				completedCount++
			}
		}
	}

	return uc.emailService.QueueWeeklyReportEmail(ctx, adapter.QueueWeeklyReportInput{
		UserEmail:       user.Email,
		UserName:        user.Name,
		CompletedCount:  completedCount,
		LongestStreak:   summary.LongestStreak,
		OverallProgress: summary.OverallProgress,
		AppURL:          uc.appBaseURL,
	})
}
