package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/habitflow/backend/internal/application/usecase/notification"
)

// Scheduler drives time-of-day email jobs: habit reminders at each
// user's reminder time and weekly reports on Sundays. It ticks faster
// than a minute but runs at most one reminder pass per wall-clock
// minute, matching the minute granularity of reminder times.
type Scheduler struct {
	reminders *notification.EnqueueRemindersUseCase
	interval  time.Duration
}

// NewScheduler creates a new reminder scheduler.
func NewScheduler(reminders *notification.EnqueueRemindersUseCase) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		interval:  20 * time.Second,
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Reminder scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var lastMinute string
	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler shutting down")
			return
		case now := <-ticker.C:
			minute := now.UTC().Format("2006-01-02T15:04")
			if minute == lastMinute {
				continue
			}
			lastMinute = minute

			output, err := s.reminders.Execute(ctx)
			if err != nil {
				slog.Error("Reminder pass failed", "error", err)
				continue
			}
			if output.RemindersQueued > 0 || output.ReportsQueued > 0 {
				slog.Info("Queued reminder emails",
					"reminders", output.RemindersQueued,
					"weekly_reports", output.ReportsQueued,
				)
			}
		}
	}
}
