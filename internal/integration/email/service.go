// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - HabitFlow"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueHabitReminderEmail queues a habit reminder email.
func (s *Service) QueueHabitReminderEmail(ctx context.Context, input adapter.QueueHabitReminderInput) error {
	subject := fmt.Sprintf("Reminder: %s - HabitFlow", input.HabitName)

	templateData := map[string]interface{}{
		"user_name":      input.UserName,
		"habit_name":     input.HabitName,
		"goal_title":     input.GoalTitle,
		"preferred_time": input.PreferredTime,
		"app_url":        s.appURL(input.AppURL),
	}

	job := entity.NewEmailJob(
		entity.TemplateHabitReminder,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue habit reminder email",
			err,
		)
	}

	return nil
}

// QueueWeeklyReportEmail queues a weekly progress report email.
func (s *Service) QueueWeeklyReportEmail(ctx context.Context, input adapter.QueueWeeklyReportInput) error {
	subject := "Your weekly progress - HabitFlow"

	templateData := map[string]interface{}{
		"user_name":        input.UserName,
		"completed_count":  input.CompletedCount,
		"longest_streak":   input.LongestStreak,
		"overall_progress": input.OverallProgress,
		"app_url":          s.appURL(input.AppURL),
	}

	job := entity.NewEmailJob(
		entity.TemplateWeeklyReport,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue weekly report email",
			err,
		)
	}

	return nil
}

// appURL falls back to the configured base URL when the input carries none.
func (s *Service) appURL(url string) string {
	if url != "" {
		return url
	}
	return s.appBaseURL
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
