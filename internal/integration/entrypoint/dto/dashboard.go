// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habitflow/backend/internal/domain/progress"
)

// DashboardHabitResponse represents a habit read model inside the dashboard.
type DashboardHabitResponse struct {
	HabitResponse
	DueToday       bool `json:"due_today"`
	CompletedToday bool `json:"completed_today"`
	Streak         int  `json:"streak"`
	CompletionRate int  `json:"completion_rate"`
}

// DashboardGoalResponse represents a goal read model inside the dashboard.
type DashboardGoalResponse struct {
	GoalResponse
	Streak             int                      `json:"streak"`
	TotalHabitsToday   int                      `json:"total_habits_today"`
	CompletedToday     int                      `json:"completed_today"`
	ProgressPercentage int                      `json:"progress_percentage"`
	Habits             []DashboardHabitResponse `json:"habits"`
}

// DashboardResponse represents the dashboard aggregate read model.
type DashboardResponse struct {
	Date            string                  `json:"date"`
	TotalGoals      int                     `json:"total_goals"`
	CompletedToday  int                     `json:"completed_today"`
	LongestStreak   int                     `json:"longest_streak"`
	OverallProgress int                     `json:"overall_progress"`
	Goals           []DashboardGoalResponse `json:"goals"`
}

// ToDashboardResponse converts a progress summary to a DashboardResponse DTO.
func ToDashboardResponse(summary *progress.Summary, today time.Time) DashboardResponse {
	goals := make([]DashboardGoalResponse, len(summary.Goals))
	for i, gs := range summary.Goals {
		habits := make([]DashboardHabitResponse, len(gs.Habits))
		for j, hs := range gs.Habits {
			habits[j] = DashboardHabitResponse{
				HabitResponse:  ToHabitResponse(hs.Habit),
				DueToday:       hs.DueToday,
				CompletedToday: hs.CompletedToday,
				Streak:         hs.Streak,
				CompletionRate: hs.CompletionRate,
			}
		}
		goals[i] = DashboardGoalResponse{
			GoalResponse:       ToGoalResponse(gs.Goal),
			Streak:             gs.Streak,
			TotalHabitsToday:   gs.TotalHabitsToday,
			CompletedToday:     gs.CompletedToday,
			ProgressPercentage: gs.ProgressPercentage,
			Habits:             habits,
		}
	}

	return DashboardResponse{
		Date:            today.Format(dateLayout),
		TotalGoals:      summary.TotalGoals,
		CompletedToday:  summary.CompletedToday,
		LongestStreak:   summary.LongestStreak,
		OverallProgress: summary.OverallProgress,
		Goals:           goals,
	}
}
