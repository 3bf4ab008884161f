package progress

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// HabitStatus is a habit together with its derived metrics for one day.
type HabitStatus struct {
	Habit          *entity.Habit
	DueToday       bool
	CompletedToday bool
	Streak         int
	CompletionRate int
}

// GoalStatus is a goal together with its derived metrics for one day.
// TotalHabitsToday counts only the habits due today, not all habits.
type GoalStatus struct {
	Goal               *entity.Goal
	Habits             []HabitStatus
	Streak             int
	TotalHabitsToday   int
	CompletedToday     int
	ProgressPercentage int
}

// Summary is the dashboard aggregate across all of a user's goals,
// computed against a single "today" reference.
type Summary struct {
	TotalGoals      int
	CompletedToday  int
	LongestStreak   int
	OverallProgress int
	Goals           []GoalStatus
}

// GoalProgress returns round(100 * completedToday / dueToday), or 0
// when no habits are due today.
func GoalProgress(completedToday, dueToday int) int {
	if dueToday <= 0 {
		return 0
	}
	return int(math.Round(float64(completedToday) / float64(dueToday) * 100))
}

// BuildGoalStatus computes all derived metrics for one goal given its
// habits and each habit's completion dates.
func BuildGoalStatus(goal *entity.Goal, habits []*entity.Habit, completions map[uuid.UUID][]time.Time, today time.Time) GoalStatus {
	day := entity.NormalizeDate(today)

	status := GoalStatus{Goal: goal, Habits: make([]HabitStatus, 0, len(habits))}
	streaks := make([]int, 0, len(habits))

	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		dates := completions[h.ID]

		hs := HabitStatus{
			Habit:          h,
			DueToday:       IsDueOn(h, day),
			CompletedToday: completedOn(dates, day),
			Streak:         Streak(dates, day),
			CompletionRate: CompletionRate(dates, day),
		}
		status.Habits = append(status.Habits, hs)
		streaks = append(streaks, hs.Streak)

		if hs.DueToday {
			status.TotalHabitsToday++
			if hs.CompletedToday {
				status.CompletedToday++
			}
		}
	}

	status.Streak = GoalStreak(streaks)
	status.ProgressPercentage = GoalProgress(status.CompletedToday, status.TotalHabitsToday)
	return status
}

// BuildSummary computes the full dashboard aggregate: per-goal statuses
// plus the user-level totals. A user with no goals gets an all-zero
// summary. Habits are grouped by their goal id; habits of inactive
// goals are ignored.
func BuildSummary(goals []*entity.Goal, habits []*entity.Habit, completions map[uuid.UUID][]time.Time, today time.Time) *Summary {
	byGoal := make(map[uuid.UUID][]*entity.Habit, len(goals))
	for _, h := range habits {
		byGoal[h.GoalID] = append(byGoal[h.GoalID], h)
	}

	summary := &Summary{Goals: make([]GoalStatus, 0, len(goals))}
	progressSum := 0

	for _, g := range goals {
		if !g.IsActive {
			continue
		}
		gs := BuildGoalStatus(g, byGoal[g.ID], completions, today)
		summary.Goals = append(summary.Goals, gs)

		summary.TotalGoals++
		summary.CompletedToday += gs.CompletedToday
		progressSum += gs.ProgressPercentage

		for _, hs := range gs.Habits {
			if hs.Streak > summary.LongestStreak {
				summary.LongestStreak = hs.Streak
			}
		}
	}

	if summary.TotalGoals > 0 {
		summary.OverallProgress = int(math.Round(float64(progressSum) / float64(summary.TotalGoals)))
	}
	return summary
}

func completedOn(completions []time.Time, day time.Time) bool {
	for _, c := range completions {
		if entity.NormalizeDate(c).Equal(day) {
			return true
		}
	}
	return false
}
