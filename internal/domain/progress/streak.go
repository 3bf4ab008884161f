package progress

import (
	"math"
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

// Streak returns the current consecutive-day completion streak for one
// habit, given its completion dates and today's date.
//
// The walk starts at today, or at yesterday when today is not yet
// completed, so an open streak is not broken by a day that has not
// happened yet. It then counts backward one calendar day at a time and
// stops at the first gap.
func Streak(completions []time.Time, today time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	completed := make(map[time.Time]struct{}, len(completions))
	for _, c := range completions {
		completed[entity.NormalizeDate(c)] = struct{}{}
	}

	day := entity.NormalizeDate(today)
	if _, ok := completed[day]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := completed[day]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// GoalStreak derives a goal's streak as the rounded arithmetic mean of
// its active habits' streaks. A goal with no active habits has streak 0.
func GoalStreak(habitStreaks []int) int {
	if len(habitStreaks) == 0 {
		return 0
	}
	sum := 0
	for _, s := range habitStreaks {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(habitStreaks))))
}
