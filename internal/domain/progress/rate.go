package progress

import (
	"math"
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

// RateWindowDays is the fixed trailing window for completion rates.
const RateWindowDays = 30

// HistoryWindowDays bounds how far back completion history is loaded
// when computing metrics. Streaks longer than this report the cap.
const HistoryWindowDays = 365

// CompletionRate returns the percentage of the trailing 30-day window
// on which the habit was completed: round(100 * completions / 30).
//
// The window is the 30 calendar days ending at today inclusive. The
// result is not capped; the one-completion-per-day invariant keeps it
// at or below 100 in practice.
func CompletionRate(completions []time.Time, today time.Time) int {
	end := entity.NormalizeDate(today)
	start := end.AddDate(0, 0, -(RateWindowDays - 1))

	count := 0
	for _, c := range completions {
		d := entity.NormalizeDate(c)
		if d.Before(start) || d.After(end) {
			continue
		}
		count++
	}

	return int(math.Round(float64(count) / float64(RateWindowDays) * 100))
}
