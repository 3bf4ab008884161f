// Package progress computes derived habit metrics: due-today status,
// streaks, completion rates and per-goal progress aggregation. All
// functions are pure; callers load the records and pass a single
// "today" reference so every metric in one response agrees on the date.
package progress

import (
	"strings"
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves a weekday name ("Monday", "monday") to its
// time.Weekday value. The second return is false for anything that is
// not a weekday name, including clock times like "6:00 AM".
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}

// IsDueOn reports whether a habit is scheduled for the given calendar day.
//
// Daily habits are always due. Weekly habits are due only on their
// scheduled weekday: the explicit Weekday field when set, otherwise a
// weekday name stored in PreferredTime by older clients. A weekly habit
// with no recognizable weekday is never due. Custom habits are never
// due; no custom schedule rule exists yet.
func IsDueOn(h *entity.Habit, day time.Time) bool {
	switch h.Frequency {
	case entity.FrequencyDaily:
		return true
	case entity.FrequencyWeekly:
		if h.Weekday != nil {
			return day.Weekday() == *h.Weekday
		}
		if wd, ok := ParseWeekday(h.PreferredTime); ok {
			return day.Weekday() == wd
		}
		return false
	default:
		return false
	}
}

// DueHabits filters habits down to those due on the given day.
// Inactive habits are never due.
func DueHabits(habits []*entity.Habit, day time.Time) []*entity.Habit {
	due := make([]*entity.Habit, 0, len(habits))
	for _, h := range habits {
		if h.IsActive && IsDueOn(h, day) {
			due = append(due, h)
		}
	}
	return due
}
