// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitCompletion records that a habit was performed on a calendar date.
// At most one completion exists per (habit, date) pair; the toggle
// operation inserts or deletes rows, never updates them.
type HabitCompletion struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	HabitID       uuid.UUID
	CompletedDate time.Time // calendar date, truncated to midnight UTC
	Note          string
	CreatedAt     time.Time
}

// NewHabitCompletion creates a completion for the given habit and date.
// The date is normalized to midnight UTC so equality checks compare
// calendar days, not instants.
func NewHabitCompletion(userID, habitID uuid.UUID, date time.Time, note string) *HabitCompletion {
	return &HabitCompletion{
		ID:            uuid.New(),
		UserID:        userID,
		HabitID:       habitID,
		CompletedDate: NormalizeDate(date),
		Note:          note,
		CreatedAt:     time.Now().UTC(),
	}
}

// NormalizeDate truncates a timestamp to its calendar date at midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TodayIn returns the calendar date of the given instant as observed in
// loc, encoded as a midnight-UTC date value so it compares directly
// with normalized completion dates.
func TodayIn(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
