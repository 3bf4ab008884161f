// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitType distinguishes habits the user wants to develop from habits
// the user wants to eliminate.
type HabitType string

const (
	HabitTypeBuild HabitType = "build"
	HabitTypeBreak HabitType = "break"
)

// IsValidHabitType reports whether the given type is an accepted value.
func IsValidHabitType(t HabitType) bool {
	return t == HabitTypeBuild || t == HabitTypeBreak
}

// Frequency represents how often a habit is scheduled.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// IsValidFrequency reports whether the given frequency is an accepted value.
func IsValidFrequency(f Frequency) bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyCustom
}

// Habit represents a recurring action attached to exactly one goal.
// A habit is live only while both it and its goal are active; deleting
// the goal cascade-deactivates its habits.
type Habit struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	GoalID           uuid.UUID
	Name             string
	Description      string
	Type             HabitType
	Frequency        Frequency
	PreferredTime    string
	Weekday          *time.Weekday // scheduling day for weekly habits
	Cue              string
	Reward           string
	Notes            string
	RemindersEnabled bool
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewHabit creates a new active Habit entity under the given goal.
func NewHabit(userID, goalID uuid.UUID, name string, habitType HabitType, frequency Frequency) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    goalID,
		Name:      name,
		Type:      habitType,
		Frequency: frequency,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HabitWithGoal pairs a habit with display fields of its owning goal.
type HabitWithGoal struct {
	Habit     *Habit
	GoalTitle string
	GoalColor string
}
