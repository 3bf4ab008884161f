// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user preferences as a store-owned record,
// keyed by user id. Exactly one record exists per user, created with
// defaults on first access.
type UserSettings struct {
	UserID               uuid.UUID
	NotificationsEnabled bool
	ReminderTime         string // clock time in "15:04" format
	WeeklyReportEnabled  bool
	Timezone             string // IANA zone name, e.g. "America/New_York"
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewUserSettings creates settings with default values for a user.
func NewUserSettings(userID uuid.UUID) *UserSettings {
	now := time.Now().UTC()
	return &UserSettings{
		UserID:               userID,
		NotificationsEnabled: true,
		ReminderTime:         "09:00",
		WeeklyReportEnabled:  true,
		Timezone:             "UTC",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Location resolves the user's timezone, falling back to UTC when the
// zone name is empty or unknown.
func (s *UserSettings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
