// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for settings updates.
// All fields are optional; absent fields are left unchanged.
type UpdateSettingsRequest struct {
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	ReminderTime         *string `json:"reminder_time"`
	WeeklyReportEnabled  *bool   `json:"weekly_report_enabled"`
	Timezone             *string `json:"timezone"`
}

// SettingsResponse represents user settings in API responses.
type SettingsResponse struct {
	NotificationsEnabled bool      `json:"notifications_enabled"`
	ReminderTime         string    `json:"reminder_time"`
	WeeklyReportEnabled  bool      `json:"weekly_report_enabled"`
	Timezone             string    `json:"timezone"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a domain UserSettings entity to a
// SettingsResponse DTO.
func ToSettingsResponse(s *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		NotificationsEnabled: s.NotificationsEnabled,
		ReminderTime:         s.ReminderTime,
		WeeklyReportEnabled:  s.WeeklyReportEnabled,
		Timezone:             s.Timezone,
		UpdatedAt:            s.UpdatedAt,
	}
}
