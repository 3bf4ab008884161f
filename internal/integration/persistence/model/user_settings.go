// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database.
type UserSettingsModel struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	ReminderTime         string    `gorm:"type:varchar(5);not null;default:'09:00'"`
	WeeklyReportEnabled  bool      `gorm:"not null;default:true"`
	Timezone             string    `gorm:"type:varchar(50);not null;default:'UTC'"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		UserID:               m.UserID,
		NotificationsEnabled: m.NotificationsEnabled,
		ReminderTime:         m.ReminderTime,
		WeeklyReportEnabled:  m.WeeklyReportEnabled,
		Timezone:             m.Timezone,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// SettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func SettingsFromEntity(s *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		UserID:               s.UserID,
		NotificationsEnabled: s.NotificationsEnabled,
		ReminderTime:         s.ReminderTime,
		WeeklyReportEnabled:  s.WeeklyReportEnabled,
		Timezone:             s.Timezone,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
