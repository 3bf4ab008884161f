// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// reminderTimeRegex matches 24h clock times like "09:00" or "21:30".
var reminderTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// UpdateSettingsInput represents the input for updating user settings.
type UpdateSettingsInput struct {
	UserID               uuid.UUID
	NotificationsEnabled *bool   // Optional
	ReminderTime         *string // Optional
	WeeklyReportEnabled  *bool   // Optional
	Timezone             *string // Optional
}

// UpdateSettingsOutput represents the output of updating user settings.
type UpdateSettingsOutput struct {
	Settings *entity.UserSettings
}

// UpdateSettingsUseCase handles updating user settings.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the settings update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// Update reminder time if provided
	if input.ReminderTime != nil {
		if !reminderTimeRegex.MatchString(*input.ReminderTime) {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidReminderTime,
				"reminder time must be in HH:MM format",
				domainerror.ErrInvalidReminderTime,
			)
		}
		settings.ReminderTime = *input.ReminderTime
	}

	// Update timezone if provided
	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidTimezone,
				"unknown timezone",
				domainerror.ErrInvalidTimezone,
			)
		}
		settings.Timezone = *input.Timezone
	}

	if input.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.WeeklyReportEnabled != nil {
		settings.WeeklyReportEnabled = *input.WeeklyReportEnabled
	}

	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{
		Settings: settings,
	}, nil
}
