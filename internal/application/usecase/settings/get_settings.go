// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for fetching user settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of fetching user settings.
type GetSettingsOutput struct {
	Settings *entity.UserSettings
}

// GetSettingsUseCase handles fetching user settings.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the settings fetch. Users without a stored record
// get defaults.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &GetSettingsOutput{
		Settings: settings,
	}, nil
}
