// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	"github.com/habitflow/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindByUserID retrieves settings for a user. Users registered before
// the settings table existed have no row, so a miss returns defaults
// without persisting them.
func (r *settingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	var settingsModel model.UserSettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.NewUserSettings(userID), nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save inserts or updates settings for a user.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.UserSettings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"notifications_enabled", "reminder_time", "weekly_report_enabled", "timezone", "updated_at"}),
		}).
		Create(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindNotifiable retrieves all stored settings with notifications or
// weekly reports enabled. Users without a settings row never opted into
// a reminder time, so defaults are not synthesized here.
func (r *settingsRepository) FindNotifiable(ctx context.Context) ([]*entity.UserSettings, error) {
	var settingsModels []model.UserSettingsModel
	result := r.db.WithContext(ctx).
		Where("notifications_enabled = ? OR weekly_report_enabled = ?", true, true).
		Find(&settingsModels)
	if result.Error != nil {
		return nil, result.Error
	}

	settings := make([]*entity.UserSettings, len(settingsModels))
	for i, sm := range settingsModels {
		settings[i] = sm.ToEntity()
	}
	return settings, nil
}
