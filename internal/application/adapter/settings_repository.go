// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence operations.
type SettingsRepository interface {
	// FindByUserID retrieves settings for a user. When no record is
	// stored yet it returns default settings without persisting them.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// Save inserts or updates settings for a user.
	Save(ctx context.Context, settings *entity.UserSettings) error

	// FindNotifiable retrieves all stored settings with notifications
	// or weekly reports enabled, for the reminder scheduler.
	FindNotifiable(ctx context.Context) ([]*entity.UserSettings, error)
}
