// Package completion contains habit completion use cases.
package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
)

// userToday resolves "today" as a calendar date in the user's configured
// timezone.
func userToday(ctx context.Context, settingsRepo adapter.SettingsRepository, userID uuid.UUID, now func() time.Time) (time.Time, error) {
	settings, err := settingsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load user settings: %w", err)
	}
	return entity.TodayIn(now(), settings.Location()), nil
}
