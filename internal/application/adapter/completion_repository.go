// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// CompletionRepository defines the interface for habit completion persistence operations.
type CompletionRepository interface {
	// Create inserts a completion. Returns ErrCompletionConflict when a
	// completion already exists for the same habit and date.
	Create(ctx context.Context, completion *entity.HabitCompletion) error

	// FindByHabitAndDate retrieves the completion for a habit on a
	// specific calendar date, if any.
	FindByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error)

	// DeleteByHabitAndDate removes the completion for a habit on a
	// specific calendar date.
	DeleteByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) error

	// FindByHabitSince retrieves completions for one habit dated on or
	// after the given date, newest first.
	FindByHabitSince(ctx context.Context, habitID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error)

	// FindDatesByUserSince retrieves completion dates for all of a
	// user's habits on or after the given date, grouped by habit id.
	FindDatesByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (map[uuid.UUID][]time.Time, error)
}
