// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create creates a new habit in the database.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindActiveByUserID retrieves all active habits for a user whose
	// goal is also active, newest first, with goal display fields.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.HabitWithGoal, error)

	// FindActiveByGoalID retrieves all active habits under one goal.
	FindActiveByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Habit, error)

	// FindRemindableByUserID retrieves active habits with reminders
	// enabled for the reminder email worker.
	FindRemindableByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// Update updates an existing habit in the database.
	Update(ctx context.Context, habit *entity.Habit) error

	// Deactivate soft-deletes a habit.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
