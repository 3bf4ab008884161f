// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// habitWithGoalRow carries habit columns joined with goal display fields.
type habitWithGoalRow struct {
	model.HabitModel
	GoalTitle string
	GoalColor string
}

// Create creates a new habit in the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a habit by its ID.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHabitNotFound
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindActiveByUserID retrieves all active habits for a user whose goal
// is also active, newest first, with goal display fields.
func (r *habitRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.HabitWithGoal, error) {
	var rows []habitWithGoalRow
	result := r.db.WithContext(ctx).
		Table("habits").
		Select("habits.*, goals.title AS goal_title, goals.color AS goal_color").
		Joins("JOIN goals ON goals.id = habits.goal_id").
		Where("habits.user_id = ? AND habits.is_active = ? AND goals.is_active = ?", userID, true, true).
		Order("habits.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.HabitWithGoal, len(rows))
	for i, row := range rows {
		habits[i] = &entity.HabitWithGoal{
			Habit:     row.HabitModel.ToEntity(),
			GoalTitle: row.GoalTitle,
			GoalColor: row.GoalColor,
		}
	}
	return habits, nil
}

// FindActiveByGoalID retrieves all active habits under one goal.
func (r *habitRepository) FindActiveByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ? AND is_active = ?", goalID, true).
		Order("created_at DESC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits, nil
}

// FindRemindableByUserID retrieves active habits with reminders enabled
// for the reminder email worker.
func (r *habitRepository) FindRemindableByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND reminders_enabled = ?", userID, true, true).
		Order("created_at DESC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits, nil
}

// Update updates an existing habit in the database.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Save(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Deactivate soft-deletes a habit.
func (r *habitRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
