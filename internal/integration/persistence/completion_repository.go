// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/persistence/model"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// completionRepository implements the adapter.CompletionRepository interface.
type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new completion repository instance.
func NewCompletionRepository(db *gorm.DB) adapter.CompletionRepository {
	return &completionRepository{
		db: db,
	}
}

// Create inserts a completion. A unique-index violation on
// (habit_id, completed_date) maps to ErrCompletionConflict so a lost
// toggle race is reported instead of recorded twice.
func (r *completionRepository) Create(ctx context.Context, completion *entity.HabitCompletion) error {
	completionModel := model.CompletionFromEntity(completion)
	result := r.db.WithContext(ctx).Create(completionModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCompletionConflict
		}
		return result.Error
	}
	return nil
}

// FindByHabitAndDate retrieves the completion for a habit on a specific
// calendar date, if any.
func (r *completionRepository) FindByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	var completionModel model.HabitCompletionModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND completed_date = ?", habitID, entity.NormalizeDate(date)).
		First(&completionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCompletionNotFound
		}
		return nil, result.Error
	}
	return completionModel.ToEntity(), nil
}

// DeleteByHabitAndDate removes the completion for a habit on a specific
// calendar date.
func (r *completionRepository) DeleteByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND completed_date = ?", habitID, entity.NormalizeDate(date)).
		Delete(&model.HabitCompletionModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByHabitSince retrieves completions for one habit dated on or
// after the given date, newest first.
func (r *completionRepository) FindByHabitSince(ctx context.Context, habitID uuid.UUID, since time.Time) ([]*entity.HabitCompletion, error) {
	var completionModels []model.HabitCompletionModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND completed_date >= ?", habitID, entity.NormalizeDate(since)).
		Order("completed_date DESC").
		Find(&completionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	completions := make([]*entity.HabitCompletion, len(completionModels))
	for i, cm := range completionModels {
		completions[i] = cm.ToEntity()
	}
	return completions, nil
}

// FindDatesByUserSince retrieves completion dates for all of a user's
// habits on or after the given date, grouped by habit id.
func (r *completionRepository) FindDatesByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) (map[uuid.UUID][]time.Time, error) {
	var completionModels []model.HabitCompletionModel
	result := r.db.WithContext(ctx).
		Select("habit_id, completed_date").
		Where("user_id = ? AND completed_date >= ?", userID, entity.NormalizeDate(since)).
		Find(&completionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	dates := make(map[uuid.UUID][]time.Time, len(completionModels))
	for _, cm := range completionModels {
		dates[cm.HabitID] = append(dates[cm.HabitID], entity.NormalizeDate(cm.CompletedDate))
	}
	return dates, nil
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation. The sqlite driver used in tests reports constraint errors
// through gorm's ErrDuplicatedKey translation instead.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
