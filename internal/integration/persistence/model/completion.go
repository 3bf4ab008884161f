// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// HabitCompletionModel represents the habit_completions table in the
// database. The unique index on (habit_id, completed_date) is the
// authority on the one-completion-per-day invariant.
type HabitCompletionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	HabitID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_completed_date"`
	CompletedDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_completed_date"`
	Note          string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitCompletionModel.
func (HabitCompletionModel) TableName() string {
	return "habit_completions"
}

// ToEntity converts a HabitCompletionModel to a domain HabitCompletion entity.
func (m *HabitCompletionModel) ToEntity() *entity.HabitCompletion {
	return &entity.HabitCompletion{
		ID:            m.ID,
		UserID:        m.UserID,
		HabitID:       m.HabitID,
		CompletedDate: entity.NormalizeDate(m.CompletedDate),
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}

// CompletionFromEntity creates a HabitCompletionModel from a domain HabitCompletion entity.
func CompletionFromEntity(c *entity.HabitCompletion) *HabitCompletionModel {
	return &HabitCompletionModel{
		ID:            c.ID,
		UserID:        c.UserID,
		HabitID:       c.HabitID,
		CompletedDate: c.CompletedDate,
		Note:          c.Note,
		CreatedAt:     c.CreatedAt,
	}
}
