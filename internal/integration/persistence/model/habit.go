// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID     `gorm:"type:uuid;not null;index"`
	GoalID           uuid.UUID     `gorm:"type:uuid;not null;index"`
	Name             string        `gorm:"type:varchar(255);not null"`
	Description      string        `gorm:"type:text"`
	Type             string        `gorm:"type:varchar(10);not null"`
	Frequency        string        `gorm:"type:varchar(10);not null"`
	PreferredTime    string        `gorm:"type:varchar(50)"`
	Weekday          sql.NullInt16 `gorm:"type:smallint"`
	Cue              string        `gorm:"type:text"`
	Reward           string        `gorm:"type:text"`
	Notes            string        `gorm:"type:text"`
	RemindersEnabled bool          `gorm:"not null;default:false"`
	IsActive         bool          `gorm:"not null;default:true;index"`
	CreatedAt        time.Time     `gorm:"not null"`
	UpdatedAt        time.Time     `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	var weekday *time.Weekday
	if m.Weekday.Valid {
		wd := time.Weekday(m.Weekday.Int16)
		weekday = &wd
	}

	return &entity.Habit{
		ID:               m.ID,
		UserID:           m.UserID,
		GoalID:           m.GoalID,
		Name:             m.Name,
		Description:      m.Description,
		Type:             entity.HabitType(m.Type),
		Frequency:        entity.Frequency(m.Frequency),
		PreferredTime:    m.PreferredTime,
		Weekday:          weekday,
		Cue:              m.Cue,
		Reward:           m.Reward,
		Notes:            m.Notes,
		RemindersEnabled: m.RemindersEnabled,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	var weekday sql.NullInt16
	if habit.Weekday != nil {
		weekday = sql.NullInt16{Int16: int16(*habit.Weekday), Valid: true}
	}

	return &HabitModel{
		ID:               habit.ID,
		UserID:           habit.UserID,
		GoalID:           habit.GoalID,
		Name:             habit.Name,
		Description:      habit.Description,
		Type:             string(habit.Type),
		Frequency:        string(habit.Frequency),
		PreferredTime:    habit.PreferredTime,
		Weekday:          weekday,
		Cue:              habit.Cue,
		Reward:           habit.Reward,
		Notes:            habit.Notes,
		RemindersEnabled: habit.RemindersEnabled,
		IsActive:         habit.IsActive,
		CreatedAt:        habit.CreatedAt,
		UpdatedAt:        habit.UpdatedAt,
	}
}
