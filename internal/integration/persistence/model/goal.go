// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title          string       `gorm:"type:varchar(255);not null"`
	Description    string       `gorm:"type:text"`
	Category       string       `gorm:"type:varchar(30);not null"`
	Color          string       `gorm:"type:varchar(20)"`
	TargetDate     sql.NullTime `gorm:"type:date"`
	MotivationNote string       `gorm:"type:text"`
	IsActive       bool         `gorm:"not null;default:true;index"`
	CreatedAt      time.Time    `gorm:"not null"`
	UpdatedAt      time.Time    `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var targetDate time.Time
	if m.TargetDate.Valid {
		targetDate = m.TargetDate.Time
	}

	return &entity.Goal{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Description:    m.Description,
		Category:       entity.GoalCategory(m.Category),
		Color:          m.Color,
		TargetDate:     targetDate,
		MotivationNote: m.MotivationNote,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var targetDate sql.NullTime
	if !goal.TargetDate.IsZero() {
		targetDate = sql.NullTime{Time: goal.TargetDate, Valid: true}
	}

	return &GoalModel{
		ID:             goal.ID,
		UserID:         goal.UserID,
		Title:          goal.Title,
		Description:    goal.Description,
		Category:       string(goal.Category),
		Color:          goal.Color,
		TargetDate:     targetDate,
		MotivationNote: goal.MotivationNote,
		IsActive:       goal.IsActive,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
