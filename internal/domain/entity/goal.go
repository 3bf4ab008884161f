// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalCategory represents the life area a goal belongs to.
type GoalCategory string

const (
	GoalCategoryHealth        GoalCategory = "health"
	GoalCategoryEducation     GoalCategory = "education"
	GoalCategoryWellness      GoalCategory = "wellness"
	GoalCategoryWork          GoalCategory = "work"
	GoalCategoryFinance       GoalCategory = "finance"
	GoalCategoryPersonal      GoalCategory = "personal"
	GoalCategoryRelationships GoalCategory = "relationships"
	GoalCategoryHobbies       GoalCategory = "hobbies"
)

// ValidGoalCategories lists all accepted goal categories.
var ValidGoalCategories = []GoalCategory{
	GoalCategoryHealth,
	GoalCategoryEducation,
	GoalCategoryWellness,
	GoalCategoryWork,
	GoalCategoryFinance,
	GoalCategoryPersonal,
	GoalCategoryRelationships,
	GoalCategoryHobbies,
}

// IsValidGoalCategory reports whether the given category is an accepted value.
func IsValidGoalCategory(c GoalCategory) bool {
	for _, valid := range ValidGoalCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// Goal represents a long-term objective a user is working toward.
// A goal owns zero or more habits and is never hard-deleted: deletion
// flips IsActive to false and cascades to the goal's habits.
type Goal struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Description    string
	Category       GoalCategory
	Color          string
	TargetDate     time.Time
	MotivationNote string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewGoal creates a new active Goal entity.
func NewGoal(userID uuid.UUID, title, description string, category GoalCategory, color string, targetDate time.Time, motivationNote string) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Description:    description,
		Category:       category,
		Color:          color,
		TargetDate:     targetDate,
		MotivationNote: motivationNote,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
