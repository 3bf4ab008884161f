// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habitflow/backend/internal/domain/entity"
)

// HabitSuggestionRequest represents a request for AI habit suggestions.
type HabitSuggestionRequest struct {
	GoalTitle       string
	GoalDescription string
	GoalCategory    entity.GoalCategory
	ExistingHabits  []string
	Count           int
}

// HabitSuggestion represents one suggested habit returned by the AI.
type HabitSuggestion struct {
	Name          string
	Description   string
	Type          entity.HabitType
	Frequency     entity.Frequency
	PreferredTime string
	Cue           string
	Reward        string
	Reasoning     string
}

// HabitSuggestionService defines the interface for AI habit suggestion operations.
type HabitSuggestionService interface {
	// SuggestHabits generates habit suggestions for a goal.
	SuggestHabits(ctx context.Context, request *HabitSuggestionRequest) ([]*HabitSuggestion, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
