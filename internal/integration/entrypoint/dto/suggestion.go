// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habitflow/backend/internal/application/adapter"
)

// SuggestHabitsRequest represents the request body for AI habit suggestions.
type SuggestHabitsRequest struct {
	GoalID string `json:"goal_id" binding:"required,uuid"`
	Count  int    `json:"count" binding:"omitempty,min=1,max=10"`
}

// HabitSuggestionResponse represents one suggested habit.
type HabitSuggestionResponse struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type"`
	Frequency     string `json:"frequency"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Cue           string `json:"cue,omitempty"`
	Reward        string `json:"reward,omitempty"`
	Reasoning     string `json:"reasoning,omitempty"`
}

// SuggestHabitsResponse represents the response for AI habit suggestions.
type SuggestHabitsResponse struct {
	Suggestions []HabitSuggestionResponse `json:"suggestions"`
}

// ToSuggestHabitsResponse converts habit suggestions to a
// SuggestHabitsResponse DTO.
func ToSuggestHabitsResponse(suggestions []*adapter.HabitSuggestion) SuggestHabitsResponse {
	items := make([]HabitSuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		items[i] = HabitSuggestionResponse{
			Name:          s.Name,
			Description:   s.Description,
			Type:          string(s.Type),
			Frequency:     string(s.Frequency),
			PreferredTime: s.PreferredTime,
			Cue:           s.Cue,
			Reward:        s.Reward,
			Reasoning:     s.Reasoning,
		}
	}
	return SuggestHabitsResponse{Suggestions: items}
}
