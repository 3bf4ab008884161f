// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habitflow/backend/internal/application/usecase/habit"
	"github.com/habitflow/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	GoalID           string `json:"goal_id" binding:"required,uuid"`
	Name             string `json:"name" binding:"required,min=1,max=200"`
	Description      string `json:"description" binding:"max=1000"`
	Type             string `json:"type" binding:"required,oneof=build break"`
	Frequency        string `json:"frequency" binding:"required,oneof=daily weekly custom"`
	PreferredTime    string `json:"preferred_time" binding:"max=50"`
	Weekday          *int   `json:"weekday" binding:"omitempty,min=0,max=6"` // 0 = Sunday
	Cue              string `json:"cue" binding:"max=500"`
	Reward           string `json:"reward" binding:"max=500"`
	Notes            string `json:"notes" binding:"max=1000"`
	RemindersEnabled bool   `json:"reminders_enabled"`
}

// UpdateHabitRequest represents the request body for habit updates.
// All fields are optional; absent fields are left unchanged.
type UpdateHabitRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description      *string `json:"description" binding:"omitempty,max=1000"`
	Type             *string `json:"type" binding:"omitempty,oneof=build break"`
	Frequency        *string `json:"frequency" binding:"omitempty,oneof=daily weekly custom"`
	PreferredTime    *string `json:"preferred_time" binding:"omitempty,max=50"`
	Weekday          *int    `json:"weekday" binding:"omitempty,min=0,max=6"`
	Cue              *string `json:"cue" binding:"omitempty,max=500"`
	Reward           *string `json:"reward" binding:"omitempty,max=500"`
	Notes            *string `json:"notes" binding:"omitempty,max=1000"`
	RemindersEnabled *bool   `json:"reminders_enabled"`
}

// HabitResponse represents a habit in API responses.
type HabitResponse struct {
	ID               string    `json:"id"`
	GoalID           string    `json:"goal_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Type             string    `json:"type"`
	Frequency        string    `json:"frequency"`
	PreferredTime    string    `json:"preferred_time,omitempty"`
	Weekday          *int      `json:"weekday,omitempty"`
	Cue              string    `json:"cue,omitempty"`
	Reward           string    `json:"reward,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	RemindersEnabled bool      `json:"reminders_enabled"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HabitSummaryResponse represents a habit with goal display fields and
// derived progress in list responses.
type HabitSummaryResponse struct {
	HabitResponse
	GoalTitle      string `json:"goal_title"`
	GoalColor      string `json:"goal_color,omitempty"`
	DueToday       bool   `json:"due_today"`
	CompletedToday bool   `json:"completed_today"`
	Streak         int    `json:"streak"`
	CompletionRate int    `json:"completion_rate"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitSummaryResponse `json:"habits"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit) HabitResponse {
	resp := HabitResponse{
		ID:               h.ID.String(),
		GoalID:           h.GoalID.String(),
		Name:             h.Name,
		Description:      h.Description,
		Type:             string(h.Type),
		Frequency:        string(h.Frequency),
		PreferredTime:    h.PreferredTime,
		Cue:              h.Cue,
		Reward:           h.Reward,
		Notes:            h.Notes,
		RemindersEnabled: h.RemindersEnabled,
		IsActive:         h.IsActive,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
	if h.Weekday != nil {
		weekday := int(*h.Weekday)
		resp.Weekday = &weekday
	}
	return resp
}

// ToHabitResponses converts domain Habit entities to HabitResponse DTOs.
func ToHabitResponses(habits []*entity.Habit) []HabitResponse {
	responses := make([]HabitResponse, len(habits))
	for i, h := range habits {
		responses[i] = ToHabitResponse(h)
	}
	return responses
}

// ToHabitListResponse converts habit outputs to a HabitListResponse DTO.
func ToHabitListResponse(habits []*habit.HabitOutput) HabitListResponse {
	items := make([]HabitSummaryResponse, len(habits))
	for i, h := range habits {
		items[i] = HabitSummaryResponse{
			HabitResponse:  ToHabitResponse(h.Habit),
			GoalTitle:      h.GoalTitle,
			GoalColor:      h.GoalColor,
			DueToday:       h.DueToday,
			CompletedToday: h.CompletedToday,
			Streak:         h.Streak,
			CompletionRate: h.CompletionRate,
		}
	}
	return HabitListResponse{Habits: items}
}
