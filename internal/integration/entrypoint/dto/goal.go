// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habitflow/backend/internal/application/usecase/goal"
	"github.com/habitflow/backend/internal/domain/entity"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title          string  `json:"title" binding:"required,min=1,max=200"`
	Description    string  `json:"description" binding:"max=1000"`
	Category       string  `json:"category" binding:"required"`
	Color          string  `json:"color" binding:"max=20"`
	TargetDate     *string `json:"target_date"` // "2006-01-02", optional
	MotivationNote string  `json:"motivation_note" binding:"max=1000"`
}

// UpdateGoalRequest represents the request body for goal updates.
// All fields are optional; absent fields are left unchanged.
type UpdateGoalRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	Category       *string `json:"category"`
	Color          *string `json:"color" binding:"omitempty,max=20"`
	TargetDate     *string `json:"target_date"`
	MotivationNote *string `json:"motivation_note" binding:"omitempty,max=1000"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	Color          string    `json:"color,omitempty"`
	TargetDate     *string   `json:"target_date,omitempty"`
	MotivationNote string    `json:"motivation_note,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GoalSummaryResponse represents a goal with its derived progress in
// list responses.
type GoalSummaryResponse struct {
	GoalResponse
	Streak             int `json:"streak"`
	TotalHabitsToday   int `json:"total_habits_today"`
	CompletedToday     int `json:"completed_today"`
	ProgressPercentage int `json:"progress_percentage"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalSummaryResponse `json:"goals"`
}

// GoalDetailResponse represents a goal with its active habits.
type GoalDetailResponse struct {
	Goal   GoalResponse    `json:"goal"`
	Habits []HabitResponse `json:"habits"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	resp := GoalResponse{
		ID:             g.ID.String(),
		Title:          g.Title,
		Description:    g.Description,
		Category:       string(g.Category),
		Color:          g.Color,
		MotivationNote: g.MotivationNote,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
	if !g.TargetDate.IsZero() {
		targetDate := g.TargetDate.Format(dateLayout)
		resp.TargetDate = &targetDate
	}
	return resp
}

// ToGoalListResponse converts goal outputs to a GoalListResponse DTO.
func ToGoalListResponse(goals []*goal.GoalOutput) GoalListResponse {
	items := make([]GoalSummaryResponse, len(goals))
	for i, g := range goals {
		items[i] = GoalSummaryResponse{
			GoalResponse:       ToGoalResponse(g.Goal),
			Streak:             g.Streak,
			TotalHabitsToday:   g.TotalHabitsToday,
			CompletedToday:     g.CompletedToday,
			ProgressPercentage: g.ProgressPercentage,
		}
	}
	return GoalListResponse{Goals: items}
}

// ParseDate parses an optional "2006-01-02" date string.
func ParseDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
