// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habitflow/backend/internal/domain/entity"
)

// ToggleCompletionRequest represents the request body for the completion toggle.
type ToggleCompletionRequest struct {
	Date *string `json:"date"` // "2006-01-02", optional, defaults to today
	Note string  `json:"note" binding:"max=500"`
}

// CompletionResponse represents a completion in API responses.
type CompletionResponse struct {
	ID            string    `json:"id"`
	HabitID       string    `json:"habit_id"`
	CompletedDate string    `json:"completed_date"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToggleCompletionResponse represents the response for the completion toggle.
type ToggleCompletionResponse struct {
	Completed  bool                `json:"completed"`
	Date       string              `json:"date"`
	Completion *CompletionResponse `json:"completion,omitempty"`
}

// CompletionListResponse represents the response for listing completions.
type CompletionListResponse struct {
	Completions []CompletionResponse `json:"completions"`
}

// ToCompletionResponse converts a domain HabitCompletion entity to a
// CompletionResponse DTO.
func ToCompletionResponse(c *entity.HabitCompletion) CompletionResponse {
	return CompletionResponse{
		ID:            c.ID.String(),
		HabitID:       c.HabitID.String(),
		CompletedDate: c.CompletedDate.Format(dateLayout),
		Note:          c.Note,
		CreatedAt:     c.CreatedAt,
	}
}

// ToCompletionListResponse converts domain HabitCompletion entities to a
// CompletionListResponse DTO.
func ToCompletionListResponse(completions []*entity.HabitCompletion) CompletionListResponse {
	items := make([]CompletionResponse, len(completions))
	for i, c := range completions {
		items[i] = ToCompletionResponse(c)
	}
	return CompletionListResponse{Completions: items}
}
