// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/domain/entity"
	domainerror "github.com/habitflow/backend/internal/domain/error"
)

// GeminiService implements the HabitSuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestHabits generates habit suggestions for a goal.
func (s *GeminiService) SuggestHabits(ctx context.Context, request *adapter.HabitSuggestionRequest) ([]*adapter.HabitSuggestion, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrAIDisabled
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Get the model
	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	// Build the prompt
	prompt := s.buildPrompt(request)

	// Generate response
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if strings.Contains(err.Error(), "429") {
			return nil, domainerror.ErrAIRateLimited
		}
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	// Parse response
	suggestions, err := s.parseResponse(resp, request.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestions, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.HabitSuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a behavioral science coach specialized in habit formation. Your task is to suggest small, concrete daily or weekly habits that help a user reach a personal goal.

For each habit you must:
1. Keep the habit small enough to complete in under 15 minutes
2. Anchor it to an existing routine when possible (the cue)
3. Pair it with an immediate reward

RULES:
- "type" is "build" for a habit to develop or "break" for a habit to stop
- "frequency" is "daily" or "weekly"
- "preferred_time" is a short human label like "7:00 AM" or "After lunch"
- Do not repeat habits the user already has
- Keep names under 60 characters and descriptions under 200 characters

GOAL:
`)

	sb.WriteString(fmt.Sprintf("- Title: %s\n", request.GoalTitle))
	if request.GoalDescription != "" {
		sb.WriteString(fmt.Sprintf("- Description: %s\n", request.GoalDescription))
	}
	sb.WriteString(fmt.Sprintf("- Category: %s\n", request.GoalCategory))

	sb.WriteString("\nEXISTING HABITS:\n")
	if len(request.ExistingHabits) > 0 {
		for _, name := range request.ExistingHabits {
			sb.WriteString(fmt.Sprintf("- %s\n", name))
		}
	} else {
		sb.WriteString("(none yet)\n")
	}

	sb.WriteString(fmt.Sprintf(`
Respond with a JSON array of exactly %d suggestions. Each suggestion must have:
{
  "name": "short habit name",
  "description": "what to do, concretely",
  "type": "build" | "break",
  "frequency": "daily" | "weekly",
  "preferred_time": "short time label",
  "cue": "existing routine or trigger to anchor the habit to",
  "reward": "immediate reward after completing the habit",
  "reasoning": "one sentence on why this habit serves the goal"
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`, request.Count))

	return sb.String()
}

// geminiHabitSuggestion represents the raw response from Gemini.
type geminiHabitSuggestion struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Frequency     string `json:"frequency"`
	PreferredTime string `json:"preferred_time"`
	Cue           string `json:"cue"`
	Reward        string `json:"reward"`
	Reasoning     string `json:"reasoning"`
}

// parseResponse parses the Gemini response into HabitSuggestions.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse, count int) ([]*adapter.HabitSuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, domainerror.ErrAIInvalidResponse
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, domainerror.ErrAIInvalidResponse
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	// Parse JSON
	var raw []geminiHabitSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	// Convert to suggestions
	suggestions := make([]*adapter.HabitSuggestion, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			continue // Skip unnamed suggestions
		}

		suggestion := &adapter.HabitSuggestion{
			Name:          r.Name,
			Description:   r.Description,
			Type:          entity.HabitType(r.Type),
			Frequency:     entity.Frequency(r.Frequency),
			PreferredTime: r.PreferredTime,
			Cue:           r.Cue,
			Reward:        r.Reward,
			Reasoning:     r.Reasoning,
		}

		// Validate habit type
		if !entity.IsValidHabitType(suggestion.Type) {
			suggestion.Type = entity.HabitTypeBuild
		}

		// Validate frequency
		switch suggestion.Frequency {
		case entity.FrequencyDaily, entity.FrequencyWeekly:
			// Valid
		default:
			suggestion.Frequency = entity.FrequencyDaily
		}

		suggestions = append(suggestions, suggestion)
		if len(suggestions) == count {
			break
		}
	}

	if len(suggestions) == 0 {
		return nil, domainerror.ErrAIInvalidResponse
	}

	return suggestions, nil
}
