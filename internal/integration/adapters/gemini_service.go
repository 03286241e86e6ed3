// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/trip-planner/backend/internal/application/adapter"
)

// expenseCategories are the categories the model is allowed to answer with.
var expenseCategories = []string{
	"food",
	"transport",
	"accommodation",
	"activities",
	"shopping",
	"other",
}

// GeminiService implements the CategorySuggestionService using Google Gemini.
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

// SuggestCategory classifies an expense description into one of the known
// expense categories.
func (s *GeminiService) SuggestCategory(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
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
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	// Build the prompt
	prompt := s.buildPrompt(request)

	// Generate response
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	// Parse response
	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the classification prompt for Gemini.
func (s *GeminiService) buildPrompt(request adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString("You classify travel expenses for a group trip-planning app.\n\n")
	sb.WriteString("Classify the expense description below into exactly one of these categories:\n")
	for _, category := range expenseCategories {
		sb.WriteString("- ")
		sb.WriteString(category)
		sb.WriteString("\n")
	}
	sb.WriteString("\nRULES:\n")
	sb.WriteString("- Answer with one category from the list, nothing else\n")
	sb.WriteString("- Use \"other\" only when no category fits\n")
	sb.WriteString("- Restaurants, groceries, bars, and cafes are \"food\"\n")
	sb.WriteString("- Taxis, fuel, parking, flights, trains, and transit passes are \"transport\"\n")
	sb.WriteString("- Hotels, rentals, and campsites are \"accommodation\"\n")
	sb.WriteString("- Tours, tickets, museums, and sports are \"activities\"\n\n")

	if request.Destination != "" {
		fmt.Fprintf(&sb, "The trip destination is %s; merchant names may appear in the local language.\n\n", request.Destination)
	}

	fmt.Fprintf(&sb, "Expense description: %q\n\n", request.Description)

	sb.WriteString(`Respond with JSON in this exact format:
{
  "category": "one of the listed categories",
  "confidence": 0.0,
  "reasoning": "one short sentence"
}`)

	return sb.String()
}

// geminiSuggestion mirrors the JSON shape the model is asked to produce.
type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse extracts the suggestion from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.CategorySuggestionResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var jsonText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			jsonText += string(text)
		}
	}

	// Strip markdown fences the model sometimes adds despite the MIME type
	jsonText = strings.TrimSpace(jsonText)
	jsonText = strings.TrimPrefix(jsonText, "```json")
	jsonText = strings.TrimPrefix(jsonText, "```")
	jsonText = strings.TrimSuffix(jsonText, "```")
	jsonText = strings.TrimSpace(jsonText)

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(jsonText), &suggestion); err != nil {
		return nil, fmt.Errorf("invalid JSON from gemini: %w", err)
	}

	category := strings.ToLower(strings.TrimSpace(suggestion.Category))
	if !isKnownCategory(category) {
		category = "other"
	}

	confidence := suggestion.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &adapter.CategorySuggestionResult{
		Category:   category,
		Confidence: confidence,
		Reasoning:  strings.TrimSpace(suggestion.Reasoning),
	}, nil
}

// isKnownCategory reports whether the model answered with a listed category.
func isKnownCategory(category string) bool {
	for _, known := range expenseCategories {
		if category == known {
			return true
		}
	}
	return false
}
