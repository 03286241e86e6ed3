// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest carries an expense description to classify.
type CategorySuggestionRequest struct {
	Description string
	Destination string
}

// CategorySuggestionResult is the AI's suggested category for an expense.
type CategorySuggestionResult struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggestionService defines the interface for AI-backed expense
// category suggestions. Implementations must degrade to an error rather
// than block expense creation; callers treat failures as "no suggestion".
type CategorySuggestionService interface {
	// SuggestCategory classifies an expense description into one of the
	// known expense categories.
	SuggestCategory(ctx context.Context, request CategorySuggestionRequest) (*CategorySuggestionResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
