package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for an AI category suggestion.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	TripID      uuid.UUID
	Description string
}

// SuggestCategoryOutput represents the output of an AI category suggestion.
type SuggestCategoryOutput struct {
	Category   string
	Confidence float64
	Reasoning  string
	Available  bool
}

// SuggestCategoryUseCase asks the AI service which expense category fits a
// description, using the trip's destination as context.
type SuggestCategoryUseCase struct {
	aiService adapter.CategorySuggestionService
	groupRepo adapter.GroupRepository
	tripRepo  adapter.TripRepository
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	aiService adapter.CategorySuggestionService,
	groupRepo adapter.GroupRepository,
	tripRepo adapter.TripRepository,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		aiService: aiService,
		groupRepo: groupRepo,
		tripRepo:  tripRepo,
	}
}

// Execute returns a category suggestion. When the AI service is not
// configured the output carries Available=false instead of an error, so
// clients can fall back to manual selection.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"expense description is required",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}

	trip, err := uc.tripRepo.FindTripByID(ctx, input.TripID)
	if err != nil || trip == nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	isMember, err := uc.groupRepo.IsUserMemberOfGroup(ctx, trip.GroupID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return &SuggestCategoryOutput{Available: false}, nil
	}

	result, err := uc.aiService.SuggestCategory(ctx, adapter.CategorySuggestionRequest{
		Description: input.Description,
		Destination: trip.Destination,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to suggest category: %w", err)
	}

	return &SuggestCategoryOutput{
		Category:   result.Category,
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
		Available:  true,
	}, nil
}
