package poi

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
)

// ListPoisInput represents the input for listing a trip's points of interest.
type ListPoisInput struct {
	UserID uuid.UUID
	TripID uuid.UUID
}

// ListPoisOutput represents the output of listing points of interest.
type ListPoisOutput struct {
	Pois []*PoiOutput
}

// ListPoisUseCase handles listing a trip's saved points of interest.
type ListPoisUseCase struct {
	poiRepo   adapter.PoiRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewListPoisUseCase creates a new ListPoisUseCase instance.
func NewListPoisUseCase(
	poiRepo adapter.PoiRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *ListPoisUseCase {
	return &ListPoisUseCase{
		poiRepo:   poiRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute lists the trip's points of interest.
func (uc *ListPoisUseCase) Execute(ctx context.Context, input ListPoisInput) (*ListPoisOutput, error) {
	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID); err != nil {
		return nil, err
	}

	pois, err := uc.poiRepo.FindByTripID(ctx, input.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list points of interest: %w", err)
	}

	output := &ListPoisOutput{Pois: make([]*PoiOutput, 0, len(pois))}
	for _, p := range pois {
		output.Pois = append(output.Pois, buildPoiOutput(p))
	}
	return output, nil
}
