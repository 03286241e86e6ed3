package poi

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
)

// CreatePoiInput represents the input for saving a point of interest.
type CreatePoiInput struct {
	UserID    uuid.UUID
	TripID    uuid.UUID
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
	Category  string
	Notes     string
}

// CreatePoiOutput represents the output of saving a point of interest.
type CreatePoiOutput struct {
	Poi *PoiOutput
}

// CreatePoiUseCase handles saving a point of interest to a trip.
type CreatePoiUseCase struct {
	poiRepo   adapter.PoiRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewCreatePoiUseCase creates a new CreatePoiUseCase instance.
func NewCreatePoiUseCase(
	poiRepo adapter.PoiRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *CreatePoiUseCase {
	return &CreatePoiUseCase{
		poiRepo:   poiRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute performs the save.
func (uc *CreatePoiUseCase) Execute(ctx context.Context, input CreatePoiInput) (*CreatePoiOutput, error) {
	if err := validatePoiName(input.Name); err != nil {
		return nil, err
	}

	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID); err != nil {
		return nil, err
	}

	poi := entity.NewPointOfInterest(
		input.TripID,
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Address),
		input.Latitude,
		input.Longitude,
		input.Category,
		input.Notes,
		input.UserID,
	)

	if err := uc.poiRepo.Create(ctx, poi); err != nil {
		return nil, fmt.Errorf("failed to create point of interest: %w", err)
	}

	return &CreatePoiOutput{Poi: buildPoiOutput(poi)}, nil
}
