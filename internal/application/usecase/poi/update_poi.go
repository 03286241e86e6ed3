package poi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// UpdatePoiInput represents the input for updating a point of interest.
type UpdatePoiInput struct {
	UserID    uuid.UUID
	PoiID     uuid.UUID
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
	Category  string
	Notes     string
}

// UpdatePoiOutput represents the output of updating a point of interest.
type UpdatePoiOutput struct {
	Poi *PoiOutput
}

// UpdatePoiUseCase handles point-of-interest updates.
type UpdatePoiUseCase struct {
	poiRepo   adapter.PoiRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewUpdatePoiUseCase creates a new UpdatePoiUseCase instance.
func NewUpdatePoiUseCase(
	poiRepo adapter.PoiRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *UpdatePoiUseCase {
	return &UpdatePoiUseCase{
		poiRepo:   poiRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute performs the update.
func (uc *UpdatePoiUseCase) Execute(ctx context.Context, input UpdatePoiInput) (*UpdatePoiOutput, error) {
	if err := validatePoiName(input.Name); err != nil {
		return nil, err
	}

	poi, err := uc.poiRepo.FindByID(ctx, input.PoiID)
	if err != nil || poi == nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodePoiNotFound,
			"point of interest not found",
			domainerror.ErrPoiNotFound,
		)
	}

	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, poi.TripID, input.UserID); err != nil {
		return nil, err
	}

	poi.Name = strings.TrimSpace(input.Name)
	poi.Address = strings.TrimSpace(input.Address)
	poi.Latitude = input.Latitude
	poi.Longitude = input.Longitude
	poi.Category = input.Category
	poi.Notes = input.Notes
	poi.UpdatedAt = time.Now().UTC()

	if err := uc.poiRepo.Update(ctx, poi); err != nil {
		return nil, fmt.Errorf("failed to update point of interest: %w", err)
	}

	return &UpdatePoiOutput{Poi: buildPoiOutput(poi)}, nil
}
