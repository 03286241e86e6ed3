package poi

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// DeletePoiInput represents the input for deleting a point of interest.
type DeletePoiInput struct {
	UserID uuid.UUID
	PoiID  uuid.UUID
}

// DeletePoiUseCase handles point-of-interest deletion.
type DeletePoiUseCase struct {
	poiRepo   adapter.PoiRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewDeletePoiUseCase creates a new DeletePoiUseCase instance.
func NewDeletePoiUseCase(
	poiRepo adapter.PoiRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *DeletePoiUseCase {
	return &DeletePoiUseCase{
		poiRepo:   poiRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute performs the deletion.
func (uc *DeletePoiUseCase) Execute(ctx context.Context, input DeletePoiInput) error {
	poi, err := uc.poiRepo.FindByID(ctx, input.PoiID)
	if err != nil || poi == nil {
		return domainerror.NewTripError(
			domainerror.ErrCodePoiNotFound,
			"point of interest not found",
			domainerror.ErrPoiNotFound,
		)
	}

	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, poi.TripID, input.UserID); err != nil {
		return err
	}

	if err := uc.poiRepo.Delete(ctx, input.PoiID); err != nil {
		return fmt.Errorf("failed to delete point of interest: %w", err)
	}
	return nil
}
