package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// GetTripInput represents the input for fetching a trip.
type GetTripInput struct {
	UserID uuid.UUID
	TripID uuid.UUID
}

// GetTripOutput represents the output of fetching a trip.
type GetTripOutput struct {
	Trip *TripOutput
}

// GetTripUseCase handles fetching a trip with its day schedule.
type GetTripUseCase struct {
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewGetTripUseCase creates a new GetTripUseCase instance.
func NewGetTripUseCase(tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository) *GetTripUseCase {
	return &GetTripUseCase{tripRepo: tripRepo, groupRepo: groupRepo}
}

// Execute fetches the trip. A trip in a group the caller does not belong
// to is reported the same as a missing trip.
func (uc *GetTripUseCase) Execute(ctx context.Context, input GetTripInput) (*GetTripOutput, error) {
	trip, err := fetchTripForMember(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID)
	if err != nil {
		return nil, err
	}

	days, err := uc.tripRepo.FindDaysByTripID(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip days: %w", err)
	}

	return &GetTripOutput{Trip: buildTripOutput(trip, days)}, nil
}

// fetchTripForMember loads a trip and verifies the caller belongs to its
// group, collapsing missing and foreign trips into the same error.
func fetchTripForMember(ctx context.Context, tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository, tripID, userID uuid.UUID) (*entity.Trip, error) {
	trip, err := tripRepo.FindTripByID(ctx, tripID)
	if err != nil || trip == nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	isMember, err := groupRepo.IsUserMemberOfGroup(ctx, trip.GroupID, userID)
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

	return trip, nil
}
