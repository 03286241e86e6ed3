package trip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
)

// UpdateTripInput represents the input for renaming a trip or changing its
// destination. Date changes go through schedule regeneration instead.
type UpdateTripInput struct {
	UserID      uuid.UUID
	TripID      uuid.UUID
	Name        string
	Destination string
}

// UpdateTripOutput represents the output of a trip update.
type UpdateTripOutput struct {
	Trip *TripOutput
}

// UpdateTripUseCase handles trip updates that leave the day set untouched.
type UpdateTripUseCase struct {
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewUpdateTripUseCase creates a new UpdateTripUseCase instance.
func NewUpdateTripUseCase(tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository) *UpdateTripUseCase {
	return &UpdateTripUseCase{tripRepo: tripRepo, groupRepo: groupRepo}
}

// Execute performs the trip update.
func (uc *UpdateTripUseCase) Execute(ctx context.Context, input UpdateTripInput) (*UpdateTripOutput, error) {
	if err := validateTripName(input.Name); err != nil {
		return nil, err
	}

	trip, err := fetchTripForMember(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID)
	if err != nil {
		return nil, err
	}

	trip.Name = strings.TrimSpace(input.Name)
	trip.Destination = strings.TrimSpace(input.Destination)
	trip.UpdatedAt = time.Now().UTC()

	if err := uc.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return &UpdateTripOutput{Trip: buildTripOutput(trip, nil)}, nil
}
