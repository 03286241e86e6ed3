package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// ListTripsInput represents the input for listing a group's trips.
type ListTripsInput struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
}

// ListTripsOutput represents the output of listing a group's trips.
type ListTripsOutput struct {
	Trips []*TripOutput
}

// ListTripsUseCase handles listing every trip of a group, without day
// schedules.
type ListTripsUseCase struct {
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewListTripsUseCase creates a new ListTripsUseCase instance.
func NewListTripsUseCase(tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository) *ListTripsUseCase {
	return &ListTripsUseCase{tripRepo: tripRepo, groupRepo: groupRepo}
}

// Execute lists the group's trips, newest first.
func (uc *ListTripsUseCase) Execute(ctx context.Context, input ListTripsInput) (*ListTripsOutput, error) {
	isMember, err := uc.groupRepo.IsUserMemberOfGroup(ctx, input.GroupID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"user is not a member of this group",
			domainerror.ErrNotGroupMember,
		)
	}

	trips, err := uc.tripRepo.FindTripsByGroupID(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	output := &ListTripsOutput{Trips: make([]*TripOutput, 0, len(trips))}
	for _, t := range trips {
		output.Trips = append(output.Trips, buildTripOutput(t, nil))
	}
	return output, nil
}
