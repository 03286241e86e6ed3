package trip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// DeleteTripInput represents the input for trip deletion.
type DeleteTripInput struct {
	UserID uuid.UUID
	TripID uuid.UUID
}

// DeleteTripUseCase handles trip deletion. Only the trip creator or a
// group admin may delete a trip; days, events, and expenses go with it.
type DeleteTripUseCase struct {
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
	cache     adapter.BalanceCache
}

// NewDeleteTripUseCase creates a new DeleteTripUseCase instance.
func NewDeleteTripUseCase(tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository, cache adapter.BalanceCache) *DeleteTripUseCase {
	return &DeleteTripUseCase{tripRepo: tripRepo, groupRepo: groupRepo, cache: cache}
}

// Execute performs the trip deletion.
func (uc *DeleteTripUseCase) Execute(ctx context.Context, input DeleteTripInput) error {
	trip, err := fetchTripForMember(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID)
	if err != nil {
		return err
	}

	if trip.CreatedBy != input.UserID {
		member, err := uc.groupRepo.FindMemberByGroupAndUser(ctx, trip.GroupID, input.UserID)
		if err != nil || member.Role != entity.MemberRoleAdmin {
			return domainerror.NewGroupError(
				domainerror.ErrCodeNotGroupAdmin,
				"only the trip creator or a group admin can delete a trip",
				domainerror.ErrNotGroupAdmin,
			)
		}
	}

	if err := uc.tripRepo.DeleteTrip(ctx, input.TripID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateGroup(ctx, trip.GroupID); err != nil {
			slog.Warn("Failed to invalidate balance cache after trip deletion",
				"groupID", trip.GroupID,
				"error", err,
			)
		}
	}
	return nil
}
