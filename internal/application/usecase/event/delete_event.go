package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// DeleteEventInput represents the input for event deletion.
type DeleteEventInput struct {
	UserID  uuid.UUID
	EventID uuid.UUID
}

// DeleteEventUseCase handles event deletion. Expenses anchored to the
// event stay on the trip; only their event anchor is cleared by storage.
type DeleteEventUseCase struct {
	eventRepo adapter.EventRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewDeleteEventUseCase creates a new DeleteEventUseCase instance.
func NewDeleteEventUseCase(
	eventRepo adapter.EventRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		eventRepo: eventRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute performs the event deletion.
func (uc *DeleteEventUseCase) Execute(ctx context.Context, input DeleteEventInput) error {
	event, err := uc.eventRepo.FindByID(ctx, input.EventID)
	if err != nil || event == nil {
		return domainerror.NewTripError(
			domainerror.ErrCodeEventNotFound,
			"event not found",
			domainerror.ErrEventNotFound,
		)
	}

	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, event.TripID, input.UserID); err != nil {
		return err
	}

	if err := uc.eventRepo.Delete(ctx, input.EventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
