package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// UpdateEventInput represents the input for event updates. The event can
// move to another day of the same trip.
type UpdateEventInput struct {
	UserID    uuid.UUID
	EventID   uuid.UUID
	DayID     uuid.UUID
	Title     string
	StartTime *time.Time
	EndTime   *time.Time
	Location  string
	Notes     string
}

// UpdateEventOutput represents the output of event updates.
type UpdateEventOutput struct {
	Event *EventOutput
}

// UpdateEventUseCase handles event updates.
type UpdateEventUseCase struct {
	eventRepo adapter.EventRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewUpdateEventUseCase creates a new UpdateEventUseCase instance.
func NewUpdateEventUseCase(
	eventRepo adapter.EventRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo: eventRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute performs the event update.
func (uc *UpdateEventUseCase) Execute(ctx context.Context, input UpdateEventInput) (*UpdateEventOutput, error) {
	if err := validateEventTitle(input.Title); err != nil {
		return nil, err
	}

	event, err := uc.eventRepo.FindByID(ctx, input.EventID)
	if err != nil || event == nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeEventNotFound,
			"event not found",
			domainerror.ErrEventNotFound,
		)
	}

	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, event.TripID, input.UserID); err != nil {
		return nil, err
	}

	day, err := uc.tripRepo.FindDayByID(ctx, input.DayID)
	if err != nil || day == nil || day.TripID != event.TripID {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeDayNotInTrip,
			"day does not belong to this trip",
			domainerror.ErrDayNotInTrip,
		)
	}

	event.DayID = input.DayID
	event.Title = strings.TrimSpace(input.Title)
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Location = strings.TrimSpace(input.Location)
	event.Notes = input.Notes
	event.UpdatedAt = time.Now().UTC()

	if err := uc.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &UpdateEventOutput{Event: buildEventOutput(event)}, nil
}
