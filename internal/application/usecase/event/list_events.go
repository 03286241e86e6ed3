package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
)

// ListEventsInput represents the input for listing a trip's events. When
// DayID is set only that day's events are returned.
type ListEventsInput struct {
	UserID uuid.UUID
	TripID uuid.UUID
	DayID  *uuid.UUID
}

// ListEventsOutput represents the output of listing events.
type ListEventsOutput struct {
	Events []*EventOutput
}

// ListEventsUseCase handles listing a trip's itinerary events.
type ListEventsUseCase struct {
	eventRepo adapter.EventRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewListEventsUseCase creates a new ListEventsUseCase instance.
func NewListEventsUseCase(
	eventRepo adapter.EventRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute lists events ordered by day and start time.
func (uc *ListEventsUseCase) Execute(ctx context.Context, input ListEventsInput) (*ListEventsOutput, error) {
	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID); err != nil {
		return nil, err
	}

	var (
		events []*entity.Event
		err    error
	)
	if input.DayID != nil {
		events, err = uc.eventRepo.FindByDayID(ctx, *input.DayID)
	} else {
		events, err = uc.eventRepo.FindByTripID(ctx, input.TripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	output := &ListEventsOutput{Events: make([]*EventOutput, 0, len(events))}
	for _, e := range events {
		output.Events = append(output.Events, buildEventOutput(e))
	}
	return output, nil
}
