// Package event contains itinerary event use cases.
package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// MaxEventTitleLength is the maximum allowed length for event titles.
const MaxEventTitleLength = 150

// CreateEventInput represents the input for event creation.
type CreateEventInput struct {
	UserID    uuid.UUID
	TripID    uuid.UUID
	DayID     uuid.UUID
	Title     string
	StartTime *time.Time
	EndTime   *time.Time
	Location  string
	Notes     string
}

// CreateEventOutput represents the output of event creation.
type CreateEventOutput struct {
	Event *EventOutput
}

// CreateEventUseCase handles event creation on a trip day.
type CreateEventUseCase struct {
	eventRepo adapter.EventRepository
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewCreateEventUseCase creates a new CreateEventUseCase instance.
func NewCreateEventUseCase(
	eventRepo adapter.EventRepository,
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo: eventRepo,
		tripRepo:  tripRepo,
		groupRepo: groupRepo,
	}
}

// Execute performs the event creation. The day must belong to the trip.
func (uc *CreateEventUseCase) Execute(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error) {
	if err := validateEventTitle(input.Title); err != nil {
		return nil, err
	}

	if err := checkTripMembership(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID); err != nil {
		return nil, err
	}

	day, err := uc.tripRepo.FindDayByID(ctx, input.DayID)
	if err != nil || day == nil || day.TripID != input.TripID {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeDayNotInTrip,
			"day does not belong to this trip",
			domainerror.ErrDayNotInTrip,
		)
	}

	event := entity.NewEvent(
		input.TripID,
		input.DayID,
		strings.TrimSpace(input.Title),
		input.StartTime,
		input.EndTime,
		strings.TrimSpace(input.Location),
		input.Notes,
		input.UserID,
	)

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &CreateEventOutput{Event: buildEventOutput(event)}, nil
}

func validateEventTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return domainerror.NewTripError(
			domainerror.ErrCodeEventTitleRequired,
			"event title is required",
			domainerror.ErrEventTitleRequired,
		)
	}
	if len(trimmed) > MaxEventTitleLength {
		return domainerror.NewTripError(
			domainerror.ErrCodeEventTitleRequired,
			fmt.Sprintf("event title must not exceed %d characters", MaxEventTitleLength),
			domainerror.ErrEventTitleRequired,
		)
	}
	return nil
}

// checkTripMembership verifies the trip exists and the caller belongs to
// its group. Foreign trips are reported the same as missing trips.
func checkTripMembership(ctx context.Context, tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository, tripID, userID uuid.UUID) error {
	trip, err := tripRepo.FindTripByID(ctx, tripID)
	if err != nil || trip == nil {
		return domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	isMember, err := groupRepo.IsUserMemberOfGroup(ctx, trip.GroupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}
	return nil
}
