package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// EventOutput is the use-case view of an itinerary event.
type EventOutput struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	DayID     uuid.UUID
	Title     string
	StartTime *time.Time
	EndTime   *time.Time
	Location  string
	Notes     string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func buildEventOutput(event *entity.Event) *EventOutput {
	return &EventOutput{
		ID:        event.ID,
		TripID:    event.TripID,
		DayID:     event.DayID,
		Title:     event.Title,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Location:  event.Location,
		Notes:     event.Notes,
		CreatedBy: event.CreatedBy,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}
