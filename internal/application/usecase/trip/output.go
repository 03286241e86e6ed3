package trip

import (
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// TripOutput is the use-case view of a trip.
type TripOutput struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Days        []*DayOutput
}

// DayOutput is one generated day of a trip's schedule.
type DayOutput struct {
	ID        uuid.UUID
	Date      time.Time
	DayNumber int
}

func buildTripOutput(trip *entity.Trip, days []*entity.TripDay) *TripOutput {
	out := &TripOutput{
		ID:          trip.ID,
		GroupID:     trip.GroupID,
		Name:        trip.Name,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		CreatedBy:   trip.CreatedBy,
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
	}
	for _, day := range days {
		out.Days = append(out.Days, &DayOutput{
			ID:        day.ID,
			Date:      day.Date,
			DayNumber: day.DayNumber,
		})
	}
	return out
}
