// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned trip belonging to a group. Start and end dates
// are calendar dates; only the year, month, and day components are
// meaningful, and timezone offsets must never shift which day they name.
type Trip struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTrip creates a new Trip entity.
func NewTrip(groupID uuid.UUID, name, destination string, startDate, endDate time.Time, createdBy uuid.UUID) *Trip {
	now := time.Now().UTC()
	return &Trip{
		ID:          uuid.New(),
		GroupID:     groupID,
		Name:        name,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DayCount returns the number of calendar days the trip spans, inclusive.
func (t *Trip) DayCount() int {
	start := time.Date(t.StartDate.Year(), t.StartDate.Month(), t.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(t.EndDate.Year(), t.EndDate.Month(), t.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// TripDay represents one calendar day of a trip's schedule. Days are
// numbered 1..N from the trip start and are regenerated as a whole set
// whenever the trip's dates change; they are never patched individually.
type TripDay struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Date      time.Time
	DayNumber int
	CreatedAt time.Time
}

// NewTripDay creates a new TripDay entity.
func NewTripDay(tripID uuid.UUID, date time.Time, dayNumber int) *TripDay {
	return &TripDay{
		ID:        uuid.New(),
		TripID:    tripID,
		Date:      date,
		DayNumber: dayNumber,
		CreatedAt: time.Now().UTC(),
	}
}

// TripWithDays represents a trip with its generated day schedule.
type TripWithDays struct {
	Trip *Trip
	Days []*TripDay
}

// ScheduleRegenerationResult reports what a schedule regeneration destroyed
// along with the new day set. Callers surface the counts so users can be
// warned before confirming a date change on a trip with content.
type ScheduleRegenerationResult struct {
	Trip            *Trip
	Days            []*TripDay
	DeletedEvents   int64
	DeletedExpenses int64
}
