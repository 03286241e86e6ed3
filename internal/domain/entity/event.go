// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents an itinerary entry anchored to a trip day.
type Event struct {
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

// NewEvent creates a new Event entity.
func NewEvent(tripID, dayID uuid.UUID, title string, startTime, endTime *time.Time, location, notes string, createdBy uuid.UUID) *Event {
	now := time.Now().UTC()
	return &Event{
		ID:        uuid.New(),
		TripID:    tripID,
		DayID:     dayID,
		Title:     title,
		StartTime: startTime,
		EndTime:   endTime,
		Location:  location,
		Notes:     notes,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
