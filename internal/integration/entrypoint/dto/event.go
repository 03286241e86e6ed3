package dto

import (
	"time"

	"github.com/trip-planner/backend/internal/application/usecase/event"
)

// CreateEventRequest represents the request body for event creation.
type CreateEventRequest struct {
	DayID     string     `json:"day_id" binding:"required"`
	Title     string     `json:"title" binding:"required,min=1,max=150"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Location  string     `json:"location" binding:"omitempty,max=255"`
	Notes     string     `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateEventRequest represents the request body for event updates. The
// event can move to another day of the same trip.
type UpdateEventRequest struct {
	DayID     string     `json:"day_id" binding:"required"`
	Title     string     `json:"title" binding:"required,min=1,max=150"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Location  string     `json:"location" binding:"omitempty,max=255"`
	Notes     string     `json:"notes" binding:"omitempty,max=1000"`
}

// EventResponse represents an itinerary event in API responses.
type EventResponse struct {
	ID        string     `json:"id"`
	TripID    string     `json:"trip_id"`
	DayID     string     `json:"day_id"`
	Title     string     `json:"title"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Location  string     `json:"location,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EventListResponse represents the response for listing a trip's events.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts an event use-case output to an EventResponse DTO.
func ToEventResponse(e *event.EventOutput) EventResponse {
	return EventResponse{
		ID:        e.ID.String(),
		TripID:    e.TripID.String(),
		DayID:     e.DayID.String(),
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Location:  e.Location,
		Notes:     e.Notes,
		CreatedBy: e.CreatedBy.String(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToEventListResponse converts event outputs to an EventListResponse DTO.
func ToEventListResponse(events []*event.EventOutput) EventListResponse {
	items := make([]EventResponse, len(events))
	for i, e := range events {
		items[i] = ToEventResponse(e)
	}
	return EventListResponse{Events: items}
}
