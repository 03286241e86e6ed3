package dto

import (
	"time"

	"github.com/trip-planner/backend/internal/application/usecase/trip"
)

// CreateTripRequest represents the request body for trip creation.
type CreateTripRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Destination string `json:"destination" binding:"omitempty,max=255"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

// UpdateTripRequest represents the request body for renaming a trip or
// changing its destination. Dates are changed through the schedule endpoint.
type UpdateTripRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Destination string `json:"destination" binding:"omitempty,max=255"`
}

// ChangeTripDatesRequest represents the request body for changing a trip's
// date range. This regenerates the day schedule and removes everything
// anchored to the old days.
type ChangeTripDatesRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Confirm   bool   `json:"confirm" binding:"required"`
}

// TripResponse represents a trip in API responses.
type TripResponse struct {
	ID          string            `json:"id"`
	GroupID     string            `json:"group_id"`
	Name        string            `json:"name"`
	Destination string            `json:"destination,omitempty"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Days        []TripDayResponse `json:"days,omitempty"`
}

// TripDayResponse represents one generated day of a trip's schedule.
type TripDayResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	DayNumber int    `json:"day_number"`
}

// TripDayListResponse represents the response for listing a trip's days.
type TripDayListResponse struct {
	Days []TripDayResponse `json:"days"`
}

// TripListResponse represents the response for listing a group's trips.
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ScheduleChangeResponse reports the regenerated trip along with what the
// date change destroyed.
type ScheduleChangeResponse struct {
	Trip            TripResponse `json:"trip"`
	DeletedEvents   int64        `json:"deleted_events"`
	DeletedExpenses int64        `json:"deleted_expenses"`
}

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in the API's wire format.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// ToTripResponse converts a trip use-case output to a TripResponse DTO.
func ToTripResponse(t *trip.TripOutput) TripResponse {
	response := TripResponse{
		ID:          t.ID.String(),
		GroupID:     t.GroupID.String(),
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(dateLayout),
		EndDate:     t.EndDate.Format(dateLayout),
		CreatedBy:   t.CreatedBy.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	for _, day := range t.Days {
		response.Days = append(response.Days, TripDayResponse{
			ID:        day.ID.String(),
			Date:      day.Date.Format(dateLayout),
			DayNumber: day.DayNumber,
		})
	}

	return response
}

// ToTripListResponse converts trip outputs to a TripListResponse DTO.
func ToTripListResponse(trips []*trip.TripOutput) TripListResponse {
	items := make([]TripResponse, len(trips))
	for i, t := range trips {
		items[i] = ToTripResponse(t)
	}
	return TripListResponse{Trips: items}
}
