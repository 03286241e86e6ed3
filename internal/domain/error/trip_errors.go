// Package error defines domain-specific errors for the Trip Planner application.
package error

import "errors"

// Trip domain errors.
var (
	// ErrTripNotFound is returned when a trip does not exist or is outside
	// the caller's group scope. Cross-group references deliberately report
	// the same error as a missing record.
	ErrTripNotFound = errors.New("trip not found")

	// ErrTripDayNotFound is returned when a trip day does not exist.
	ErrTripDayNotFound = errors.New("trip day not found")

	// ErrDayNotInTrip is returned when a referenced day belongs to a different trip.
	ErrDayNotInTrip = errors.New("day does not belong to this trip")

	// ErrInvalidDateRange is returned when a trip's end date precedes its start date.
	ErrInvalidDateRange = errors.New("end date precedes start date")

	// ErrTripNameRequired is returned when the trip name is empty.
	ErrTripNameRequired = errors.New("trip name is required")

	// ErrEventNotFound is returned when an event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrEventTitleRequired is returned when the event title is empty.
	ErrEventTitleRequired = errors.New("event title is required")

	// ErrPoiNotFound is returned when a point of interest does not exist.
	ErrPoiNotFound = errors.New("point of interest not found")

	// ErrPoiNameRequired is returned when the point of interest name is empty.
	ErrPoiNameRequired = errors.New("point of interest name is required")
)

// TripErrorCode defines error codes for trip errors.
// Format: TRIP-XXYYYY where XX is category and YYYY is specific error.
type TripErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeTripNotFound    TripErrorCode = "TRIP-010001"
	ErrCodeTripDayNotFound TripErrorCode = "TRIP-010002"
	ErrCodeEventNotFound   TripErrorCode = "TRIP-010003"
	ErrCodePoiNotFound     TripErrorCode = "TRIP-010004"

	// Validation errors (02XXXX)
	ErrCodeInvalidDateRange   TripErrorCode = "TRIP-020001"
	ErrCodeTripNameRequired   TripErrorCode = "TRIP-020002"
	ErrCodeDayNotInTrip       TripErrorCode = "TRIP-020003"
	ErrCodeEventTitleRequired TripErrorCode = "TRIP-020004"
	ErrCodePoiNameRequired    TripErrorCode = "TRIP-020005"
	ErrCodeMissingTripFields  TripErrorCode = "TRIP-020006"
)

// TripError represents a trip error with code and message.
type TripError struct {
	Code    TripErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TripError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TripError) Unwrap() error {
	return e.Err
}

// NewTripError creates a new TripError with the given code and message.
func NewTripError(code TripErrorCode, message string, err error) *TripError {
	return &TripError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
