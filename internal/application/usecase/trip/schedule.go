// Package trip contains trip-related use cases, including day schedule
// generation.
package trip

import (
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// GenerateDays produces the inclusive day set for a trip's date range,
// numbered 1..N from the start date. Dates are walked by calendar
// components, never by adding 24-hour durations, so DST transitions and
// month or leap-year boundaries cannot skip or duplicate a day. Only the
// year, month, and day of the inputs are read.
//
// A single-day trip (start equals end) yields one day. An end date before
// the start date returns ErrInvalidDateRange.
func GenerateDays(tripID uuid.UUID, startDate, endDate time.Time) ([]*entity.TripDay, error) {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(start) {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeInvalidDateRange,
			"end date precedes start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	var days []*entity.TripDay
	number := 1
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		days = append(days, entity.NewTripDay(tripID, date, number))
		number++
	}
	return days, nil
}
