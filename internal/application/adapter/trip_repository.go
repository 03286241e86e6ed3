// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// TripRepository defines the interface for trip and trip-day persistence.
type TripRepository interface {
	// CreateTrip creates a trip together with its generated day set in one
	// transaction.
	CreateTrip(ctx context.Context, trip *entity.Trip, days []*entity.TripDay) error

	// FindTripByID retrieves a trip by its ID.
	FindTripByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)

	// FindTripsByGroupID retrieves all trips of a group, newest first.
	FindTripsByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Trip, error)

	// UpdateTrip updates trip fields that do not affect the day set.
	UpdateTrip(ctx context.Context, trip *entity.Trip) error

	// ReplaceSchedule atomically updates the trip's dates, deletes the
	// whole existing day set with everything anchored to it, and inserts
	// the new days. It returns how many events and expenses the cascade
	// removed.
	ReplaceSchedule(ctx context.Context, trip *entity.Trip, days []*entity.TripDay) (deletedEvents, deletedExpenses int64, err error)

	// DeleteTrip removes a trip and cascades to its days, events, and expenses.
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	// FindDaysByTripID retrieves the trip's days ordered by day number.
	FindDaysByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.TripDay, error)

	// FindDayByID retrieves a single trip day.
	FindDayByID(ctx context.Context, id uuid.UUID) (*entity.TripDay, error)
}

// EventRepository defines the interface for itinerary event persistence.
type EventRepository interface {
	// Create creates a new event.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves an event by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindByTripID retrieves all events of a trip ordered by day and start time.
	FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.Event, error)

	// FindByDayID retrieves all events of a single trip day.
	FindByDayID(ctx context.Context, dayID uuid.UUID) ([]*entity.Event, error)

	// Update updates an existing event.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PoiRepository defines the interface for point-of-interest persistence.
type PoiRepository interface {
	// Create creates a new point of interest.
	Create(ctx context.Context, poi *entity.PointOfInterest) error

	// FindByID retrieves a point of interest by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PointOfInterest, error)

	// FindByTripID retrieves all points of interest of a trip.
	FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.PointOfInterest, error)

	// Update updates an existing point of interest.
	Update(ctx context.Context, poi *entity.PointOfInterest) error

	// Delete removes a point of interest.
	Delete(ctx context.Context, id uuid.UUID) error
}
