// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointOfInterest represents a saved place scoped to a trip.
type PointOfInterest struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
	Category  string
	Notes     string
	AddedBy   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPointOfInterest creates a new PointOfInterest entity.
func NewPointOfInterest(tripID uuid.UUID, name, address string, lat, lng *float64, category, notes string, addedBy uuid.UUID) *PointOfInterest {
	now := time.Now().UTC()
	return &PointOfInterest{
		ID:        uuid.New(),
		TripID:    tripID,
		Name:      name,
		Address:   address,
		Latitude:  lat,
		Longitude: lng,
		Category:  category,
		Notes:     notes,
		AddedBy:   addedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
