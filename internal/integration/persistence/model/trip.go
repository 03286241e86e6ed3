// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// TripModel represents the trips table in the database.
type TripModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Destination string    `gorm:"type:varchar(255)"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the TripModel.
func (TripModel) TableName() string {
	return "trips"
}

// ToEntity converts a TripModel to a domain Trip entity.
func (m *TripModel) ToEntity() *entity.Trip {
	return &entity.Trip{
		ID:          m.ID,
		GroupID:     m.GroupID,
		Name:        m.Name,
		Destination: m.Destination,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TripFromEntity creates a TripModel from a domain Trip entity.
func TripFromEntity(trip *entity.Trip) *TripModel {
	return &TripModel{
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
}

// TripDayModel represents the trip_days table in the database.
type TripDayModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	DayNumber int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TripDayModel.
func (TripDayModel) TableName() string {
	return "trip_days"
}

// ToEntity converts a TripDayModel to a domain TripDay entity.
func (m *TripDayModel) ToEntity() *entity.TripDay {
	return &entity.TripDay{
		ID:        m.ID,
		TripID:    m.TripID,
		Date:      m.Date,
		DayNumber: m.DayNumber,
		CreatedAt: m.CreatedAt,
	}
}

// TripDayFromEntity creates a TripDayModel from a domain TripDay entity.
func TripDayFromEntity(day *entity.TripDay) *TripDayModel {
	return &TripDayModel{
		ID:        day.ID,
		TripID:    day.TripID,
		Date:      day.Date,
		DayNumber: day.DayNumber,
		CreatedAt: day.CreatedAt,
	}
}
