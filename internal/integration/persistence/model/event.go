// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// EventModel represents the events table in the database.
type EventModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DayID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title     string     `gorm:"type:varchar(150);not null"`
	StartTime *time.Time `gorm:"type:timestamp"`
	EndTime   *time.Time `gorm:"type:timestamp"`
	Location  string     `gorm:"type:varchar(255)"`
	Notes     string     `gorm:"type:text"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the EventModel.
func (EventModel) TableName() string {
	return "events"
}

// ToEntity converts an EventModel to a domain Event entity.
func (m *EventModel) ToEntity() *entity.Event {
	return &entity.Event{
		ID:        m.ID,
		TripID:    m.TripID,
		DayID:     m.DayID,
		Title:     m.Title,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Location:  m.Location,
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EventFromEntity creates an EventModel from a domain Event entity.
func EventFromEntity(event *entity.Event) *EventModel {
	return &EventModel{
		ID:        event.ID,
		TripID:    event.TripID,
		DayID:     event.DayID,
		Title:     event.Title,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Location:  event.Location,
		Notes:     event.Notes,
		CreatedBy: event.CreatedBy,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}
