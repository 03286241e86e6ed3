// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// PoiModel represents the points_of_interest table in the database.
type PoiModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Address   string    `gorm:"type:varchar(255)"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	Category  string    `gorm:"type:varchar(50)"`
	Notes     string    `gorm:"type:text"`
	AddedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PoiModel.
func (PoiModel) TableName() string {
	return "points_of_interest"
}

// ToEntity converts a PoiModel to a domain PointOfInterest entity.
func (m *PoiModel) ToEntity() *entity.PointOfInterest {
	return &entity.PointOfInterest{
		ID:        m.ID,
		TripID:    m.TripID,
		Name:      m.Name,
		Address:   m.Address,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Category:  m.Category,
		Notes:     m.Notes,
		AddedBy:   m.AddedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PoiFromEntity creates a PoiModel from a domain PointOfInterest entity.
func PoiFromEntity(poi *entity.PointOfInterest) *PoiModel {
	return &PoiModel{
		ID:        poi.ID,
		TripID:    poi.TripID,
		Name:      poi.Name,
		Address:   poi.Address,
		Latitude:  poi.Latitude,
		Longitude: poi.Longitude,
		Category:  poi.Category,
		Notes:     poi.Notes,
		AddedBy:   poi.AddedBy,
		CreatedAt: poi.CreatedAt,
		UpdatedAt: poi.UpdatedAt,
	}
}
