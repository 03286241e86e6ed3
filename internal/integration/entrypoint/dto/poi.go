package dto

import (
	"time"

	"github.com/trip-planner/backend/internal/application/usecase/poi"
)

// CreatePoiRequest represents the request body for saving a point of interest.
type CreatePoiRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=150"`
	Address   string   `json:"address" binding:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Category  string   `json:"category" binding:"omitempty,max=50"`
	Notes     string   `json:"notes" binding:"omitempty,max=1000"`
}

// UpdatePoiRequest represents the request body for updating a point of interest.
type UpdatePoiRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=150"`
	Address   string   `json:"address" binding:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Category  string   `json:"category" binding:"omitempty,max=50"`
	Notes     string   `json:"notes" binding:"omitempty,max=1000"`
}

// PoiResponse represents a point of interest in API responses.
type PoiResponse struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Category  string    `json:"category,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PoiListResponse represents the response for listing a trip's points of interest.
type PoiListResponse struct {
	Pois []PoiResponse `json:"pois"`
}

// ToPoiResponse converts a poi use-case output to a PoiResponse DTO.
func ToPoiResponse(p *poi.PoiOutput) PoiResponse {
	return PoiResponse{
		ID:        p.ID.String(),
		TripID:    p.TripID.String(),
		Name:      p.Name,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Category:  p.Category,
		Notes:     p.Notes,
		AddedBy:   p.AddedBy.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPoiListResponse converts poi outputs to a PoiListResponse DTO.
func ToPoiListResponse(pois []*poi.PoiOutput) PoiListResponse {
	items := make([]PoiResponse, len(pois))
	for i, p := range pois {
		items[i] = ToPoiResponse(p)
	}
	return PoiListResponse{Pois: items}
}
