// Package poi contains point-of-interest use cases.
package poi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// MaxPoiNameLength is the maximum allowed length for point-of-interest names.
const MaxPoiNameLength = 150

// PoiOutput is the use-case view of a point of interest.
type PoiOutput struct {
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

func buildPoiOutput(poi *entity.PointOfInterest) *PoiOutput {
	return &PoiOutput{
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

func validatePoiName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domainerror.NewTripError(
			domainerror.ErrCodePoiNameRequired,
			"point of interest name is required",
			domainerror.ErrPoiNameRequired,
		)
	}
	if len(trimmed) > MaxPoiNameLength {
		return domainerror.NewTripError(
			domainerror.ErrCodePoiNameRequired,
			fmt.Sprintf("point of interest name must not exceed %d characters", MaxPoiNameLength),
			domainerror.ErrPoiNameRequired,
		)
	}
	return nil
}

// checkTripMembership verifies the trip exists and the caller belongs to
// its group.
func checkTripMembership(ctx context.Context, tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository, tripID, userID uuid.UUID) error {
	trip, err := tripRepo.FindTripByID(ctx, tripID)
	if err != nil || trip == nil {
		return domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	isMember, err := groupRepo.IsUserMemberOfGroup(ctx, trip.GroupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}
	return nil
}
