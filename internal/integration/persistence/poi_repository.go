// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/integration/persistence/model"
)

// poiRepository implements the adapter.PoiRepository interface.
type poiRepository struct {
	db *gorm.DB
}

// NewPoiRepository creates a new point-of-interest repository instance.
func NewPoiRepository(db *gorm.DB) adapter.PoiRepository {
	return &poiRepository{
		db: db,
	}
}

// Create creates a new point of interest.
func (r *poiRepository) Create(ctx context.Context, poi *entity.PointOfInterest) error {
	poiModel := model.PoiFromEntity(poi)
	result := r.db.WithContext(ctx).Create(poiModel)
	return result.Error
}

// FindByID retrieves a point of interest by its ID.
func (r *poiRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PointOfInterest, error) {
	var poiModel model.PoiModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&poiModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return poiModel.ToEntity(), nil
}

// FindByTripID retrieves all points of interest of a trip.
func (r *poiRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.PointOfInterest, error) {
	var poiModels []model.PoiModel
	result := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&poiModels)
	if result.Error != nil {
		return nil, result.Error
	}

	pois := make([]*entity.PointOfInterest, len(poiModels))
	for i, pm := range poiModels {
		pois[i] = pm.ToEntity()
	}

	return pois, nil
}

// Update updates an existing point of interest.
func (r *poiRepository) Update(ctx context.Context, poi *entity.PointOfInterest) error {
	poiModel := model.PoiFromEntity(poi)
	result := r.db.WithContext(ctx).Save(poiModel)
	return result.Error
}

// Delete removes a point of interest.
func (r *poiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PoiModel{}, "id = ?", id)
	return result.Error
}
