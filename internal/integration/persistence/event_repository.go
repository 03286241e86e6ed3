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

// eventRepository implements the adapter.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance.
func NewEventRepository(db *gorm.DB) adapter.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create creates a new event.
func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventModel := model.EventFromEntity(event)
	result := r.db.WithContext(ctx).Create(eventModel)
	return result.Error
}

// FindByID retrieves an event by its ID.
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventModel model.EventModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&eventModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return eventModel.ToEntity(), nil
}

// FindByTripID retrieves all events of a trip ordered by day and start time.
func (r *eventRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.Event, error) {
	var eventModels []model.EventModel
	result := r.db.WithContext(ctx).
		Joins("JOIN trip_days ON trip_days.id = events.day_id").
		Where("events.trip_id = ?", tripID).
		Order("trip_days.day_number ASC, events.start_time ASC NULLS LAST, events.created_at ASC").
		Find(&eventModels)
	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*entity.Event, len(eventModels))
	for i, em := range eventModels {
		events[i] = em.ToEntity()
	}

	return events, nil
}

// FindByDayID retrieves all events of a single trip day.
func (r *eventRepository) FindByDayID(ctx context.Context, dayID uuid.UUID) ([]*entity.Event, error) {
	var eventModels []model.EventModel
	result := r.db.WithContext(ctx).
		Where("day_id = ?", dayID).
		Order("start_time ASC NULLS LAST, created_at ASC").
		Find(&eventModels)
	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*entity.Event, len(eventModels))
	for i, em := range eventModels {
		events[i] = em.ToEntity()
	}

	return events, nil
}

// Update updates an existing event.
func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventModel := model.EventFromEntity(event)
	result := r.db.WithContext(ctx).Save(eventModel)
	return result.Error
}

// Delete removes an event. Expenses anchored to it keep their trip and day
// anchors; only the event reference is cleared.
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ExpenseModel{}).
			Where("event_id = ?", id).
			Update("event_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.EventModel{}, "id = ?", id).Error
	})
}
