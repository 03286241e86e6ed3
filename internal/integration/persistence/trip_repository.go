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

// tripRepository implements the adapter.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository instance.
func NewTripRepository(db *gorm.DB) adapter.TripRepository {
	return &tripRepository{
		db: db,
	}
}

// CreateTrip creates a trip together with its generated day set in one
// transaction.
func (r *tripRepository) CreateTrip(ctx context.Context, trip *entity.Trip, days []*entity.TripDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TripFromEntity(trip)).Error; err != nil {
			return err
		}
		return insertDays(tx, days)
	})
}

// FindTripByID retrieves a trip by its ID.
func (r *tripRepository) FindTripByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var tripModel model.TripModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tripModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tripModel.ToEntity(), nil
}

// FindTripsByGroupID retrieves all trips of a group, newest first.
func (r *tripRepository) FindTripsByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Trip, error) {
	var tripModels []model.TripModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("start_date DESC").
		Find(&tripModels)
	if result.Error != nil {
		return nil, result.Error
	}

	trips := make([]*entity.Trip, len(tripModels))
	for i, tm := range tripModels {
		trips[i] = tm.ToEntity()
	}

	return trips, nil
}

// UpdateTrip updates trip fields that do not affect the day set.
func (r *tripRepository) UpdateTrip(ctx context.Context, trip *entity.Trip) error {
	tripModel := model.TripFromEntity(trip)
	result := r.db.WithContext(ctx).Save(tripModel)
	return result.Error
}

// ReplaceSchedule atomically swaps the trip's day set for a new one. Events
// are always anchored to a day, so all of them go; expenses go only when
// they are anchored to a day or an event, trip-level expenses survive.
func (r *tripRepository) ReplaceSchedule(ctx context.Context, trip *entity.Trip, days []*entity.TripDay) (deletedEvents, deletedExpenses int64, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var anchoredIDs []uuid.UUID
		if err := tx.Model(&model.ExpenseModel{}).
			Where("trip_id = ? AND (day_id IS NOT NULL OR event_id IS NOT NULL)", trip.ID).
			Pluck("id", &anchoredIDs).Error; err != nil {
			return err
		}
		deletedExpenses = int64(len(anchoredIDs))
		if err := deleteExpensesByIDs(tx, anchoredIDs); err != nil {
			return err
		}

		eventResult := tx.Delete(&model.EventModel{}, "trip_id = ?", trip.ID)
		if eventResult.Error != nil {
			return eventResult.Error
		}
		deletedEvents = eventResult.RowsAffected

		if err := tx.Delete(&model.TripDayModel{}, "trip_id = ?", trip.ID).Error; err != nil {
			return err
		}
		if err := tx.Save(model.TripFromEntity(trip)).Error; err != nil {
			return err
		}
		return insertDays(tx, days)
	})
	if err != nil {
		return 0, 0, err
	}
	return deletedEvents, deletedExpenses, nil
}

// DeleteTrip removes a trip and cascades to its days, events, points of
// interest, and expenses.
func (r *tripRepository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var expenseIDs []uuid.UUID
		if err := tx.Model(&model.ExpenseModel{}).
			Where("trip_id = ?", id).
			Pluck("id", &expenseIDs).Error; err != nil {
			return err
		}
		if err := deleteExpensesByIDs(tx, expenseIDs); err != nil {
			return err
		}

		if err := tx.Delete(&model.EventModel{}, "trip_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.PoiModel{}, "trip_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.TripDayModel{}, "trip_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TripModel{}, "id = ?", id).Error
	})
}

// FindDaysByTripID retrieves the trip's days ordered by day number.
func (r *tripRepository) FindDaysByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.TripDay, error) {
	var dayModels []model.TripDayModel
	result := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day_number ASC").
		Find(&dayModels)
	if result.Error != nil {
		return nil, result.Error
	}

	days := make([]*entity.TripDay, len(dayModels))
	for i, dm := range dayModels {
		days[i] = dm.ToEntity()
	}

	return days, nil
}

// FindDayByID retrieves a single trip day.
func (r *tripRepository) FindDayByID(ctx context.Context, id uuid.UUID) (*entity.TripDay, error) {
	var dayModel model.TripDayModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&dayModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return dayModel.ToEntity(), nil
}

// insertDays writes a trip's day set inside tx.
func insertDays(tx *gorm.DB, days []*entity.TripDay) error {
	for _, day := range days {
		if err := tx.Create(model.TripDayFromEntity(day)).Error; err != nil {
			return err
		}
	}
	return nil
}
