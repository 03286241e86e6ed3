package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// stubTripRepo serves FindTripByID and FindDayByID from fixed records,
// returning nil for anything else, the same not-found convention as the
// real repository.
type stubTripRepo struct {
	adapter.TripRepository
	trip *entity.Trip
	day  *entity.TripDay
}

func (r *stubTripRepo) FindTripByID(_ context.Context, id uuid.UUID) (*entity.Trip, error) {
	if r.trip != nil && r.trip.ID == id {
		return r.trip, nil
	}
	return nil, nil
}

func (r *stubTripRepo) FindDayByID(_ context.Context, id uuid.UUID) (*entity.TripDay, error) {
	if r.day != nil && r.day.ID == id {
		return r.day, nil
	}
	return nil, nil
}

type stubEventRepo struct {
	adapter.EventRepository
	event *entity.Event
}

func (r *stubEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	if r.event != nil && r.event.ID == id {
		return r.event, nil
	}
	return nil, nil
}

func TestCheckTripAnchors(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()
	trip := entity.NewTrip(groupID, "Lisbon", "Lisbon, Portugal",
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		uuid.New())
	day := entity.NewTripDay(trip.ID, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 1)
	event := entity.NewEvent(trip.ID, day.ID, "Castle tour", nil, nil, "Sintra", "", uuid.New())

	newUseCase := func() *CreateExpenseUseCase {
		return &CreateExpenseUseCase{
			tripRepo:  &stubTripRepo{trip: trip, day: day},
			eventRepo: &stubEventRepo{event: event},
		}
	}

	t.Run("valid anchors pass", func(t *testing.T) {
		uc := newUseCase()
		if err := uc.checkTripAnchors(ctx, groupID, trip.ID, &day.ID, &event.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nonexistent event is reported not found", func(t *testing.T) {
		uc := newUseCase()
		missing := uuid.New()

		err := uc.checkTripAnchors(ctx, groupID, trip.ID, nil, &missing)
		if err == nil {
			t.Fatal("expected an error for a missing event anchor")
		}
		var tripErr *domainerror.TripError
		if !errors.As(err, &tripErr) || tripErr.Code != domainerror.ErrCodeEventNotFound {
			t.Fatalf("expected event-not-found, got %v", err)
		}
	})

	t.Run("event of another trip is rejected", func(t *testing.T) {
		uc := newUseCase()
		foreign := entity.NewEvent(uuid.New(), uuid.New(), "Elsewhere", nil, nil, "", "", uuid.New())
		uc.eventRepo = &stubEventRepo{event: foreign}

		err := uc.checkTripAnchors(ctx, groupID, trip.ID, nil, &foreign.ID)
		var tripErr *domainerror.TripError
		if !errors.As(err, &tripErr) || tripErr.Code != domainerror.ErrCodeEventNotFound {
			t.Fatalf("expected event-not-found, got %v", err)
		}
	})

	t.Run("nonexistent day is rejected", func(t *testing.T) {
		uc := newUseCase()
		missing := uuid.New()

		err := uc.checkTripAnchors(ctx, groupID, trip.ID, &missing, nil)
		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) || expErr.Code != domainerror.ErrCodeExpenseDayNotInTrip {
			t.Fatalf("expected day-not-in-trip, got %v", err)
		}
	})

	t.Run("update path reports a missing event the same way", func(t *testing.T) {
		uc := &UpdateExpenseUseCase{
			tripRepo:  &stubTripRepo{trip: trip, day: day},
			eventRepo: &stubEventRepo{},
		}
		missing := uuid.New()

		err := uc.checkAnchors(ctx, trip.ID, nil, &missing)
		var tripErr *domainerror.TripError
		if !errors.As(err, &tripErr) || tripErr.Code != domainerror.ErrCodeEventNotFound {
			t.Fatalf("expected event-not-found, got %v", err)
		}
	})
}
