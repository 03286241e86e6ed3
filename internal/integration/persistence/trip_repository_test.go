package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

func TestTripRepository_CreateAndLoadDays(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)
	trip, days := seedTrip(t, db, group.ID, owner.ID, date(2026, time.July, 10), date(2026, time.July, 13))

	repo := NewTripRepository(db)

	got, err := repo.FindDaysByTripID(ctx, trip.ID)
	if err != nil {
		t.Fatalf("failed to load days: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("loaded %d days, want 4", len(got))
	}
	for i, day := range got {
		if day.DayNumber != i+1 {
			t.Errorf("day %d has number %d, want %d", i, day.DayNumber, i+1)
		}
	}
	if !got[0].Date.Equal(days[0].Date) {
		t.Errorf("first day = %s, want %s", got[0].Date, days[0].Date)
	}
}

func TestTripRepository_FindTripsByGroupIDOrdersByStartDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)
	earlier, _ := seedTrip(t, db, group.ID, owner.ID, date(2026, time.June, 1), date(2026, time.June, 3))
	later, _ := seedTrip(t, db, group.ID, owner.ID, date(2026, time.September, 1), date(2026, time.September, 4))

	repo := NewTripRepository(db)

	trips, err := repo.FindTripsByGroupID(ctx, group.ID)
	if err != nil {
		t.Fatalf("failed to list trips: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("listed %d trips, want 2", len(trips))
	}
	if trips[0].ID != later.ID || trips[1].ID != earlier.ID {
		t.Error("expected trips ordered by start date, newest first")
	}
}

func TestTripRepository_ReplaceScheduleCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)
	seedMember(t, db, group.ID, owner.ID, entity.MemberRoleAdmin)
	trip, days := seedTrip(t, db, group.ID, owner.ID, date(2026, time.July, 10), date(2026, time.July, 12))

	tripRepo := NewTripRepository(db)
	eventRepo := NewEventRepository(db)
	expenseRepo := NewExpenseRepository(db)

	event := entity.NewEvent(trip.ID, days[0].ID, "Castle tour", nil, nil, "Castelo de S. Jorge", "", owner.ID)
	if err := eventRepo.Create(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	dayAnchored := entity.NewExpense(
		group.ID, trip.ID, &days[1].ID, nil, owner.ID,
		"Day picnic", decimal.RequireFromString("12.00"), "food",
		valueobject.SplitTypeEqual,
	)
	eventAnchored := entity.NewExpense(
		group.ID, trip.ID, nil, &event.ID, owner.ID,
		"Tour tickets", decimal.RequireFromString("24.00"), "activities",
		valueobject.SplitTypeEqual,
	)
	tripLevel := entity.NewExpense(
		group.ID, trip.ID, nil, nil, owner.ID,
		"Apartment", decimal.RequireFromString("300.00"), "accommodation",
		valueobject.SplitTypeEqual,
	)
	for _, e := range []*entity.Expense{dayAnchored, eventAnchored, tripLevel} {
		withSplits := &entity.ExpenseWithSplits{
			Expense: e,
			Participants: []*entity.ExpenseParticipant{
				memberRow(e.ID, owner.ID, "100", e.Amount.String()),
			},
		}
		if err := expenseRepo.Create(ctx, withSplits); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	// Shift the trip by a week; the whole schedule is rebuilt.
	trip.StartDate = date(2026, time.July, 17)
	trip.EndDate = date(2026, time.July, 18)
	newDays := []*entity.TripDay{
		entity.NewTripDay(trip.ID, trip.StartDate, 1),
		entity.NewTripDay(trip.ID, trip.EndDate, 2),
	}

	deletedEvents, deletedExpenses, err := tripRepo.ReplaceSchedule(ctx, trip, newDays)
	if err != nil {
		t.Fatalf("failed to replace schedule: %v", err)
	}
	if deletedEvents != 1 {
		t.Errorf("deleted %d events, want 1", deletedEvents)
	}
	if deletedExpenses != 2 {
		t.Errorf("deleted %d expenses, want 2", deletedExpenses)
	}

	// Anchored expenses are gone, the trip-level one survives.
	if got, _ := expenseRepo.FindByID(ctx, dayAnchored.ID); got != nil {
		t.Error("day-anchored expense survived schedule replacement")
	}
	if got, _ := expenseRepo.FindByID(ctx, eventAnchored.ID); got != nil {
		t.Error("event-anchored expense survived schedule replacement")
	}
	if got, _ := expenseRepo.FindByID(ctx, tripLevel.ID); got == nil {
		t.Error("trip-level expense did not survive schedule replacement")
	}

	gotDays, err := tripRepo.FindDaysByTripID(ctx, trip.ID)
	if err != nil {
		t.Fatalf("failed to load days: %v", err)
	}
	if len(gotDays) != 2 {
		t.Fatalf("loaded %d days after replacement, want 2", len(gotDays))
	}
	if !gotDays[0].Date.Equal(trip.StartDate) {
		t.Errorf("first day = %s, want %s", gotDays[0].Date, trip.StartDate)
	}

	gotTrip, err := tripRepo.FindTripByID(ctx, trip.ID)
	if err != nil {
		t.Fatalf("failed to reload trip: %v", err)
	}
	if !gotTrip.StartDate.Equal(trip.StartDate) {
		t.Errorf("trip start = %s, want %s", gotTrip.StartDate, trip.StartDate)
	}
}

func TestTripRepository_DeleteTripCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)
	trip, days := seedTrip(t, db, group.ID, owner.ID, date(2026, time.July, 10), date(2026, time.July, 11))

	tripRepo := NewTripRepository(db)
	eventRepo := NewEventRepository(db)
	expenseRepo := NewExpenseRepository(db)

	event := entity.NewEvent(trip.ID, days[0].ID, "Dinner reservation", nil, nil, "", "", owner.ID)
	if err := eventRepo.Create(ctx, event); err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	expense := entity.NewExpense(
		group.ID, trip.ID, nil, nil, owner.ID,
		"Apartment", decimal.RequireFromString("200.00"), "accommodation",
		valueobject.SplitTypeEqual,
	)
	withSplits := &entity.ExpenseWithSplits{
		Expense: expense,
		Participants: []*entity.ExpenseParticipant{
			memberRow(expense.ID, owner.ID, "100", "200.00"),
		},
	}
	if err := expenseRepo.Create(ctx, withSplits); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	if err := tripRepo.DeleteTrip(ctx, trip.ID); err != nil {
		t.Fatalf("failed to delete trip: %v", err)
	}

	if got, _ := tripRepo.FindTripByID(ctx, trip.ID); got != nil {
		t.Error("trip survived deletion")
	}
	if got, _ := expenseRepo.FindByID(ctx, expense.ID); got != nil {
		t.Error("expense survived trip deletion")
	}
	if got, _ := eventRepo.FindByID(ctx, event.ID); got != nil {
		t.Error("event survived trip deletion")
	}
	gotDays, err := tripRepo.FindDaysByTripID(ctx, trip.ID)
	if err != nil {
		t.Fatalf("failed to load days: %v", err)
	}
	if len(gotDays) != 0 {
		t.Errorf("loaded %d days after deletion, want 0", len(gotDays))
	}
}
