package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

type expenseFixture struct {
	db      *gorm.DB
	payer   *entity.User
	other   *entity.User
	group   *entity.Group
	trip    *entity.Trip
	days    []*entity.TripDay
	repo    adapter.ExpenseRepository
	context context.Context
}

func newExpenseFixture(t *testing.T) *expenseFixture {
	t.Helper()

	db := newTestDB(t)
	payer := seedUser(t, db, "payer@example.com", "Payer")
	other := seedUser(t, db, "other@example.com", "Other")
	group := seedGroup(t, db, payer.ID)
	seedMember(t, db, group.ID, payer.ID, entity.MemberRoleAdmin)
	seedMember(t, db, group.ID, other.ID, entity.MemberRoleMember)
	trip, days := seedTrip(t, db, group.ID, payer.ID, date(2026, time.July, 10), date(2026, time.July, 12))

	return &expenseFixture{
		db:      db,
		payer:   payer,
		other:   other,
		group:   group,
		trip:    trip,
		days:    days,
		repo:    NewExpenseRepository(db),
		context: context.Background(),
	}
}

func memberRow(expenseID, userID uuid.UUID, percentage, owed string) *entity.ExpenseParticipant {
	return &entity.ExpenseParticipant{
		ID:              uuid.New(),
		ExpenseID:       expenseID,
		ParticipantID:   &userID,
		SplitPercentage: decimal.RequireFromString(percentage),
		AmountOwed:      decimal.RequireFromString(owed),
		CreatedAt:       time.Now().UTC(),
	}
}

func externalRow(expenseID, externalID uuid.UUID, name, percentage, owed string) *entity.ExpenseParticipant {
	return &entity.ExpenseParticipant{
		ID:                    uuid.New(),
		ExpenseID:             expenseID,
		ExternalParticipantID: &externalID,
		ExternalName:          name,
		SplitPercentage:       decimal.RequireFromString(percentage),
		AmountOwed:            decimal.RequireFromString(owed),
		CreatedAt:             time.Now().UTC(),
	}
}

func TestExpenseRepository_EqualSplitRoundTrip(t *testing.T) {
	f := newExpenseFixture(t)

	expense := entity.NewExpense(
		f.group.ID, f.trip.ID, nil, nil, f.payer.ID,
		"Group dinner", decimal.RequireFromString("90.00"), "food",
		valueobject.SplitTypeEqual,
	)
	externalID := uuid.New()
	withSplits := &entity.ExpenseWithSplits{
		Expense: expense,
		Participants: []*entity.ExpenseParticipant{
			memberRow(expense.ID, f.payer.ID, "33.3333", "30.00"),
			memberRow(expense.ID, f.other.ID, "33.3333", "30.00"),
			externalRow(expense.ID, externalID, "Uncle Bob", "33.3334", "30.00"),
		},
	}

	if err := f.repo.Create(f.context, withSplits); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	got, err := f.repo.FindByID(f.context, expense.ID)
	if err != nil {
		t.Fatalf("failed to find expense: %v", err)
	}
	if got == nil {
		t.Fatal("expected expense, got nil")
	}
	if !got.Expense.Amount.Equal(decimal.RequireFromString("90.00")) {
		t.Errorf("amount = %s, want 90.00", got.Expense.Amount)
	}
	if got.Expense.SplitType != valueobject.SplitTypeEqual {
		t.Errorf("split type = %s, want equal", got.Expense.SplitType)
	}
	if len(got.Participants) != 3 {
		t.Fatalf("loaded %d participant rows, want 3", len(got.Participants))
	}
	if len(got.LineItems) != 0 || len(got.ItemizedLists) != 0 {
		t.Error("equal split loaded rows from other split families")
	}

	var external *entity.ExpenseParticipant
	for _, p := range got.Participants {
		if p.IsExternal() {
			external = p
		}
	}
	if external == nil {
		t.Fatal("external participant row was not loaded")
	}
	if external.ExternalName != "Uncle Bob" {
		t.Errorf("external name = %q, want %q", external.ExternalName, "Uncle Bob")
	}
}

func TestExpenseRepository_LineItemSplitAttachesRowsToItems(t *testing.T) {
	f := newExpenseFixture(t)

	expense := entity.NewExpense(
		f.group.ID, f.trip.ID, nil, nil, f.payer.ID,
		"Market run", decimal.RequireFromString("50.00"), "food",
		valueobject.SplitTypeManual,
	)
	lineItem := &entity.ExpenseLineItem{
		ID:          uuid.New(),
		ExpenseID:   expense.ID,
		Description: "Wine",
		Amount:      decimal.RequireFromString("25.00"),
		Quantity:    2,
		Category:    "food",
		CreatedAt:   time.Now().UTC(),
	}
	row := memberRow(expense.ID, f.other.ID, "100", "50.00")
	row.LineItemID = &lineItem.ID
	lineItem.Participants = []*entity.ExpenseParticipant{row}

	withSplits := &entity.ExpenseWithSplits{
		Expense:   expense,
		LineItems: []*entity.ExpenseLineItem{lineItem},
	}
	if err := f.repo.Create(f.context, withSplits); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	got, err := f.repo.FindByID(f.context, expense.ID)
	if err != nil {
		t.Fatalf("failed to find expense: %v", err)
	}
	if len(got.Participants) != 0 {
		t.Errorf("line-item participant rows leaked to expense level: %d", len(got.Participants))
	}
	if len(got.LineItems) != 1 {
		t.Fatalf("loaded %d line items, want 1", len(got.LineItems))
	}
	item := got.LineItems[0]
	if item.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", item.Quantity)
	}
	if !item.Total().Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("item total = %s, want 50.00", item.Total())
	}
	if len(item.Participants) != 1 {
		t.Fatalf("loaded %d item participants, want 1", len(item.Participants))
	}
	if item.Participants[0].LineItemID == nil || *item.Participants[0].LineItemID != item.ID {
		t.Error("participant row is not anchored to its line item")
	}
}

func TestExpenseRepository_ItemizedSplitRoundTrip(t *testing.T) {
	f := newExpenseFixture(t)

	expense := entity.NewExpense(
		f.group.ID, f.trip.ID, nil, nil, f.payer.ID,
		"Pharmacy", decimal.RequireFromString("40.00"), "shopping",
		valueobject.SplitTypeItemized,
	)
	list := &entity.ParticipantItemizedList{
		ID:              uuid.New(),
		ExpenseID:       expense.ID,
		ParticipantID:   &f.other.ID,
		TotalAmount:     decimal.RequireFromString("40.00"),
		SplitPercentage: decimal.RequireFromString("100"),
		CreatedAt:       time.Now().UTC(),
	}
	list.Items = []*entity.ExpenseItem{
		{
			ID:             uuid.New(),
			ItemizedListID: list.ID,
			Description:    "Sunscreen",
			Amount:         decimal.RequireFromString("15.00"),
			Quantity:       1,
			CreatedAt:      time.Now().UTC(),
		},
		{
			ID:             uuid.New(),
			ItemizedListID: list.ID,
			Description:    "Bandages",
			Amount:         decimal.RequireFromString("12.50"),
			Quantity:       2,
			CreatedAt:      time.Now().UTC().Add(time.Millisecond),
		},
	}

	withSplits := &entity.ExpenseWithSplits{
		Expense:       expense,
		ItemizedLists: []*entity.ParticipantItemizedList{list},
	}
	if err := f.repo.Create(f.context, withSplits); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	got, err := f.repo.FindByID(f.context, expense.ID)
	if err != nil {
		t.Fatalf("failed to find expense: %v", err)
	}
	if len(got.ItemizedLists) != 1 {
		t.Fatalf("loaded %d itemized lists, want 1", len(got.ItemizedLists))
	}
	gotList := got.ItemizedLists[0]
	if len(gotList.Items) != 2 {
		t.Fatalf("loaded %d items, want 2", len(gotList.Items))
	}
	if !gotList.TotalAmount.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("list total = %s, want 40.00", gotList.TotalAmount)
	}
	if gotList.IsExternal() {
		t.Error("member-owned list reported as external")
	}
}

func TestExpenseRepository_ReplaceSwapsSplitFamily(t *testing.T) {
	f := newExpenseFixture(t)

	expense := entity.NewExpense(
		f.group.ID, f.trip.ID, nil, nil, f.payer.ID,
		"Taxi", decimal.RequireFromString("20.00"), "transport",
		valueobject.SplitTypeEqual,
	)
	withSplits := &entity.ExpenseWithSplits{
		Expense: expense,
		Participants: []*entity.ExpenseParticipant{
			memberRow(expense.ID, f.payer.ID, "50", "10.00"),
			memberRow(expense.ID, f.other.ID, "50", "10.00"),
		},
	}
	if err := f.repo.Create(f.context, withSplits); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	expense.SplitType = valueobject.SplitTypeManual
	expense.Amount = decimal.RequireFromString("25.00")
	replacement := &entity.ExpenseWithSplits{
		Expense: expense,
		Participants: []*entity.ExpenseParticipant{
			memberRow(expense.ID, f.other.ID, "100", "25.00"),
		},
	}
	if err := f.repo.Replace(f.context, replacement); err != nil {
		t.Fatalf("failed to replace expense: %v", err)
	}

	got, err := f.repo.FindByID(f.context, expense.ID)
	if err != nil {
		t.Fatalf("failed to find expense: %v", err)
	}
	if got.Expense.SplitType != valueobject.SplitTypeManual {
		t.Errorf("split type = %s, want manual", got.Expense.SplitType)
	}
	if !got.Expense.Amount.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("amount = %s, want 25.00", got.Expense.Amount)
	}
	if len(got.Participants) != 1 {
		t.Fatalf("loaded %d participant rows after replace, want 1", len(got.Participants))
	}
	if got.Participants[0].ParticipantID == nil || *got.Participants[0].ParticipantID != f.other.ID {
		t.Error("replacement row does not belong to the expected member")
	}
}

func TestExpenseRepository_DeleteRemovesSplitRows(t *testing.T) {
	f := newExpenseFixture(t)

	expense := entity.NewExpense(
		f.group.ID, f.trip.ID, nil, nil, f.payer.ID,
		"Museum tickets", decimal.RequireFromString("30.00"), "activities",
		valueobject.SplitTypeEqual,
	)
	withSplits := &entity.ExpenseWithSplits{
		Expense: expense,
		Participants: []*entity.ExpenseParticipant{
			memberRow(expense.ID, f.payer.ID, "100", "30.00"),
		},
	}
	if err := f.repo.Create(f.context, withSplits); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	if err := f.repo.Delete(f.context, expense.ID); err != nil {
		t.Fatalf("failed to delete expense: %v", err)
	}

	got, err := f.repo.FindByID(f.context, expense.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected expense to be gone")
	}

	var count int64
	if err := f.db.Table("expense_participants").Where("expense_id = ?", expense.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count split rows: %v", err)
	}
	if count != 0 {
		t.Errorf("found %d orphaned participant rows, want 0", count)
	}
}

func TestExpenseRepository_FindByTripIDScopesAndOrders(t *testing.T) {
	f := newExpenseFixture(t)

	otherTrip, _ := seedTrip(t, f.db, f.group.ID, f.payer.ID, date(2026, time.August, 1), date(2026, time.August, 2))

	older := entity.NewExpense(
		f.group.ID, f.trip.ID, nil, nil, f.payer.ID,
		"Breakfast", decimal.RequireFromString("10.00"), "food",
		valueobject.SplitTypeEqual,
	)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := entity.NewExpense(
		f.group.ID, f.trip.ID, nil, nil, f.payer.ID,
		"Lunch", decimal.RequireFromString("18.00"), "food",
		valueobject.SplitTypeEqual,
	)
	elsewhere := entity.NewExpense(
		f.group.ID, otherTrip.ID, nil, nil, f.payer.ID,
		"Ferry", decimal.RequireFromString("8.00"), "transport",
		valueobject.SplitTypeEqual,
	)

	for _, e := range []*entity.Expense{older, newer, elsewhere} {
		withSplits := &entity.ExpenseWithSplits{
			Expense: e,
			Participants: []*entity.ExpenseParticipant{
				memberRow(e.ID, f.payer.ID, "100", e.Amount.String()),
			},
		}
		if err := f.repo.Create(f.context, withSplits); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	got, err := f.repo.FindByTripID(f.context, f.trip.ID)
	if err != nil {
		t.Fatalf("failed to list trip expenses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("listed %d expenses, want 2", len(got))
	}
	if got[0].Expense.ID != newer.ID {
		t.Error("expected newest expense first")
	}
	if got[1].Expense.ID != older.ID {
		t.Error("expected oldest expense last")
	}
}
