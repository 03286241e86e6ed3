// Package balance contains balance aggregation use cases.
package balance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// flatExpense builds an equal/manual expense where each pair is a debtor
// user id (or external name) and the amount they owe the payer.
func flatExpense(tripID, payer uuid.UUID, total string, rows ...*entity.ExpenseParticipant) *entity.ExpenseWithSplits {
	expense := entity.NewExpense(
		uuid.New(), tripID, nil, nil, payer,
		"shared cost", amount(total), "food", valueobject.SplitTypeManual,
	)
	for _, row := range rows {
		row.ExpenseID = expense.ID
	}
	return &entity.ExpenseWithSplits{Expense: expense, Participants: rows}
}

func memberRow(userID uuid.UUID, owed string) *entity.ExpenseParticipant {
	return &entity.ExpenseParticipant{
		ID:            uuid.New(),
		ParticipantID: &userID,
		AmountOwed:    amount(owed),
	}
}

func externalRow(externalID *uuid.UUID, name, owed string) *entity.ExpenseParticipant {
	return &entity.ExpenseParticipant{
		ID:                    uuid.New(),
		ExternalParticipantID: externalID,
		ExternalName:          name,
		AmountOwed:            amount(owed),
	}
}

func TestAggregate_BasicDebts(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	tripID := uuid.New()
	names := map[uuid.UUID]string{alice: "Alice", bob: "Bob"}
	tripNames := map[uuid.UUID]string{tripID: "Lisbon"}

	// Alice paid 100, split 50/50 with Bob.
	expenses := []*entity.ExpenseWithSplits{
		flatExpense(tripID, alice, "100",
			memberRow(alice, "50"),
			memberRow(bob, "50"),
		),
	}

	bobView := Aggregate(AggregateInput{MemberID: bob, Expenses: expenses, TripNames: tripNames, MemberNames: names})

	if !bobView.TotalYouOwe.Equal(amount("50")) {
		t.Errorf("bob should owe 50, got %s", bobView.TotalYouOwe)
	}
	if !bobView.TotalOwedToYou.IsZero() {
		t.Errorf("bob should be owed nothing, got %s", bobView.TotalOwedToYou)
	}
	if !bobView.NetBalance.Equal(amount("-50")) {
		t.Errorf("bob net should be -50, got %s", bobView.NetBalance)
	}
	if len(bobView.YouOwe) != 1 || bobView.YouOwe[0].Party.Name != "Alice" {
		t.Fatalf("bob should owe alice, got %+v", bobView.YouOwe)
	}

	aliceView := Aggregate(AggregateInput{MemberID: alice, Expenses: expenses, TripNames: tripNames, MemberNames: names})

	if !aliceView.TotalOwedToYou.Equal(amount("50")) {
		t.Errorf("alice should be owed 50, got %s", aliceView.TotalOwedToYou)
	}
	// The payer's own 50 share is not a debt.
	if !aliceView.TotalYouOwe.IsZero() {
		t.Errorf("alice should owe nothing, got %s", aliceView.TotalYouOwe)
	}
}

func TestAggregate_OpposingDebtsStayGross(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	tripID := uuid.New()
	names := map[uuid.UUID]string{alice: "Alice", bob: "Bob"}
	tripNames := map[uuid.UUID]string{tripID: "Lisbon"}

	// Alice paid 100 (Bob owes 50); Bob paid 60 (Alice owes 30).
	expenses := []*entity.ExpenseWithSplits{
		flatExpense(tripID, alice, "100",
			memberRow(alice, "50"),
			memberRow(bob, "50"),
		),
		flatExpense(tripID, bob, "60",
			memberRow(alice, "30"),
			memberRow(bob, "30"),
		),
	}

	bobView := Aggregate(AggregateInput{MemberID: bob, Expenses: expenses, TripNames: tripNames, MemberNames: names})

	// Totals are gross; only the net offsets the two directions.
	if !bobView.TotalYouOwe.Equal(amount("50")) {
		t.Errorf("bob should owe a gross 50, got %s", bobView.TotalYouOwe)
	}
	if !bobView.TotalOwedToYou.Equal(amount("30")) {
		t.Errorf("bob should be owed a gross 30, got %s", bobView.TotalOwedToYou)
	}
	if !bobView.NetBalance.Equal(amount("-20")) {
		t.Errorf("bob net should be -20, got %s", bobView.NetBalance)
	}

	// Alice appears on both sides, each direction gross.
	if len(bobView.YouOwe) != 1 || !bobView.YouOwe[0].Amount.Equal(amount("50")) {
		t.Fatalf("bob should owe alice 50, got %+v", bobView.YouOwe)
	}
	if len(bobView.OwedToYou) != 1 || !bobView.OwedToYou[0].Amount.Equal(amount("30")) {
		t.Fatalf("alice should owe bob 30, got %+v", bobView.OwedToYou)
	}

	// The single-trip entry carries the same totals as the summary.
	if len(bobView.Trips) != 1 {
		t.Fatalf("expected 1 trip entry, got %d", len(bobView.Trips))
	}
	if !bobView.Trips[0].TotalYouOwe.Equal(bobView.TotalYouOwe) ||
		!bobView.Trips[0].TotalOwedToYou.Equal(bobView.TotalOwedToYou) {
		t.Errorf("trip entry %+v disagrees with summary totals %s/%s",
			bobView.Trips[0], bobView.TotalYouOwe, bobView.TotalOwedToYou)
	}

	// Symmetry: alice's view is the mirror image.
	aliceView := Aggregate(AggregateInput{MemberID: alice, Expenses: expenses, TripNames: tripNames, MemberNames: names})
	if !aliceView.TotalYouOwe.Equal(amount("30")) || !aliceView.TotalOwedToYou.Equal(amount("50")) {
		t.Errorf("alice should owe 30 and be owed 50, got %s/%s",
			aliceView.TotalYouOwe, aliceView.TotalOwedToYou)
	}
	if !aliceView.NetBalance.Equal(amount("20")) {
		t.Errorf("alice net should be 20, got %s", aliceView.NetBalance)
	}
}

func TestAggregate_ExternalParticipants(t *testing.T) {
	alice := uuid.New()
	jimID := uuid.New()
	tripID := uuid.New()
	names := map[uuid.UUID]string{alice: "Alice"}
	tripNames := map[uuid.UUID]string{tripID: "Lisbon"}

	expenses := []*entity.ExpenseWithSplits{
		flatExpense(tripID, alice, "80",
			memberRow(alice, "40"),
			externalRow(&jimID, "Uncle Jim", "25"),
			externalRow(nil, "Walk-in Guest", "15"),
		),
	}

	view := Aggregate(AggregateInput{MemberID: alice, Expenses: expenses, TripNames: tripNames, MemberNames: names})

	if !view.TotalOwedToYou.Equal(amount("40")) {
		t.Errorf("alice should be owed 40, got %s", view.TotalOwedToYou)
	}
	if len(view.OwedToYou) != 2 {
		t.Fatalf("expected 2 external debtors, got %d", len(view.OwedToYou))
	}
	if view.OwedToYou[0].Party.Name != "Uncle Jim" {
		t.Errorf("expected Uncle Jim first, got %q", view.OwedToYou[0].Party.Name)
	}
	if view.OwedToYou[0].Party.ExternalParticipantID == nil {
		t.Error("resolved external should carry its record id")
	}
	if view.OwedToYou[1].Party.Name != "Walk-in Guest" {
		t.Errorf("expected name-only external kept, got %q", view.OwedToYou[1].Party.Name)
	}
}

func TestAggregate_ItemizedLists(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	tripID := uuid.New()
	names := map[uuid.UUID]string{alice: "Alice", bob: "Bob"}

	expense := entity.NewExpense(
		uuid.New(), tripID, nil, nil, alice,
		"dinner", amount("100"), "food", valueobject.SplitTypeItemized,
	)
	withSplits := &entity.ExpenseWithSplits{
		Expense: expense,
		ItemizedLists: []*entity.ParticipantItemizedList{
			{ID: uuid.New(), ExpenseID: expense.ID, ParticipantID: &alice, TotalAmount: amount("60")},
			{ID: uuid.New(), ExpenseID: expense.ID, ParticipantID: &bob, TotalAmount: amount("40")},
		},
	}

	view := Aggregate(AggregateInput{
		MemberID:    bob,
		Expenses:    []*entity.ExpenseWithSplits{withSplits},
		TripNames:   map[uuid.UUID]string{tripID: "Lisbon"},
		MemberNames: names,
	})

	if !view.TotalYouOwe.Equal(amount("40")) {
		t.Errorf("bob should owe his item total 40, got %s", view.TotalYouOwe)
	}
}

func TestAggregate_TripBreakdown(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	lisbon := uuid.New()
	porto := uuid.New()
	names := map[uuid.UUID]string{alice: "Alice", bob: "Bob"}
	tripNames := map[uuid.UUID]string{lisbon: "Lisbon", porto: "Porto"}

	expenses := []*entity.ExpenseWithSplits{
		flatExpense(lisbon, alice, "100",
			memberRow(alice, "50"),
			memberRow(bob, "50"),
		),
		flatExpense(porto, alice, "40",
			memberRow(alice, "20"),
			memberRow(bob, "20"),
		),
	}

	view := Aggregate(AggregateInput{MemberID: bob, Expenses: expenses, TripNames: tripNames, MemberNames: names})

	if len(view.Trips) != 2 {
		t.Fatalf("expected 2 trip entries, got %d", len(view.Trips))
	}
	if view.Trips[0].TripName != "Lisbon" || !view.Trips[0].TotalYouOwe.Equal(amount("50")) {
		t.Errorf("unexpected lisbon entry: %+v", view.Trips[0])
	}
	if view.Trips[1].TripName != "Porto" || !view.Trips[1].NetBalance.Equal(amount("-20")) {
		t.Errorf("unexpected porto entry: %+v", view.Trips[1])
	}

	// The single counterparty debt itemizes both trips.
	if len(view.YouOwe) != 1 || len(view.YouOwe[0].Trips) != 2 {
		t.Fatalf("expected both trips on the alice debt, got %+v", view.YouOwe)
	}
	if !view.YouOwe[0].Amount.Equal(amount("70")) {
		t.Errorf("expected total debt 70, got %s", view.YouOwe[0].Amount)
	}
}

func TestAggregate_SkipsMalformedExpenses(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	tripID := uuid.New()
	names := map[uuid.UUID]string{alice: "Alice", bob: "Bob"}

	// The second expense has a row with no debtor identity at all.
	expenses := []*entity.ExpenseWithSplits{
		flatExpense(tripID, alice, "100",
			memberRow(alice, "50"),
			memberRow(bob, "50"),
		),
		flatExpense(tripID, alice, "30",
			&entity.ExpenseParticipant{ID: uuid.New(), AmountOwed: amount("30")},
		),
		// An expense with no rows at all is also malformed.
		{Expense: entity.NewExpense(uuid.New(), tripID, nil, nil, alice, "empty", amount("10"), "", valueobject.SplitTypeEqual)},
	}

	view := Aggregate(AggregateInput{
		MemberID:    bob,
		Expenses:    expenses,
		TripNames:   map[uuid.UUID]string{tripID: "Lisbon"},
		MemberNames: names,
	})

	if view.SkippedExpenses != 2 {
		t.Errorf("expected 2 skipped expenses, got %d", view.SkippedExpenses)
	}
	// The healthy expense still aggregates.
	if !view.TotalYouOwe.Equal(amount("50")) {
		t.Errorf("bob should still owe 50, got %s", view.TotalYouOwe)
	}
}

func TestAggregate_EmptyScope(t *testing.T) {
	view := Aggregate(AggregateInput{MemberID: uuid.New()})

	if !view.TotalYouOwe.IsZero() || !view.TotalOwedToYou.IsZero() || !view.NetBalance.IsZero() {
		t.Errorf("empty scope should be all zeros, got %+v", view)
	}
	if len(view.YouOwe) != 0 || len(view.OwedToYou) != 0 || len(view.Trips) != 0 {
		t.Error("empty scope should have no breakdown entries")
	}
}
