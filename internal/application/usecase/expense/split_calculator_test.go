package expense

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

func newTestExpense(amount string, splitType valueobject.SplitType) *entity.Expense {
	return entity.NewExpense(
		uuid.New(), uuid.New(), nil, nil, uuid.New(),
		"test expense", decimal.RequireFromString(amount), "food", splitType,
	)
}

func TestCalculateSplits_FlatShares(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	expense := newTestExpense("90.00", valueobject.SplitTypeManual)

	spec := valueobject.SplitSpec{
		Type: valueobject.SplitTypeManual,
		Shares: []valueobject.FlatShare{
			{Target: valueobject.MemberTarget(alice), Percentage: pct("25")},
			{Target: valueobject.MemberTarget(bob), Percentage: pct("75")},
		},
	}

	result := CalculateSplits(expense, spec, nil)

	if len(result.Participants) != 2 {
		t.Fatalf("expected 2 participant rows, got %d", len(result.Participants))
	}

	wantOwed := []string{"22.5", "67.5"}
	for i, row := range result.Participants {
		if !row.AmountOwed.Equal(pct(wantOwed[i])) {
			t.Errorf("row %d: expected amount owed %s, got %s", i, wantOwed[i], row.AmountOwed)
		}
		if row.ExpenseID != expense.ID {
			t.Errorf("row %d: expected expense id %s, got %s", i, expense.ID, row.ExpenseID)
		}
		if row.LineItemID != nil {
			t.Errorf("row %d: top-level share must not carry a line item id", i)
		}
	}

	total := result.Participants[0].AmountOwed.Add(result.Participants[1].AmountOwed)
	if !total.Equal(expense.Amount) {
		t.Errorf("amounts owed should sum to the expense amount, got %s", total)
	}
}

func TestCalculateSplits_LineItems(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	expense := newTestExpense("110.00", valueobject.SplitTypeManual)

	spec := valueobject.SplitSpec{
		Type: valueobject.SplitTypeManual,
		LineItems: []valueobject.LineItemSpec{
			{
				Description: "room",
				Amount:      pct("50"),
				Quantity:    2,
				Shares: []valueobject.FlatShare{
					{Target: valueobject.MemberTarget(alice), Percentage: pct("50")},
					{Target: valueobject.MemberTarget(bob), Percentage: pct("50")},
				},
			},
			{
				Description: "breakfast",
				Amount:      pct("10"),
				Shares: []valueobject.FlatShare{
					{Target: valueobject.MemberTarget(alice), Percentage: pct("100")},
				},
			},
		},
	}

	result := CalculateSplits(expense, spec, nil)

	if len(result.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(result.LineItems))
	}

	room := result.LineItems[0]
	// Base is amount times quantity: 50 * 2 = 100, split 50/50.
	for i, row := range room.Participants {
		if !row.AmountOwed.Equal(pct("50")) {
			t.Errorf("room row %d: expected 50 owed, got %s", i, row.AmountOwed)
		}
		if row.LineItemID == nil || *row.LineItemID != room.ID {
			t.Errorf("room row %d: expected line item id %s", i, room.ID)
		}
	}

	breakfast := result.LineItems[1]
	if !breakfast.Participants[0].AmountOwed.Equal(pct("10")) {
		t.Errorf("expected breakfast owed 10, got %s", breakfast.Participants[0].AmountOwed)
	}
}

func TestCalculateSplits_Itemized(t *testing.T) {
	alice := uuid.New()
	expense := newTestExpense("100.00", valueobject.SplitTypeItemized)

	spec := valueobject.SplitSpec{
		Type: valueobject.SplitTypeItemized,
		ItemizedLists: []valueobject.ItemizedListSpec{
			{
				Target: valueobject.MemberTarget(alice),
				Items: []valueobject.ItemSpec{
					{Description: "pasta", Amount: pct("30")},
				},
			},
			{
				Target: valueobject.ExternalTarget("Uncle Jim"),
				Items: []valueobject.ItemSpec{
					{Description: "wine", Amount: pct("35"), Quantity: 2},
				},
			},
		},
	}

	result := CalculateSplits(expense, spec, nil)

	if len(result.ItemizedLists) != 2 {
		t.Fatalf("expected 2 itemized lists, got %d", len(result.ItemizedLists))
	}

	aliceList := result.ItemizedLists[0]
	if !aliceList.TotalAmount.Equal(pct("30")) {
		t.Errorf("expected alice total 30, got %s", aliceList.TotalAmount)
	}
	if !aliceList.SplitPercentage.Equal(pct("30")) {
		t.Errorf("expected alice derived percentage 30, got %s", aliceList.SplitPercentage)
	}

	jimList := result.ItemizedLists[1]
	if !jimList.TotalAmount.Equal(pct("70")) {
		t.Errorf("expected jim total 70, got %s", jimList.TotalAmount)
	}
	if !jimList.SplitPercentage.Equal(pct("70")) {
		t.Errorf("expected jim derived percentage 70, got %s", jimList.SplitPercentage)
	}
	if jimList.ExternalName != "Uncle Jim" {
		t.Errorf("expected external name to be carried, got %q", jimList.ExternalName)
	}
	if len(jimList.Items) != 1 || jimList.Items[0].ItemizedListID != jimList.ID {
		t.Error("expected jim's item to be anchored to his list")
	}
}

func TestCalculateSplits_ItemizedZeroGrandTotal(t *testing.T) {
	alice := uuid.New()
	expense := newTestExpense("0.01", valueobject.SplitTypeItemized)

	spec := valueobject.SplitSpec{
		Type: valueobject.SplitTypeItemized,
		ItemizedLists: []valueobject.ItemizedListSpec{
			{Target: valueobject.MemberTarget(alice), Items: []valueobject.ItemSpec{
				{Description: "freebie", Amount: decimal.Zero},
			}},
		},
	}

	result := CalculateSplits(expense, spec, nil)

	if !result.ItemizedLists[0].SplitPercentage.IsZero() {
		t.Errorf("expected zero percentage for zero grand total, got %s", result.ItemizedLists[0].SplitPercentage)
	}
}

func TestCalculateSplits_ExternalBinding(t *testing.T) {
	expense := newTestExpense("40.00", valueobject.SplitTypeEqual)
	jim := entity.NewExternalParticipant(expense.GroupID, "Uncle Jim")
	resolved := map[string]*entity.ExternalParticipant{"Uncle Jim": jim}

	spec := valueobject.SplitSpec{
		Type: valueobject.SplitTypeEqual,
		Shares: []valueobject.FlatShare{
			{Target: valueobject.ExternalTarget("Uncle Jim"), Percentage: pct("50")},
			{Target: valueobject.ExternalTarget("Unseen Guest"), Percentage: pct("50")},
		},
	}

	result := CalculateSplits(expense, spec, resolved)

	bound := result.Participants[0]
	if bound.ExternalParticipantID == nil || *bound.ExternalParticipantID != jim.ID {
		t.Error("expected resolved external participant id on the first row")
	}
	if bound.ExternalName != "Uncle Jim" {
		t.Errorf("expected external name kept, got %q", bound.ExternalName)
	}
	if !bound.IsExternal() {
		t.Error("expected row to report as external")
	}

	unbound := result.Participants[1]
	if unbound.ExternalParticipantID != nil {
		t.Error("unresolved name must not carry a participant id")
	}
	if unbound.ExternalName != "Unseen Guest" {
		t.Errorf("expected free-text name kept, got %q", unbound.ExternalName)
	}
}
