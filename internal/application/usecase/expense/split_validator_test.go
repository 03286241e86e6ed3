// Package expense contains expense-related use cases.
package expense

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/valueobject"
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func memberSet(ids ...uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func TestValidateSplit_FlatPercentages(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	members := memberSet(alice, bob, carol)
	amount := pct("90.00")

	tests := []struct {
		name        string
		percentages []string
		wantValid   bool
	}{
		{"exact 100", []string{"50", "30", "20"}, true},
		{"uneven thirds within tolerance", []string{"33.33", "33.33", "33.34"}, true},
		{"off by exactly the tolerance", []string{"33.33", "33.33", "33.35"}, true},
		{"off by more than the tolerance", []string{"33.33", "33.33", "33.36"}, false},
		{"sums to 99", []string{"33", "33", "33"}, false},
		{"sums to 150", []string{"50", "50", "50"}, false},
	}

	targets := []valueobject.SplitTarget{
		valueobject.MemberTarget(alice),
		valueobject.MemberTarget(bob),
		valueobject.MemberTarget(carol),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valueobject.SplitSpec{Type: valueobject.SplitTypeManual}
			for i, p := range tt.percentages {
				spec.Shares = append(spec.Shares, valueobject.FlatShare{
					Target:     targets[i],
					Percentage: pct(p),
				})
			}

			err := ValidateSplit(spec, amount, members)
			if tt.wantValid && err != nil {
				t.Errorf("expected valid split, got violations: %v", err.Violations)
			}
			if !tt.wantValid {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Violations[0], "expected 100") {
					t.Errorf("expected percentage violation, got %q", err.Violations[0])
				}
			}
		})
	}
}

func TestValidateSplit_LineItems(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	members := memberSet(alice, bob)

	t.Run("each item validated independently", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeManual,
			LineItems: []valueobject.LineItemSpec{
				{
					Description: "hotel room",
					Amount:      pct("200"),
					Shares: []valueobject.FlatShare{
						{Target: valueobject.MemberTarget(alice), Percentage: pct("50")},
						{Target: valueobject.MemberTarget(bob), Percentage: pct("50")},
					},
				},
				{
					Description: "parking",
					Amount:      pct("30"),
					Shares: []valueobject.FlatShare{
						{Target: valueobject.MemberTarget(alice), Percentage: pct("60")},
						{Target: valueobject.MemberTarget(bob), Percentage: pct("30")},
					},
				},
			},
		}

		err := ValidateSplit(spec, pct("230"), members)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		if len(err.Violations) != 1 {
			t.Fatalf("expected 1 violation, got %d: %v", len(err.Violations), err.Violations)
		}
		if !strings.Contains(err.Violations[0], "parking") {
			t.Errorf("violation should name the offending item, got %q", err.Violations[0])
		}
	})

	t.Run("all items valid", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeManual,
			LineItems: []valueobject.LineItemSpec{
				{
					Description: "dinner",
					Amount:      pct("25"),
					Quantity:    2,
					Shares: []valueobject.FlatShare{
						{Target: valueobject.MemberTarget(alice), Percentage: pct("100")},
					},
				},
			},
		}

		if err := ValidateSplit(spec, pct("50"), members); err != nil {
			t.Errorf("expected valid split, got violations: %v", err.Violations)
		}
	})

	t.Run("non-positive item amount rejected", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeManual,
			LineItems: []valueobject.LineItemSpec{
				{
					Description: "refund",
					Amount:      pct("-10"),
					Shares: []valueobject.FlatShare{
						{Target: valueobject.MemberTarget(alice), Percentage: pct("100")},
					},
				},
			},
		}

		err := ValidateSplit(spec, pct("10"), members)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		if !strings.Contains(err.Violations[0], "non-positive") {
			t.Errorf("expected amount violation, got %q", err.Violations[0])
		}
	})
}

func TestValidateSplit_Itemized(t *testing.T) {
	alice := uuid.New()
	members := memberSet(alice)

	t.Run("totals must match the declared amount", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeItemized,
			ItemizedLists: []valueobject.ItemizedListSpec{
				{
					Target: valueobject.MemberTarget(alice),
					Items: []valueobject.ItemSpec{
						{Description: "steak", Amount: pct("42.50")},
						{Description: "beer", Amount: pct("6"), Quantity: 3},
					},
				},
			},
		}

		err := ValidateSplit(spec, pct("70.00"), members)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		violation := err.Violations[0]
		if !strings.Contains(violation, "60.5") || !strings.Contains(violation, "70") {
			t.Errorf("violation should report both totals, got %q", violation)
		}
	})

	t.Run("matching totals pass", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeItemized,
			ItemizedLists: []valueobject.ItemizedListSpec{
				{
					Target: valueobject.MemberTarget(alice),
					Items: []valueobject.ItemSpec{
						{Description: "steak", Amount: pct("42.50")},
					},
				},
				{
					Target: valueobject.ExternalTarget("Uncle Jim"),
					Items: []valueobject.ItemSpec{
						{Description: "beer", Amount: pct("6"), Quantity: 3},
					},
				},
			},
		}

		if err := ValidateSplit(spec, pct("60.50"), members); err != nil {
			t.Errorf("expected valid split, got violations: %v", err.Violations)
		}
	})
}

func TestValidateSplit_Targets(t *testing.T) {
	alice := uuid.New()
	stranger := uuid.New()
	members := memberSet(alice)

	t.Run("member outside the group is rejected", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeManual,
			Shares: []valueobject.FlatShare{
				{Target: valueobject.MemberTarget(alice), Percentage: pct("50")},
				{Target: valueobject.MemberTarget(stranger), Percentage: pct("50")},
			},
		}

		err := ValidateSplit(spec, pct("10"), members)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		if !strings.Contains(err.Violations[0], stranger.String()) {
			t.Errorf("violation should name the stranger, got %q", err.Violations[0])
		}
	})

	t.Run("external participants need no membership", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeEqual,
			Shares: []valueobject.FlatShare{
				{Target: valueobject.MemberTarget(alice), Percentage: pct("50")},
				{Target: valueobject.ExternalTarget("Uncle Jim"), Percentage: pct("50")},
			},
		}

		if err := ValidateSplit(spec, pct("10"), members); err != nil {
			t.Errorf("expected valid split, got violations: %v", err.Violations)
		}
	})

	t.Run("target with neither side set is rejected", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeManual,
			Shares: []valueobject.FlatShare{
				{Target: valueobject.SplitTarget{}, Percentage: pct("100")},
			},
		}

		err := ValidateSplit(spec, pct("10"), members)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
	})
}

func TestValidateSplit_CollectsAllViolations(t *testing.T) {
	stranger := uuid.New()
	members := memberSet(uuid.New())

	// Bad percentages and a non-member in one spec: both must be reported.
	spec := valueobject.SplitSpec{
		Type: valueobject.SplitTypeManual,
		Shares: []valueobject.FlatShare{
			{Target: valueobject.MemberTarget(stranger), Percentage: pct("80")},
		},
	}

	err := ValidateSplit(spec, pct("10"), members)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if len(err.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(err.Violations), err.Violations)
	}
}

func TestValidateSplit_Shape(t *testing.T) {
	alice := uuid.New()
	members := memberSet(alice)

	t.Run("unknown split type", func(t *testing.T) {
		spec := valueobject.SplitSpec{Type: "percentage"}
		err := ValidateSplit(spec, pct("10"), members)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		if !strings.Contains(err.Violations[0], "percentage") {
			t.Errorf("expected unknown type violation, got %q", err.Violations[0])
		}
	})

	t.Run("empty split", func(t *testing.T) {
		spec := valueobject.SplitSpec{Type: valueobject.SplitTypeEqual}
		if err := ValidateSplit(spec, pct("10"), members); err == nil {
			t.Fatal("expected validation error, got nil")
		}
	})

	t.Run("equal split rejects itemized lists", func(t *testing.T) {
		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeEqual,
			ItemizedLists: []valueobject.ItemizedListSpec{
				{Target: valueobject.MemberTarget(alice), Items: []valueobject.ItemSpec{{Description: "x", Amount: pct("10")}}},
			},
		}
		if err := ValidateSplit(spec, pct("10"), members); err == nil {
			t.Fatal("expected validation error, got nil")
		}
	})
}
