// Package valueobject contains domain value objects for the Trip Planner system.
package valueobject

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitType represents how an expense is divided among participants.
type SplitType string

const (
	// SplitTypeEqual divides the expense by explicit per-participant
	// percentages that the caller computed as equal shares.
	SplitTypeEqual SplitType = "equal"
	// SplitTypeManual divides the expense by caller-provided percentages,
	// either against the whole amount or per line item.
	SplitTypeManual SplitType = "manual"
	// SplitTypeItemized divides the expense by per-participant item lists;
	// percentages are derived from item totals, never provided.
	SplitTypeItemized SplitType = "itemized"
)

// IsValid reports whether the split type is one of the known modes.
func (t SplitType) IsValid() bool {
	return t == SplitTypeEqual || t == SplitTypeManual || t == SplitTypeItemized
}

// PercentageTolerance is the allowed deviation when percentages are
// compared against 100 and when itemized totals are compared against the
// declared expense amount.
var PercentageTolerance = decimal.NewFromFloat(0.01)

// SplitTarget identifies who a split row belongs to: either a group member
// (by user id) or an external participant (by free-text name). Exactly one
// side must be set.
type SplitTarget struct {
	MemberID     *uuid.UUID
	ExternalName string
}

// MemberTarget builds a SplitTarget for a group member.
func MemberTarget(userID uuid.UUID) SplitTarget {
	return SplitTarget{MemberID: &userID}
}

// ExternalTarget builds a SplitTarget for a named external participant.
func ExternalTarget(name string) SplitTarget {
	return SplitTarget{ExternalName: name}
}

// IsMember reports whether the target refers to a group member.
func (t SplitTarget) IsMember() bool {
	return t.MemberID != nil
}

// IsWellFormed reports whether exactly one side of the union is set.
func (t SplitTarget) IsWellFormed() bool {
	if t.MemberID != nil {
		return t.ExternalName == ""
	}
	return t.ExternalName != ""
}

// FlatShare is one participant's percentage of a flat or line-item split.
type FlatShare struct {
	Target     SplitTarget
	Percentage decimal.Decimal
}

// LineItemSpec is one sub-item of a manual split, carrying its own set of
// percentage shares that must sum to 100 independently.
type LineItemSpec struct {
	Description string
	Amount      decimal.Decimal
	Quantity    int
	Category    string
	Shares      []FlatShare
}

// Total returns the line item's amount multiplied by its quantity.
func (li LineItemSpec) Total() decimal.Decimal {
	qty := li.Quantity
	if qty <= 0 {
		qty = 1
	}
	return li.Amount.Mul(decimal.NewFromInt(int64(qty)))
}

// ItemSpec is a single item on a participant's itemized list.
type ItemSpec struct {
	Description string
	Amount      decimal.Decimal
	Quantity    int
	Category    string
}

// Total returns the item's amount multiplied by its quantity.
func (i ItemSpec) Total() decimal.Decimal {
	qty := i.Quantity
	if qty <= 0 {
		qty = 1
	}
	return i.Amount.Mul(decimal.NewFromInt(int64(qty)))
}

// ItemizedListSpec is one participant's item list in an itemized split.
type ItemizedListSpec struct {
	Target SplitTarget
	Items  []ItemSpec
}

// Total returns the sum of the list's item totals.
func (l ItemizedListSpec) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.Items {
		total = total.Add(item.Total())
	}
	return total
}

// SplitSpec is the full specification of how one expense is divided.
// Exactly one of Shares, LineItems, or ItemizedLists is populated,
// consistent with Type:
//
//   - equal/manual with Shares: percentages are consumed to derive amounts.
//   - manual with LineItems: each item's shares are consumed independently.
//   - itemized with ItemizedLists: percentages are derived from item
//     totals; the amounts are authoritative.
type SplitSpec struct {
	Type          SplitType
	Shares        []FlatShare
	LineItems     []LineItemSpec
	ItemizedLists []ItemizedListSpec
}

// GrandTotal returns the sum of all participants' itemized list totals.
// It is only meaningful for itemized splits.
func (s SplitSpec) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, list := range s.ItemizedLists {
		total = total.Add(list.Total())
	}
	return total
}

// Targets returns every split target referenced anywhere in the spec, in
// declaration order, including duplicates.
func (s SplitSpec) Targets() []SplitTarget {
	var targets []SplitTarget
	for _, share := range s.Shares {
		targets = append(targets, share.Target)
	}
	for _, li := range s.LineItems {
		for _, share := range li.Shares {
			targets = append(targets, share.Target)
		}
	}
	for _, list := range s.ItemizedLists {
		targets = append(targets, list.Target)
	}
	return targets
}
