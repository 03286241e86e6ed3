// Package expense contains expense-related use cases, including the split
// validation and calculation engine.
package expense

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

var oneHundred = decimal.NewFromInt(100)

// ValidateSplit checks a split specification against the expense amount
// and the group's member set. It is a pure function: it collects every
// violation instead of stopping at the first, and has no side effects.
//
// groupMemberIDs is the full member set of the expense's group, fetched
// once by the caller so membership is batch-checked rather than looked up
// per row.
func ValidateSplit(spec valueobject.SplitSpec, amount decimal.Decimal, groupMemberIDs map[uuid.UUID]bool) *domainerror.SplitValidationError {
	var violations []string

	if !spec.Type.IsValid() {
		violations = append(violations, fmt.Sprintf("unknown split type %q", spec.Type))
		return domainerror.NewSplitValidationError(violations)
	}

	violations = append(violations, checkShape(spec)...)

	switch spec.Type {
	case valueobject.SplitTypeEqual, valueobject.SplitTypeManual:
		if len(spec.Shares) > 0 {
			violations = append(violations, checkFlatShares(spec.Shares)...)
		}
		if len(spec.LineItems) > 0 {
			violations = append(violations, checkLineItems(spec.LineItems)...)
		}
	case valueobject.SplitTypeItemized:
		violations = append(violations, checkItemizedTotal(spec, amount)...)
	}

	violations = append(violations, checkTargets(spec, groupMemberIDs)...)

	if len(violations) == 0 {
		return nil
	}
	return domainerror.NewSplitValidationError(violations)
}

// checkShape verifies that exactly one split-row family is populated and
// that it matches the declared split type.
func checkShape(spec valueobject.SplitSpec) []string {
	var violations []string

	populated := 0
	if len(spec.Shares) > 0 {
		populated++
	}
	if len(spec.LineItems) > 0 {
		populated++
	}
	if len(spec.ItemizedLists) > 0 {
		populated++
	}

	switch {
	case populated == 0:
		violations = append(violations, "split has no participants, line items, or itemized lists")
	case populated > 1:
		violations = append(violations, "split must populate exactly one of participants, line items, or itemized lists")
	}

	switch spec.Type {
	case valueobject.SplitTypeEqual:
		if len(spec.LineItems) > 0 || len(spec.ItemizedLists) > 0 {
			violations = append(violations, "equal split only accepts a flat participant list")
		}
	case valueobject.SplitTypeItemized:
		if len(spec.Shares) > 0 || len(spec.LineItems) > 0 {
			violations = append(violations, "itemized split only accepts per-participant item lists")
		}
	}

	return violations
}

// checkFlatShares verifies that flat percentages sum to 100 within tolerance.
func checkFlatShares(shares []valueobject.FlatShare) []string {
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Percentage)
	}
	if total.Sub(oneHundred).Abs().GreaterThan(valueobject.PercentageTolerance) {
		return []string{fmt.Sprintf("split percentages sum to %s, expected 100", total.String())}
	}
	return nil
}

// checkLineItems verifies each line item's shares independently; a
// violation names the offending item so the caller can locate it.
func checkLineItems(items []valueobject.LineItemSpec) []string {
	var violations []string
	for _, item := range items {
		if !item.Amount.IsPositive() {
			violations = append(violations, fmt.Sprintf("line item %q has a non-positive amount", item.Description))
		}
		total := decimal.Zero
		for _, share := range item.Shares {
			total = total.Add(share.Percentage)
		}
		if total.Sub(oneHundred).Abs().GreaterThan(valueobject.PercentageTolerance) {
			violations = append(violations, fmt.Sprintf("line item %q percentages sum to %s, expected 100", item.Description, total.String()))
		}
	}
	return violations
}

// checkItemizedTotal verifies that the grand total of all participants'
// items matches the declared expense amount. Both totals are reported on
// mismatch so the caller can see which side is off.
func checkItemizedTotal(spec valueobject.SplitSpec, amount decimal.Decimal) []string {
	grandTotal := spec.GrandTotal()
	if grandTotal.Sub(amount).Abs().GreaterThan(valueobject.PercentageTolerance) {
		return []string{fmt.Sprintf("itemized totals sum to %s but the expense amount is %s", grandTotal.String(), amount.String())}
	}
	return nil
}

// checkTargets verifies every split target: members must belong to the
// group, external participants must carry a name, and the union must have
// exactly one side set.
func checkTargets(spec valueobject.SplitSpec, groupMemberIDs map[uuid.UUID]bool) []string {
	var violations []string
	for _, target := range spec.Targets() {
		if !target.IsWellFormed() {
			violations = append(violations, "split row must name either a group member or an external participant, not both or neither")
			continue
		}
		if target.IsMember() && !groupMemberIDs[*target.MemberID] {
			violations = append(violations, fmt.Sprintf("participant %s not in group", target.MemberID.String()))
		}
	}
	return violations
}
