package expense

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// CalculateSplits turns a validated split specification into persistable
// split rows. It never mutates the input spec; amounts are derived from
// the declared percentages (or, for itemized splits, percentages are
// derived from the item totals).
//
// resolved maps external-participant display names to their resolved
// records. A name missing from the map produces a row that carries only
// the free-text name, which the balance aggregator matches by name.
func CalculateSplits(expense *entity.Expense, spec valueobject.SplitSpec, resolved map[string]*entity.ExternalParticipant) *entity.ExpenseWithSplits {
	result := &entity.ExpenseWithSplits{Expense: expense}

	switch {
	case len(spec.Shares) > 0:
		result.Participants = flatRows(expense.ID, expense.Amount, nil, spec.Shares, resolved)
	case len(spec.LineItems) > 0:
		for _, itemSpec := range spec.LineItems {
			lineItem := &entity.ExpenseLineItem{
				ID:          uuid.New(),
				ExpenseID:   expense.ID,
				Description: itemSpec.Description,
				Amount:      itemSpec.Amount,
				Quantity:    itemSpec.Quantity,
				Category:    itemSpec.Category,
			}
			lineItem.Participants = flatRows(expense.ID, lineItem.Total(), &lineItem.ID, itemSpec.Shares, resolved)
			result.LineItems = append(result.LineItems, lineItem)
		}
	case len(spec.ItemizedLists) > 0:
		result.ItemizedLists = itemizedRows(expense.ID, spec, resolved)
	}

	return result
}

// flatRows computes amountOwed = base * percentage / 100 for each share.
// The base is the expense amount for top-level shares and the line item
// total (amount times quantity) for shares under a line item.
func flatRows(expenseID uuid.UUID, base decimal.Decimal, lineItemID *uuid.UUID, shares []valueobject.FlatShare, resolved map[string]*entity.ExternalParticipant) []*entity.ExpenseParticipant {
	rows := make([]*entity.ExpenseParticipant, 0, len(shares))
	for _, share := range shares {
		row := &entity.ExpenseParticipant{
			ID:              uuid.New(),
			ExpenseID:       expenseID,
			LineItemID:      lineItemID,
			SplitPercentage: share.Percentage,
			AmountOwed:      base.Mul(share.Percentage).Div(oneHundred),
		}
		bindTarget(row, share.Target, resolved)
		rows = append(rows, row)
	}
	return rows
}

// itemizedRows builds one list per participant. The stored percentage is
// derived from the participant's share of the grand total; if the grand
// total is zero every percentage is zero.
func itemizedRows(expenseID uuid.UUID, spec valueobject.SplitSpec, resolved map[string]*entity.ExternalParticipant) []*entity.ParticipantItemizedList {
	grandTotal := spec.GrandTotal()
	lists := make([]*entity.ParticipantItemizedList, 0, len(spec.ItemizedLists))

	for _, listSpec := range spec.ItemizedLists {
		total := listSpec.Total()
		percentage := decimal.Zero
		if grandTotal.IsPositive() {
			percentage = total.Mul(oneHundred).Div(grandTotal)
		}

		list := &entity.ParticipantItemizedList{
			ID:              uuid.New(),
			ExpenseID:       expenseID,
			TotalAmount:     total,
			SplitPercentage: percentage,
		}
		bindListTarget(list, listSpec.Target, resolved)

		for _, itemSpec := range listSpec.Items {
			list.Items = append(list.Items, &entity.ExpenseItem{
				ID:             uuid.New(),
				ItemizedListID: list.ID,
				Description:    itemSpec.Description,
				Amount:         itemSpec.Amount,
				Quantity:       itemSpec.Quantity,
				Category:       itemSpec.Category,
			})
		}
		lists = append(lists, list)
	}
	return lists
}

func bindTarget(row *entity.ExpenseParticipant, target valueobject.SplitTarget, resolved map[string]*entity.ExternalParticipant) {
	if target.IsMember() {
		row.ParticipantID = target.MemberID
		return
	}
	row.ExternalName = target.ExternalName
	if external, ok := resolved[target.ExternalName]; ok {
		row.ExternalParticipantID = &external.ID
	}
}

func bindListTarget(list *entity.ParticipantItemizedList, target valueobject.SplitTarget, resolved map[string]*entity.ExternalParticipant) {
	if target.IsMember() {
		list.ParticipantID = target.MemberID
		return
	}
	list.ExternalName = target.ExternalName
	if external, ok := resolved[target.ExternalName]; ok {
		list.ExternalParticipantID = &external.ID
	}
}
