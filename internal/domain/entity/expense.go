// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// Expense represents a shared expense within a trip. The payer is the
// group member who fronted the money; how the cost is divided is recorded
// in exactly one of the three split-row families, selected by SplitType.
type Expense struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	TripID      uuid.UUID
	DayID       *uuid.UUID
	EventID     *uuid.UUID
	PaidBy      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	SplitType   valueobject.SplitType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	groupID, tripID uuid.UUID,
	dayID, eventID *uuid.UUID,
	paidBy uuid.UUID,
	description string,
	amount decimal.Decimal,
	category string,
	splitType valueobject.SplitType,
) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:          uuid.New(),
		GroupID:     groupID,
		TripID:      tripID,
		DayID:       dayID,
		EventID:     eventID,
		PaidBy:      paidBy,
		Description: description,
		Amount:      amount,
		Category:    category,
		SplitType:   splitType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseParticipant is one persisted split row for equal/manual splits.
// Either ParticipantID (a group member's user id) or ExternalParticipantID
// plus ExternalName is set, never both. LineItemID is set when the row
// belongs to a line item rather than the whole expense.
type ExpenseParticipant struct {
	ID                    uuid.UUID
	ExpenseID             uuid.UUID
	LineItemID            *uuid.UUID
	ParticipantID         *uuid.UUID
	ExternalParticipantID *uuid.UUID
	ExternalName          string
	SplitPercentage       decimal.Decimal
	AmountOwed            decimal.Decimal
	CreatedAt             time.Time
}

// IsExternal reports whether the row belongs to an external participant.
func (p *ExpenseParticipant) IsExternal() bool {
	return p.ParticipantID == nil
}

// ExpenseLineItem is a sub-item of a manual split with its own participant
// rows whose percentages sum to 100 independently of the other items.
type ExpenseLineItem struct {
	ID           uuid.UUID
	ExpenseID    uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Quantity     int
	Category     string
	Participants []*ExpenseParticipant
	CreatedAt    time.Time
}

// Total returns the line item's amount multiplied by its quantity.
func (li *ExpenseLineItem) Total() decimal.Decimal {
	qty := li.Quantity
	if qty <= 0 {
		qty = 1
	}
	return li.Amount.Mul(decimal.NewFromInt(int64(qty)))
}

// ExpenseItem is a single item on a participant's itemized list.
type ExpenseItem struct {
	ID              uuid.UUID
	ItemizedListID  uuid.UUID
	Description     string
	Amount          decimal.Decimal
	Quantity        int
	Category        string
	CreatedAt       time.Time
}

// ParticipantItemizedList is one participant's item list in an itemized
// split. TotalAmount is the sum of the participant's item totals and
// SplitPercentage is derived from it; the amounts are authoritative in
// this mode, unlike flat and line-item splits.
type ParticipantItemizedList struct {
	ID                    uuid.UUID
	ExpenseID             uuid.UUID
	ParticipantID         *uuid.UUID
	ExternalParticipantID *uuid.UUID
	ExternalName          string
	TotalAmount           decimal.Decimal
	SplitPercentage       decimal.Decimal
	Items                 []*ExpenseItem
	CreatedAt             time.Time
}

// IsExternal reports whether the list belongs to an external participant.
func (l *ParticipantItemizedList) IsExternal() bool {
	return l.ParticipantID == nil
}

// ExpenseWithSplits is an expense together with all of its split rows.
// Exactly one of Participants, LineItems, or ItemizedLists is populated,
// matching the expense's SplitType.
type ExpenseWithSplits struct {
	Expense       *Expense
	Participants  []*ExpenseParticipant
	LineItems     []*ExpenseLineItem
	ItemizedLists []*ParticipantItemizedList
}
