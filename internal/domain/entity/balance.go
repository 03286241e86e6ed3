// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceParty identifies the other side of a debt: a group member (by
// user id) or an external participant (by record id), with a display name.
type BalanceParty struct {
	MemberID              *uuid.UUID
	ExternalParticipantID *uuid.UUID
	Name                  string
}

// Key returns a stable identity string for grouping.
func (p BalanceParty) Key() string {
	if p.MemberID != nil {
		return "member:" + p.MemberID.String()
	}
	if p.ExternalParticipantID != nil {
		return "external:" + p.ExternalParticipantID.String()
	}
	return "external-name:" + p.Name
}

// TripContribution is a single trip's share of a counterparty debt.
type TripContribution struct {
	TripID   uuid.UUID
	TripName string
	Amount   decimal.Decimal
}

// CounterpartyBalance is the gross amount owed in one direction between
// the member and one other party, itemized by contributing trip.
type CounterpartyBalance struct {
	Party  BalanceParty
	Amount decimal.Decimal
	Trips  []TripContribution
}

// TripBalance is the member's position within the scope of a single trip.
type TripBalance struct {
	TripID         uuid.UUID
	TripName       string
	TotalYouOwe    decimal.Decimal
	TotalOwedToYou decimal.Decimal
	NetBalance     decimal.Decimal
}

// MemberBalanceSummary is a member's aggregate position over a set of
// expenses: what they owe, what they are owed, and the breakdowns by
// counterparty and by trip. SkippedExpenses counts records that could not
// be aggregated and were skipped with a warning.
type MemberBalanceSummary struct {
	MemberID        uuid.UUID
	TotalYouOwe     decimal.Decimal
	TotalOwedToYou  decimal.Decimal
	NetBalance      decimal.Decimal
	YouOwe          []CounterpartyBalance
	OwedToYou       []CounterpartyBalance
	Trips           []TripBalance
	SkippedExpenses int
}
