// Package balance contains balance aggregation use cases. The aggregator
// folds expense splits into who-owes-whom summaries.
package balance

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// AggregateInput carries everything the pure fold needs: the viewing
// member, the expenses in scope, and name lookups for display.
type AggregateInput struct {
	MemberID    uuid.UUID
	Expenses    []*entity.ExpenseWithSplits
	TripNames   map[uuid.UUID]string
	MemberNames map[uuid.UUID]string
}

// splitRow is one normalized debt row: debtor owes the expense payer.
type splitRow struct {
	debtorMember   *uuid.UUID
	debtorExternal *uuid.UUID
	debtorName     string
	amount         decimal.Decimal
}

// partyAccount accumulates the gross positions against one counterparty,
// each direction kept separately.
type partyAccount struct {
	party      entity.BalanceParty
	owe        decimal.Decimal
	owed       decimal.Decimal
	oweByTrip  map[uuid.UUID]decimal.Decimal
	owedByTrip map[uuid.UUID]decimal.Decimal
	ordinal    int
}

// Aggregate folds the expenses into the member's balance summary. It is a
// pure function over its input except for warnings: an expense whose split
// rows are malformed is skipped and counted rather than poisoning the
// whole summary.
//
// Totals are gross: totalYouOwe sums the member's own rows on expenses
// someone else paid, totalOwedToYou sums the other rows on expenses the
// member paid, and only netBalance offsets the two. A counterparty with
// debts in both directions appears in both lists. The per-trip entries
// carry the same gross totals restricted to one trip.
func Aggregate(input AggregateInput) *entity.MemberBalanceSummary {
	summary := &entity.MemberBalanceSummary{
		MemberID:       input.MemberID,
		TotalYouOwe:    decimal.Zero,
		TotalOwedToYou: decimal.Zero,
		NetBalance:     decimal.Zero,
	}

	accounts := make(map[string]*partyAccount)
	tripGross := make(map[uuid.UUID]*entity.TripBalance)
	var tripOrder []uuid.UUID

	for _, expense := range input.Expenses {
		rows, ok := normalizeRows(expense)
		if !ok {
			summary.SkippedExpenses++
			slog.Warn("Skipping malformed expense during balance aggregation",
				"expenseID", expense.Expense.ID,
				"splitType", expense.Expense.SplitType,
			)
			continue
		}

		payer := expense.Expense.PaidBy
		tripID := expense.Expense.TripID

		for _, row := range rows {
			// The payer's own share is neither owed nor owing.
			if row.debtorMember != nil && *row.debtorMember == payer {
				continue
			}

			switch {
			case row.debtorMember != nil && *row.debtorMember == input.MemberID:
				// The member owes the payer.
				account := getAccount(accounts, entity.BalanceParty{
					MemberID: &payer,
					Name:     input.MemberNames[payer],
				})
				account.owe = account.owe.Add(row.amount)
				account.oweByTrip[tripID] = account.oweByTrip[tripID].Add(row.amount)
				trip := trackTrip(tripGross, &tripOrder, tripID, input.TripNames[tripID])
				trip.TotalYouOwe = trip.TotalYouOwe.Add(row.amount)

			case payer == input.MemberID:
				// The debtor owes the member.
				account := getAccount(accounts, debtorParty(row, input.MemberNames))
				account.owed = account.owed.Add(row.amount)
				account.owedByTrip[tripID] = account.owedByTrip[tripID].Add(row.amount)
				trip := trackTrip(tripGross, &tripOrder, tripID, input.TripNames[tripID])
				trip.TotalOwedToYou = trip.TotalOwedToYou.Add(row.amount)
			}
		}
	}

	buildSummary(summary, accounts, tripGross, tripOrder)
	return summary
}

// normalizeRows flattens an expense's split rows into debtor/amount pairs,
// whatever the split mode. It reports false when any row lacks a usable
// debtor identity or the expense has no rows at all.
func normalizeRows(expense *entity.ExpenseWithSplits) ([]splitRow, bool) {
	var rows []splitRow

	appendParticipant := func(p *entity.ExpenseParticipant) bool {
		if p.ParticipantID == nil && p.ExternalParticipantID == nil && p.ExternalName == "" {
			return false
		}
		rows = append(rows, splitRow{
			debtorMember:   p.ParticipantID,
			debtorExternal: p.ExternalParticipantID,
			debtorName:     p.ExternalName,
			amount:         p.AmountOwed,
		})
		return true
	}

	for _, p := range expense.Participants {
		if !appendParticipant(p) {
			return nil, false
		}
	}
	for _, li := range expense.LineItems {
		for _, p := range li.Participants {
			if !appendParticipant(p) {
				return nil, false
			}
		}
	}
	for _, list := range expense.ItemizedLists {
		if list.ParticipantID == nil && list.ExternalParticipantID == nil && list.ExternalName == "" {
			return nil, false
		}
		rows = append(rows, splitRow{
			debtorMember:   list.ParticipantID,
			debtorExternal: list.ExternalParticipantID,
			debtorName:     list.ExternalName,
			amount:         list.TotalAmount,
		})
	}

	if len(rows) == 0 {
		return nil, false
	}
	return rows, true
}

func debtorParty(row splitRow, memberNames map[uuid.UUID]string) entity.BalanceParty {
	if row.debtorMember != nil {
		return entity.BalanceParty{
			MemberID: row.debtorMember,
			Name:     memberNames[*row.debtorMember],
		}
	}
	return entity.BalanceParty{
		ExternalParticipantID: row.debtorExternal,
		Name:                  row.debtorName,
	}
}

func getAccount(accounts map[string]*partyAccount, party entity.BalanceParty) *partyAccount {
	key := party.Key()
	account, ok := accounts[key]
	if !ok {
		account = &partyAccount{
			party:      party,
			owe:        decimal.Zero,
			owed:       decimal.Zero,
			oweByTrip:  make(map[uuid.UUID]decimal.Decimal),
			owedByTrip: make(map[uuid.UUID]decimal.Decimal),
			ordinal:    len(accounts),
		}
		accounts[key] = account
	}
	return account
}

func trackTrip(trips map[uuid.UUID]*entity.TripBalance, order *[]uuid.UUID, tripID uuid.UUID, name string) *entity.TripBalance {
	trip, ok := trips[tripID]
	if !ok {
		trip = &entity.TripBalance{
			TripID:         tripID,
			TripName:       name,
			TotalYouOwe:    decimal.Zero,
			TotalOwedToYou: decimal.Zero,
		}
		trips[tripID] = trip
		*order = append(*order, tripID)
	}
	return trip
}

// buildSummary splits each counterparty account into the owe and owed
// lists, keeping both directions gross, and sums the gross totals.
func buildSummary(summary *entity.MemberBalanceSummary, accounts map[string]*partyAccount, tripGross map[uuid.UUID]*entity.TripBalance, tripOrder []uuid.UUID) {
	ordered := make([]*partyAccount, 0, len(accounts))
	for _, account := range accounts {
		ordered = append(ordered, account)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ordinal < ordered[j].ordinal
	})

	for _, account := range ordered {
		if account.owe.IsPositive() {
			summary.TotalYouOwe = summary.TotalYouOwe.Add(account.owe)
			summary.YouOwe = append(summary.YouOwe, entity.CounterpartyBalance{
				Party:  account.party,
				Amount: account.owe,
				Trips:  tripContributions(account.oweByTrip, tripGross, tripOrder),
			})
		}
		if account.owed.IsPositive() {
			summary.TotalOwedToYou = summary.TotalOwedToYou.Add(account.owed)
			summary.OwedToYou = append(summary.OwedToYou, entity.CounterpartyBalance{
				Party:  account.party,
				Amount: account.owed,
				Trips:  tripContributions(account.owedByTrip, tripGross, tripOrder),
			})
		}
	}

	summary.NetBalance = summary.TotalOwedToYou.Sub(summary.TotalYouOwe)

	for _, tripID := range tripOrder {
		trip := tripGross[tripID]
		trip.NetBalance = trip.TotalOwedToYou.Sub(trip.TotalYouOwe)
		summary.Trips = append(summary.Trips, *trip)
	}
}

func tripContributions(byTrip map[uuid.UUID]decimal.Decimal, tripGross map[uuid.UUID]*entity.TripBalance, tripOrder []uuid.UUID) []entity.TripContribution {
	var contributions []entity.TripContribution
	for _, tripID := range tripOrder {
		contribution := byTrip[tripID]
		if contribution.IsZero() {
			continue
		}
		contributions = append(contributions, entity.TripContribution{
			TripID:   tripID,
			TripName: tripGross[tripID].TripName,
			Amount:   contribution,
		})
	}
	return contributions
}
