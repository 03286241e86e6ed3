package dto

import (
	"github.com/trip-planner/backend/internal/domain/entity"
)

// BalancePartyResponse identifies the other side of a debt.
type BalancePartyResponse struct {
	UserID                *string `json:"user_id,omitempty"`
	ExternalParticipantID *string `json:"external_participant_id,omitempty"`
	Name                  string  `json:"name"`
}

// TripContributionResponse is one trip's share of a counterparty debt.
type TripContributionResponse struct {
	TripID   string `json:"trip_id"`
	TripName string `json:"trip_name"`
	Amount   string `json:"amount"`
}

// CounterpartyBalanceResponse is the gross amount owed in one direction
// between the caller and one other party, itemized by contributing trip.
type CounterpartyBalanceResponse struct {
	Party  BalancePartyResponse       `json:"party"`
	Amount string                     `json:"amount"`
	Trips  []TripContributionResponse `json:"trips,omitempty"`
}

// TripBalanceResponse is the caller's position within one trip.
type TripBalanceResponse struct {
	TripID         string `json:"trip_id"`
	TripName       string `json:"trip_name"`
	TotalYouOwe    string `json:"total_you_owe"`
	TotalOwedToYou string `json:"total_owed_to_you"`
	NetBalance     string `json:"net_balance"`
}

// BalanceSummaryResponse represents the caller's aggregate balance position.
type BalanceSummaryResponse struct {
	TotalYouOwe     string                        `json:"total_you_owe"`
	TotalOwedToYou  string                        `json:"total_owed_to_you"`
	NetBalance      string                        `json:"net_balance"`
	YouOwe          []CounterpartyBalanceResponse `json:"you_owe"`
	OwedToYou       []CounterpartyBalanceResponse `json:"owed_to_you"`
	Trips           []TripBalanceResponse         `json:"trips,omitempty"`
	SkippedExpenses int                           `json:"skipped_expenses,omitempty"`
}

// ToBalanceSummaryResponse converts a domain balance summary to a
// BalanceSummaryResponse DTO.
func ToBalanceSummaryResponse(summary *entity.MemberBalanceSummary) BalanceSummaryResponse {
	response := BalanceSummaryResponse{
		TotalYouOwe:     summary.TotalYouOwe.StringFixed(2),
		TotalOwedToYou:  summary.TotalOwedToYou.StringFixed(2),
		NetBalance:      summary.NetBalance.StringFixed(2),
		YouOwe:          make([]CounterpartyBalanceResponse, len(summary.YouOwe)),
		OwedToYou:       make([]CounterpartyBalanceResponse, len(summary.OwedToYou)),
		SkippedExpenses: summary.SkippedExpenses,
	}

	for i, balance := range summary.YouOwe {
		response.YouOwe[i] = toCounterpartyBalanceResponse(balance)
	}
	for i, balance := range summary.OwedToYou {
		response.OwedToYou[i] = toCounterpartyBalanceResponse(balance)
	}
	for _, trip := range summary.Trips {
		response.Trips = append(response.Trips, TripBalanceResponse{
			TripID:         trip.TripID.String(),
			TripName:       trip.TripName,
			TotalYouOwe:    trip.TotalYouOwe.StringFixed(2),
			TotalOwedToYou: trip.TotalOwedToYou.StringFixed(2),
			NetBalance:     trip.NetBalance.StringFixed(2),
		})
	}

	return response
}

func toCounterpartyBalanceResponse(balance entity.CounterpartyBalance) CounterpartyBalanceResponse {
	response := CounterpartyBalanceResponse{
		Party: BalancePartyResponse{
			UserID:                uuidPtrToString(balance.Party.MemberID),
			ExternalParticipantID: uuidPtrToString(balance.Party.ExternalParticipantID),
			Name:                  balance.Party.Name,
		},
		Amount: balance.Amount.StringFixed(2),
	}
	for _, trip := range balance.Trips {
		response.Trips = append(response.Trips, TripContributionResponse{
			TripID:   trip.TripID.String(),
			TripName: trip.TripName,
			Amount:   trip.Amount.StringFixed(2),
		})
	}
	return response
}
