package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/application/usecase/expense"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// SplitShareRequest is one participant's percentage share. Exactly one of
// UserID or ExternalName identifies the participant.
type SplitShareRequest struct {
	UserID       *string `json:"user_id,omitempty"`
	ExternalName string  `json:"external_name,omitempty"`
	Percentage   float64 `json:"percentage"`
}

// LineItemRequest is one sub-item of a manual split with its own shares.
type LineItemRequest struct {
	Description string              `json:"description" binding:"required,min=1,max=255"`
	Amount      float64             `json:"amount" binding:"required"`
	Quantity    int                 `json:"quantity" binding:"omitempty,min=1"`
	Category    string              `json:"category" binding:"omitempty,max=50"`
	Shares      []SplitShareRequest `json:"shares" binding:"required,min=1"`
}

// ItemRequest is a single item on a participant's itemized list.
type ItemRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Quantity    int     `json:"quantity" binding:"omitempty,min=1"`
	Category    string  `json:"category" binding:"omitempty,max=50"`
}

// ItemizedListRequest is one participant's item list in an itemized split.
type ItemizedListRequest struct {
	UserID       *string       `json:"user_id,omitempty"`
	ExternalName string        `json:"external_name,omitempty"`
	Items        []ItemRequest `json:"items" binding:"required,min=1"`
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	DayID         *string               `json:"day_id,omitempty"`
	EventID       *string               `json:"event_id,omitempty"`
	PaidBy        string                `json:"paid_by" binding:"required"`
	Description   string                `json:"description" binding:"required,min=1,max=255"`
	Amount        float64               `json:"amount"`
	Category      string                `json:"category" binding:"omitempty,max=50"`
	SplitType     string                `json:"split_type" binding:"required,oneof=equal manual itemized"`
	Shares        []SplitShareRequest   `json:"shares,omitempty"`
	LineItems     []LineItemRequest     `json:"line_items,omitempty"`
	ItemizedLists []ItemizedListRequest `json:"itemized_lists,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense updates.
// The split is always provided in full and replaces the stored one.
type UpdateExpenseRequest struct {
	DayID         *string               `json:"day_id,omitempty"`
	EventID       *string               `json:"event_id,omitempty"`
	PaidBy        string                `json:"paid_by" binding:"required"`
	Description   string                `json:"description" binding:"required,min=1,max=255"`
	Amount        float64               `json:"amount"`
	Category      string                `json:"category" binding:"omitempty,max=50"`
	SplitType     string                `json:"split_type" binding:"required,oneof=equal manual itemized"`
	Shares        []SplitShareRequest   `json:"shares,omitempty"`
	LineItems     []LineItemRequest     `json:"line_items,omitempty"`
	ItemizedLists []ItemizedListRequest `json:"itemized_lists,omitempty"`
}

// SuggestCategoryRequest represents the request body for an AI category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
}

// SuggestCategoryResponse represents the response for an AI category suggestion.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
	Available  bool    `json:"available"`
}

// ParticipantShareResponse is one split row in API responses.
type ParticipantShareResponse struct {
	ID                    string  `json:"id"`
	UserID                *string `json:"user_id,omitempty"`
	ExternalParticipantID *string `json:"external_participant_id,omitempty"`
	ExternalName          string  `json:"external_name,omitempty"`
	SplitPercentage       string  `json:"split_percentage"`
	AmountOwed            string  `json:"amount_owed"`
}

// LineItemResponse is one manual-split line item in API responses.
type LineItemResponse struct {
	ID           string                     `json:"id"`
	Description  string                     `json:"description"`
	Amount       string                     `json:"amount"`
	Quantity     int                        `json:"quantity"`
	Category     string                     `json:"category,omitempty"`
	Total        string                     `json:"total"`
	Participants []ParticipantShareResponse `json:"participants"`
}

// ItemizedListResponse is one participant's item list in API responses.
// The split percentage is derived from the item totals and is read-only.
type ItemizedListResponse struct {
	ID                    string         `json:"id"`
	UserID                *string        `json:"user_id,omitempty"`
	ExternalParticipantID *string        `json:"external_participant_id,omitempty"`
	ExternalName          string         `json:"external_name,omitempty"`
	TotalAmount           string         `json:"total_amount"`
	SplitPercentage       string         `json:"split_percentage"`
	Items                 []ItemResponse `json:"items"`
}

// ItemResponse is a single item on an itemized list in API responses.
type ItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Quantity    int    `json:"quantity"`
	Category    string `json:"category,omitempty"`
}

// ExpenseResponse represents an expense with its split in API responses.
type ExpenseResponse struct {
	ID            string                     `json:"id"`
	GroupID       string                     `json:"group_id"`
	TripID        string                     `json:"trip_id"`
	DayID         *string                    `json:"day_id,omitempty"`
	EventID       *string                    `json:"event_id,omitempty"`
	PaidBy        string                     `json:"paid_by"`
	Description   string                     `json:"description"`
	Amount        string                     `json:"amount"`
	Category      string                     `json:"category,omitempty"`
	SplitType     string                     `json:"split_type"`
	Participants  []ParticipantShareResponse `json:"participants,omitempty"`
	LineItems     []LineItemResponse         `json:"line_items,omitempty"`
	ItemizedLists []ItemizedListResponse     `json:"itemized_lists,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing a trip's expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToSplitSpec converts the split portion of an expense request into the
// domain split specification.
func ToSplitSpec(splitType string, shares []SplitShareRequest, lineItems []LineItemRequest, itemizedLists []ItemizedListRequest) (valueobject.SplitSpec, error) {
	spec := valueobject.SplitSpec{Type: valueobject.SplitType(splitType)}

	for _, share := range shares {
		target, err := toSplitTarget(share.UserID, share.ExternalName)
		if err != nil {
			return valueobject.SplitSpec{}, err
		}
		spec.Shares = append(spec.Shares, valueobject.FlatShare{
			Target:     target,
			Percentage: decimal.NewFromFloat(share.Percentage),
		})
	}

	for _, item := range lineItems {
		itemSpec := valueobject.LineItemSpec{
			Description: item.Description,
			Amount:      decimal.NewFromFloat(item.Amount),
			Quantity:    item.Quantity,
			Category:    item.Category,
		}
		for _, share := range item.Shares {
			target, err := toSplitTarget(share.UserID, share.ExternalName)
			if err != nil {
				return valueobject.SplitSpec{}, err
			}
			itemSpec.Shares = append(itemSpec.Shares, valueobject.FlatShare{
				Target:     target,
				Percentage: decimal.NewFromFloat(share.Percentage),
			})
		}
		spec.LineItems = append(spec.LineItems, itemSpec)
	}

	for _, list := range itemizedLists {
		target, err := toSplitTarget(list.UserID, list.ExternalName)
		if err != nil {
			return valueobject.SplitSpec{}, err
		}
		listSpec := valueobject.ItemizedListSpec{Target: target}
		for _, item := range list.Items {
			listSpec.Items = append(listSpec.Items, valueobject.ItemSpec{
				Description: item.Description,
				Amount:      decimal.NewFromFloat(item.Amount),
				Quantity:    item.Quantity,
				Category:    item.Category,
			})
		}
		spec.ItemizedLists = append(spec.ItemizedLists, listSpec)
	}

	return spec, nil
}

func toSplitTarget(userID *string, externalName string) (valueobject.SplitTarget, error) {
	if userID != nil && *userID != "" {
		id, err := uuid.Parse(*userID)
		if err != nil {
			return valueobject.SplitTarget{}, fmt.Errorf("invalid user id %q", *userID)
		}
		return valueobject.MemberTarget(id), nil
	}
	return valueobject.ExternalTarget(externalName), nil
}

// ToExpenseResponse converts an expense use-case output to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	response := ExpenseResponse{
		ID:          e.ID.String(),
		GroupID:     e.GroupID.String(),
		TripID:      e.TripID.String(),
		DayID:       uuidPtrToString(e.DayID),
		EventID:     uuidPtrToString(e.EventID),
		PaidBy:      e.PaidBy.String(),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		Category:    e.Category,
		SplitType:   e.SplitType,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	for _, p := range e.Participants {
		response.Participants = append(response.Participants, toParticipantShareResponse(p))
	}
	for _, li := range e.LineItems {
		item := LineItemResponse{
			ID:          li.ID.String(),
			Description: li.Description,
			Amount:      li.Amount.StringFixed(2),
			Quantity:    li.Quantity,
			Category:    li.Category,
			Total:       li.Total.StringFixed(2),
		}
		for _, p := range li.Participants {
			item.Participants = append(item.Participants, toParticipantShareResponse(p))
		}
		response.LineItems = append(response.LineItems, item)
	}
	for _, list := range e.ItemizedLists {
		listResponse := ItemizedListResponse{
			ID:                    list.ID.String(),
			UserID:                uuidPtrToString(list.ParticipantID),
			ExternalParticipantID: uuidPtrToString(list.ExternalParticipantID),
			ExternalName:          list.ExternalName,
			TotalAmount:           list.TotalAmount.StringFixed(2),
			SplitPercentage:       list.SplitPercentage.String(),
		}
		for _, item := range list.Items {
			listResponse.Items = append(listResponse.Items, ItemResponse{
				ID:          item.ID.String(),
				Description: item.Description,
				Amount:      item.Amount.StringFixed(2),
				Quantity:    item.Quantity,
				Category:    item.Category,
			})
		}
		response.ItemizedLists = append(response.ItemizedLists, listResponse)
	}

	return response
}

// ToExpenseListResponse converts expense outputs to an ExpenseListResponse DTO.
func ToExpenseListResponse(expenses []*expense.ExpenseOutput) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: items}
}

func toParticipantShareResponse(p *expense.ParticipantOutput) ParticipantShareResponse {
	return ParticipantShareResponse{
		ID:                    p.ID.String(),
		UserID:                uuidPtrToString(p.ParticipantID),
		ExternalParticipantID: uuidPtrToString(p.ExternalParticipantID),
		ExternalName:          p.ExternalName,
		SplitPercentage:       p.SplitPercentage.String(),
		AmountOwed:            p.AmountOwed.StringFixed(2),
	}
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
