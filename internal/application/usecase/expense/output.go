package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// ExpenseOutput is the use-case view of an expense with its split rows.
type ExpenseOutput struct {
	ID            uuid.UUID
	GroupID       uuid.UUID
	TripID        uuid.UUID
	DayID         *uuid.UUID
	EventID       *uuid.UUID
	PaidBy        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Category      string
	SplitType     string
	Participants  []*ParticipantOutput
	LineItems     []*LineItemOutput
	ItemizedLists []*ItemizedListOutput
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ParticipantOutput is one flat or line-item split row.
type ParticipantOutput struct {
	ID                    uuid.UUID
	ParticipantID         *uuid.UUID
	ExternalParticipantID *uuid.UUID
	ExternalName          string
	SplitPercentage       decimal.Decimal
	AmountOwed            decimal.Decimal
}

// LineItemOutput is one manual-split line item with its own split rows.
type LineItemOutput struct {
	ID           uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Quantity     int
	Category     string
	Total        decimal.Decimal
	Participants []*ParticipantOutput
}

// ItemizedListOutput is one participant's item list in an itemized split.
type ItemizedListOutput struct {
	ID                    uuid.UUID
	ParticipantID         *uuid.UUID
	ExternalParticipantID *uuid.UUID
	ExternalName          string
	TotalAmount           decimal.Decimal
	SplitPercentage       decimal.Decimal
	Items                 []*ItemOutput
}

// ItemOutput is a single item on an itemized list.
type ItemOutput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Quantity    int
	Category    string
}

func buildExpenseOutput(expense *entity.ExpenseWithSplits) *ExpenseOutput {
	out := &ExpenseOutput{
		ID:          expense.Expense.ID,
		GroupID:     expense.Expense.GroupID,
		TripID:      expense.Expense.TripID,
		DayID:       expense.Expense.DayID,
		EventID:     expense.Expense.EventID,
		PaidBy:      expense.Expense.PaidBy,
		Description: expense.Expense.Description,
		Amount:      expense.Expense.Amount,
		Category:    expense.Expense.Category,
		SplitType:   string(expense.Expense.SplitType),
		CreatedAt:   expense.Expense.CreatedAt,
		UpdatedAt:   expense.Expense.UpdatedAt,
	}

	for _, p := range expense.Participants {
		out.Participants = append(out.Participants, participantOutput(p))
	}
	for _, li := range expense.LineItems {
		item := &LineItemOutput{
			ID:          li.ID,
			Description: li.Description,
			Amount:      li.Amount,
			Quantity:    li.Quantity,
			Category:    li.Category,
			Total:       li.Total(),
		}
		for _, p := range li.Participants {
			item.Participants = append(item.Participants, participantOutput(p))
		}
		out.LineItems = append(out.LineItems, item)
	}
	for _, list := range expense.ItemizedLists {
		listOut := &ItemizedListOutput{
			ID:                    list.ID,
			ParticipantID:         list.ParticipantID,
			ExternalParticipantID: list.ExternalParticipantID,
			ExternalName:          list.ExternalName,
			TotalAmount:           list.TotalAmount,
			SplitPercentage:       list.SplitPercentage,
		}
		for _, item := range list.Items {
			listOut.Items = append(listOut.Items, &ItemOutput{
				ID:          item.ID,
				Description: item.Description,
				Amount:      item.Amount,
				Quantity:    item.Quantity,
				Category:    item.Category,
			})
		}
		out.ItemizedLists = append(out.ItemizedLists, listOut)
	}

	return out
}

func participantOutput(p *entity.ExpenseParticipant) *ParticipantOutput {
	return &ParticipantOutput{
		ID:                    p.ID,
		ParticipantID:         p.ParticipantID,
		ExternalParticipantID: p.ExternalParticipantID,
		ExternalName:          p.ExternalName,
		SplitPercentage:       p.SplitPercentage,
		AmountOwed:            p.AmountOwed,
	}
}
