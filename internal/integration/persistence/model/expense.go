// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GroupID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TripID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DayID       *uuid.UUID      `gorm:"type:uuid;index"`
	EventID     *uuid.UUID      `gorm:"type:uuid;index"`
	PaidBy      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(50)"`
	SplitType   string          `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		GroupID:     m.GroupID,
		TripID:      m.TripID,
		DayID:       m.DayID,
		EventID:     m.EventID,
		PaidBy:      m.PaidBy,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		SplitType:   valueobject.SplitType(m.SplitType),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		GroupID:     expense.GroupID,
		TripID:      expense.TripID,
		DayID:       expense.DayID,
		EventID:     expense.EventID,
		PaidBy:      expense.PaidBy,
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    expense.Category,
		SplitType:   string(expense.SplitType),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ExpenseParticipantModel represents the expense_participants table. Rows
// belong either to the expense directly (flat splits) or to a line item.
type ExpenseParticipantModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineItemID            *uuid.UUID      `gorm:"type:uuid;index"`
	ParticipantID         *uuid.UUID      `gorm:"type:uuid;index"`
	ExternalParticipantID *uuid.UUID      `gorm:"type:uuid;index"`
	ExternalName          string          `gorm:"type:varchar(255)"`
	SplitPercentage       decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	AmountOwed            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt             time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseParticipantModel.
func (ExpenseParticipantModel) TableName() string {
	return "expense_participants"
}

// ToEntity converts an ExpenseParticipantModel to a domain ExpenseParticipant entity.
func (m *ExpenseParticipantModel) ToEntity() *entity.ExpenseParticipant {
	return &entity.ExpenseParticipant{
		ID:                    m.ID,
		ExpenseID:             m.ExpenseID,
		LineItemID:            m.LineItemID,
		ParticipantID:         m.ParticipantID,
		ExternalParticipantID: m.ExternalParticipantID,
		ExternalName:          m.ExternalName,
		SplitPercentage:       m.SplitPercentage,
		AmountOwed:            m.AmountOwed,
		CreatedAt:             m.CreatedAt,
	}
}

// ExpenseParticipantFromEntity creates an ExpenseParticipantModel from a
// domain ExpenseParticipant entity.
func ExpenseParticipantFromEntity(participant *entity.ExpenseParticipant) *ExpenseParticipantModel {
	return &ExpenseParticipantModel{
		ID:                    participant.ID,
		ExpenseID:             participant.ExpenseID,
		LineItemID:            participant.LineItemID,
		ParticipantID:         participant.ParticipantID,
		ExternalParticipantID: participant.ExternalParticipantID,
		ExternalName:          participant.ExternalName,
		SplitPercentage:       participant.SplitPercentage,
		AmountOwed:            participant.AmountOwed,
		CreatedAt:             participant.CreatedAt,
	}
}

// ExpenseLineItemModel represents the expense_line_items table.
type ExpenseLineItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity    int             `gorm:"not null;default:1"`
	Category    string          `gorm:"type:varchar(50)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseLineItemModel.
func (ExpenseLineItemModel) TableName() string {
	return "expense_line_items"
}

// ToEntity converts an ExpenseLineItemModel to a domain ExpenseLineItem
// entity without its participant rows.
func (m *ExpenseLineItemModel) ToEntity() *entity.ExpenseLineItem {
	return &entity.ExpenseLineItem{
		ID:          m.ID,
		ExpenseID:   m.ExpenseID,
		Description: m.Description,
		Amount:      m.Amount,
		Quantity:    m.Quantity,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseLineItemFromEntity creates an ExpenseLineItemModel from a domain
// ExpenseLineItem entity.
func ExpenseLineItemFromEntity(item *entity.ExpenseLineItem) *ExpenseLineItemModel {
	return &ExpenseLineItemModel{
		ID:          item.ID,
		ExpenseID:   item.ExpenseID,
		Description: item.Description,
		Amount:      item.Amount,
		Quantity:    item.Quantity,
		Category:    item.Category,
		CreatedAt:   item.CreatedAt,
	}
}

// ItemizedListModel represents the expense_itemized_lists table.
type ItemizedListModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ParticipantID         *uuid.UUID      `gorm:"type:uuid;index"`
	ExternalParticipantID *uuid.UUID      `gorm:"type:uuid;index"`
	ExternalName          string          `gorm:"type:varchar(255)"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SplitPercentage       decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	CreatedAt             time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ItemizedListModel.
func (ItemizedListModel) TableName() string {
	return "expense_itemized_lists"
}

// ToEntity converts an ItemizedListModel to a domain ParticipantItemizedList
// entity without its items.
func (m *ItemizedListModel) ToEntity() *entity.ParticipantItemizedList {
	return &entity.ParticipantItemizedList{
		ID:                    m.ID,
		ExpenseID:             m.ExpenseID,
		ParticipantID:         m.ParticipantID,
		ExternalParticipantID: m.ExternalParticipantID,
		ExternalName:          m.ExternalName,
		TotalAmount:           m.TotalAmount,
		SplitPercentage:       m.SplitPercentage,
		CreatedAt:             m.CreatedAt,
	}
}

// ItemizedListFromEntity creates an ItemizedListModel from a domain
// ParticipantItemizedList entity.
func ItemizedListFromEntity(list *entity.ParticipantItemizedList) *ItemizedListModel {
	return &ItemizedListModel{
		ID:                    list.ID,
		ExpenseID:             list.ExpenseID,
		ParticipantID:         list.ParticipantID,
		ExternalParticipantID: list.ExternalParticipantID,
		ExternalName:          list.ExternalName,
		TotalAmount:           list.TotalAmount,
		SplitPercentage:       list.SplitPercentage,
		CreatedAt:             list.CreatedAt,
	}
}

// ExpenseItemModel represents the expense_items table.
type ExpenseItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemizedListID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity       int             `gorm:"not null;default:1"`
	Category       string          `gorm:"type:varchar(50)"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseItemModel.
func (ExpenseItemModel) TableName() string {
	return "expense_items"
}

// ToEntity converts an ExpenseItemModel to a domain ExpenseItem entity.
func (m *ExpenseItemModel) ToEntity() *entity.ExpenseItem {
	return &entity.ExpenseItem{
		ID:             m.ID,
		ItemizedListID: m.ItemizedListID,
		Description:    m.Description,
		Amount:         m.Amount,
		Quantity:       m.Quantity,
		Category:       m.Category,
		CreatedAt:      m.CreatedAt,
	}
}

// ExpenseItemFromEntity creates an ExpenseItemModel from a domain ExpenseItem entity.
func ExpenseItemFromEntity(item *entity.ExpenseItem) *ExpenseItemModel {
	return &ExpenseItemModel{
		ID:             item.ID,
		ItemizedListID: item.ItemizedListID,
		Description:    item.Description,
		Amount:         item.Amount,
		Quantity:       item.Quantity,
		Category:       item.Category,
		CreatedAt:      item.CreatedAt,
	}
}
