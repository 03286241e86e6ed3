// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts the expense and all of its split rows atomically.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.ExpenseWithSplits) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ExpenseFromEntity(expense.Expense)).Error; err != nil {
			return err
		}
		return insertSplitRows(tx, expense)
	})
}

// Replace updates the expense row and swaps the full split row set in one
// transaction. Splits are never patched in place.
func (r *expenseRepository) Replace(ctx context.Context, expense *entity.ExpenseWithSplits) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.ExpenseFromEntity(expense.Expense)).Error; err != nil {
			return err
		}
		if err := deleteSplitRows(tx, []uuid.UUID{expense.Expense.ID}); err != nil {
			return err
		}
		return insertSplitRows(tx, expense)
	})
}

// FindByID retrieves an expense with all of its split rows.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithSplits, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	expenses, err := r.loadSplits(ctx, []model.ExpenseModel{expenseModel})
	if err != nil {
		return nil, err
	}
	return expenses[0], nil
}

// FindByTripID retrieves all expenses of a trip with their split rows,
// newest first.
func (r *expenseRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.ExpenseWithSplits, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.loadSplits(ctx, expenseModels)
}

// FindByGroupID retrieves all expenses of a group with their split rows.
func (r *expenseRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.ExpenseWithSplits, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.loadSplits(ctx, expenseModels)
}

// Delete removes the expense and cascades to all of its split rows.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteSplitRows(tx, []uuid.UUID{id}); err != nil {
			return err
		}
		return tx.Delete(&model.ExpenseModel{}, "id = ?", id).Error
	})
}

// loadSplits fetches the split rows of the given expenses in bulk and
// assembles ExpenseWithSplits values.
func (r *expenseRepository) loadSplits(ctx context.Context, expenseModels []model.ExpenseModel) ([]*entity.ExpenseWithSplits, error) {
	expenses := make([]*entity.ExpenseWithSplits, len(expenseModels))
	if len(expenseModels) == 0 {
		return expenses, nil
	}

	expenseIDs := make([]uuid.UUID, len(expenseModels))
	for i, m := range expenseModels {
		expenseIDs[i] = m.ID
	}

	var participantModels []model.ExpenseParticipantModel
	if err := r.db.WithContext(ctx).
		Where("expense_id IN ?", expenseIDs).
		Order("created_at ASC").
		Find(&participantModels).Error; err != nil {
		return nil, err
	}

	var lineItemModels []model.ExpenseLineItemModel
	if err := r.db.WithContext(ctx).
		Where("expense_id IN ?", expenseIDs).
		Order("created_at ASC").
		Find(&lineItemModels).Error; err != nil {
		return nil, err
	}

	var listModels []model.ItemizedListModel
	if err := r.db.WithContext(ctx).
		Where("expense_id IN ?", expenseIDs).
		Order("created_at ASC").
		Find(&listModels).Error; err != nil {
		return nil, err
	}

	var itemModels []model.ExpenseItemModel
	if len(listModels) > 0 {
		listIDs := make([]uuid.UUID, len(listModels))
		for i, l := range listModels {
			listIDs[i] = l.ID
		}
		if err := r.db.WithContext(ctx).
			Where("itemized_list_id IN ?", listIDs).
			Order("created_at ASC").
			Find(&itemModels).Error; err != nil {
			return nil, err
		}
	}

	// Group rows by owner
	lineItemsByExpense := make(map[uuid.UUID][]*entity.ExpenseLineItem)
	lineItemByID := make(map[uuid.UUID]*entity.ExpenseLineItem)
	for _, lm := range lineItemModels {
		item := lm.ToEntity()
		lineItemsByExpense[lm.ExpenseID] = append(lineItemsByExpense[lm.ExpenseID], item)
		lineItemByID[lm.ID] = item
	}

	participantsByExpense := make(map[uuid.UUID][]*entity.ExpenseParticipant)
	for _, pm := range participantModels {
		participant := pm.ToEntity()
		if pm.LineItemID != nil {
			if item, ok := lineItemByID[*pm.LineItemID]; ok {
				item.Participants = append(item.Participants, participant)
				continue
			}
		}
		participantsByExpense[pm.ExpenseID] = append(participantsByExpense[pm.ExpenseID], participant)
	}

	listsByExpense := make(map[uuid.UUID][]*entity.ParticipantItemizedList)
	listByID := make(map[uuid.UUID]*entity.ParticipantItemizedList)
	for _, lm := range listModels {
		list := lm.ToEntity()
		listsByExpense[lm.ExpenseID] = append(listsByExpense[lm.ExpenseID], list)
		listByID[lm.ID] = list
	}
	for _, im := range itemModels {
		if list, ok := listByID[im.ItemizedListID]; ok {
			list.Items = append(list.Items, im.ToEntity())
		}
	}

	for i, m := range expenseModels {
		expenses[i] = &entity.ExpenseWithSplits{
			Expense:       m.ToEntity(),
			Participants:  participantsByExpense[m.ID],
			LineItems:     lineItemsByExpense[m.ID],
			ItemizedLists: listsByExpense[m.ID],
		}
	}

	return expenses, nil
}

// insertSplitRows writes the split rows of an expense inside tx.
func insertSplitRows(tx *gorm.DB, expense *entity.ExpenseWithSplits) error {
	for _, participant := range expense.Participants {
		if err := tx.Create(model.ExpenseParticipantFromEntity(participant)).Error; err != nil {
			return err
		}
	}
	for _, item := range expense.LineItems {
		if err := tx.Create(model.ExpenseLineItemFromEntity(item)).Error; err != nil {
			return err
		}
		for _, participant := range item.Participants {
			if err := tx.Create(model.ExpenseParticipantFromEntity(participant)).Error; err != nil {
				return err
			}
		}
	}
	for _, list := range expense.ItemizedLists {
		if err := tx.Create(model.ItemizedListFromEntity(list)).Error; err != nil {
			return err
		}
		for _, item := range list.Items {
			if err := tx.Create(model.ExpenseItemFromEntity(item)).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// deleteSplitRows removes every split row of the given expenses inside tx.
func deleteSplitRows(tx *gorm.DB, expenseIDs []uuid.UUID) error {
	if len(expenseIDs) == 0 {
		return nil
	}

	var listIDs []uuid.UUID
	if err := tx.Model(&model.ItemizedListModel{}).
		Where("expense_id IN ?", expenseIDs).
		Pluck("id", &listIDs).Error; err != nil {
		return err
	}
	if len(listIDs) > 0 {
		if err := tx.Delete(&model.ExpenseItemModel{}, "itemized_list_id IN ?", listIDs).Error; err != nil {
			return err
		}
	}
	if err := tx.Delete(&model.ItemizedListModel{}, "expense_id IN ?", expenseIDs).Error; err != nil {
		return err
	}
	if err := tx.Delete(&model.ExpenseParticipantModel{}, "expense_id IN ?", expenseIDs).Error; err != nil {
		return err
	}
	return tx.Delete(&model.ExpenseLineItemModel{}, "expense_id IN ?", expenseIDs).Error
}

// deleteExpensesByIDs removes the given expenses with their split rows.
func deleteExpensesByIDs(tx *gorm.DB, expenseIDs []uuid.UUID) error {
	if len(expenseIDs) == 0 {
		return nil
	}
	if err := deleteSplitRows(tx, expenseIDs); err != nil {
		return err
	}
	return tx.Delete(&model.ExpenseModel{}, "id IN ?", expenseIDs).Error
}

// deleteExpensesByGroup removes every expense of the group with its splits.
func deleteExpensesByGroup(tx *gorm.DB, groupID uuid.UUID) error {
	var expenseIDs []uuid.UUID
	if err := tx.Model(&model.ExpenseModel{}).
		Where("group_id = ?", groupID).
		Pluck("id", &expenseIDs).Error; err != nil {
		return err
	}
	return deleteExpensesByIDs(tx, expenseIDs)
}
