package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion. Only the payer or a group
// admin may delete an expense; split rows are removed with it.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	groupRepo   adapter.GroupRepository
	cache       adapter.BalanceCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	groupRepo adapter.GroupRepository,
	cache adapter.BalanceCache,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		cache:       cache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	withSplits, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil || withSplits == nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	expense := withSplits.Expense

	member, err := uc.groupRepo.FindMemberByGroupAndUser(ctx, expense.GroupID, input.UserID)
	if err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if expense.PaidBy != input.UserID && member.Role != entity.MemberRoleAdmin {
		return domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupAdmin,
			"only the payer or a group admin can delete an expense",
			domainerror.ErrNotGroupAdmin,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateBalances(ctx, uc.cache, expense.GroupID)
	return nil
}
