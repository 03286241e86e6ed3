package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// GetExpenseInput represents the input for fetching a single expense.
type GetExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// GetExpenseOutput represents the output of fetching a single expense.
type GetExpenseOutput struct {
	Expense *ExpenseOutput
}

// GetExpenseUseCase handles fetching a single expense with its splits.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	groupRepo   adapter.GroupRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository, groupRepo adapter.GroupRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo, groupRepo: groupRepo}
}

// Execute fetches the expense. An expense in a group the caller does not
// belong to is reported the same as a missing expense.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	withSplits, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil || withSplits == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	isMember, err := uc.groupRepo.IsUserMemberOfGroup(ctx, withSplits.Expense.GroupID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	return &GetExpenseOutput{Expense: buildExpenseOutput(withSplits)}, nil
}
