package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// ListTripExpensesInput represents the input for listing a trip's expenses.
type ListTripExpensesInput struct {
	UserID uuid.UUID
	TripID uuid.UUID
}

// ListTripExpensesOutput represents the output of listing a trip's expenses.
type ListTripExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListTripExpensesUseCase handles listing every expense of a trip.
type ListTripExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	groupRepo   adapter.GroupRepository
	tripRepo    adapter.TripRepository
}

// NewListTripExpensesUseCase creates a new ListTripExpensesUseCase instance.
func NewListTripExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	groupRepo adapter.GroupRepository,
	tripRepo adapter.TripRepository,
) *ListTripExpensesUseCase {
	return &ListTripExpensesUseCase{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		tripRepo:    tripRepo,
	}
}

// Execute lists the trip's expenses, newest first.
func (uc *ListTripExpensesUseCase) Execute(ctx context.Context, input ListTripExpensesInput) (*ListTripExpensesOutput, error) {
	trip, err := uc.tripRepo.FindTripByID(ctx, input.TripID)
	if err != nil || trip == nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	isMember, err := uc.groupRepo.IsUserMemberOfGroup(ctx, trip.GroupID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	expenses, err := uc.expenseRepo.FindByTripID(ctx, input.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListTripExpensesOutput{Expenses: make([]*ExpenseOutput, 0, len(expenses))}
	for _, e := range expenses {
		output.Expenses = append(output.Expenses, buildExpenseOutput(e))
	}
	return output, nil
}
