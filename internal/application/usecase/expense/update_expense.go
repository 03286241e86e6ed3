package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents the input for expense updates. The split
// is always provided in full; updates replace every split row rather than
// patching them.
type UpdateExpenseInput struct {
	UserID      uuid.UUID
	ExpenseID   uuid.UUID
	DayID       *uuid.UUID
	EventID     *uuid.UUID
	PaidBy      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Split       valueobject.SplitSpec
}

// UpdateExpenseOutput represents the output of expense updates.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense updates. The expense stays in its
// group and trip; everything else, splits included, is replaced.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	groupRepo   adapter.GroupRepository
	tripRepo    adapter.TripRepository
	eventRepo   adapter.EventRepository
	resolver    *ExternalParticipantResolver
	cache       adapter.BalanceCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	groupRepo adapter.GroupRepository,
	tripRepo adapter.TripRepository,
	eventRepo adapter.EventRepository,
	resolver *ExternalParticipantResolver,
	cache adapter.BalanceCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		tripRepo:    tripRepo,
		eventRepo:   eventRepo,
		resolver:    resolver,
		cache:       cache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	existing, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil || existing == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	expense := existing.Expense

	memberIDs, err := checkExpenseAccess(ctx, uc.groupRepo, expense.GroupID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := validateExpenseFields(input.Description, input.Amount); err != nil {
		return nil, err
	}

	if !memberIDs[input.PaidBy] {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeParticipantNotInGroup,
			"payer is not a member of the group",
			domainerror.ErrParticipantNotInGroup,
		)
	}

	if err := uc.checkAnchors(ctx, expense.TripID, input.DayID, input.EventID); err != nil {
		return nil, err
	}

	if valErr := ValidateSplit(input.Split, input.Amount, memberIDs); valErr != nil {
		return nil, valErr
	}

	resolved, err := uc.resolver.Resolve(ctx, expense.GroupID, input.Split)
	if err != nil {
		return nil, err
	}

	expense.DayID = input.DayID
	expense.EventID = input.EventID
	expense.PaidBy = input.PaidBy
	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.Category = input.Category
	expense.SplitType = input.Split.Type
	expense.UpdatedAt = time.Now().UTC()

	withSplits := CalculateSplits(expense, input.Split, resolved)

	if err := uc.expenseRepo.Replace(ctx, withSplits); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateBalances(ctx, uc.cache, expense.GroupID)

	return &UpdateExpenseOutput{Expense: buildExpenseOutput(withSplits)}, nil
}

func (uc *UpdateExpenseUseCase) checkAnchors(ctx context.Context, tripID uuid.UUID, dayID, eventID *uuid.UUID) error {
	if dayID != nil {
		day, err := uc.tripRepo.FindDayByID(ctx, *dayID)
		if err != nil || day == nil || day.TripID != tripID {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseDayNotInTrip,
				"day does not belong to this trip",
				domainerror.ErrDayNotInTrip,
			)
		}
	}
	if eventID != nil {
		event, err := uc.eventRepo.FindByID(ctx, *eventID)
		if err != nil || event == nil || event.TripID != tripID {
			return domainerror.NewTripError(
				domainerror.ErrCodeEventNotFound,
				"event not found",
				domainerror.ErrEventNotFound,
			)
		}
	}
	return nil
}
