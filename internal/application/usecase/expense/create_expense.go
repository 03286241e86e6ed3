package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// MaxExpenseDescriptionLength is the maximum allowed length for expense descriptions.
const MaxExpenseDescriptionLength = 255

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	GroupID     uuid.UUID
	TripID      uuid.UUID
	DayID       *uuid.UUID
	EventID     *uuid.UUID
	PaidBy      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Split       valueobject.SplitSpec
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation: it validates the split,
// resolves external participants, computes the persisted split rows, and
// stores everything atomically.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	groupRepo   adapter.GroupRepository
	tripRepo    adapter.TripRepository
	eventRepo   adapter.EventRepository
	resolver    *ExternalParticipantResolver
	cache       adapter.BalanceCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	groupRepo adapter.GroupRepository,
	tripRepo adapter.TripRepository,
	eventRepo adapter.EventRepository,
	resolver *ExternalParticipantResolver,
	cache adapter.BalanceCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		tripRepo:    tripRepo,
		eventRepo:   eventRepo,
		resolver:    resolver,
		cache:       cache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	memberIDs, err := checkExpenseAccess(ctx, uc.groupRepo, input.GroupID, input.UserID)
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

	if err := uc.checkTripAnchors(ctx, input.GroupID, input.TripID, input.DayID, input.EventID); err != nil {
		return nil, err
	}

	if valErr := ValidateSplit(input.Split, input.Amount, memberIDs); valErr != nil {
		return nil, valErr
	}

	resolved, err := uc.resolver.Resolve(ctx, input.GroupID, input.Split)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.GroupID,
		input.TripID,
		input.DayID,
		input.EventID,
		input.PaidBy,
		input.Description,
		input.Amount,
		input.Category,
		input.Split.Type,
	)

	withSplits := CalculateSplits(expense, input.Split, resolved)

	if err := uc.expenseRepo.Create(ctx, withSplits); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateBalances(ctx, uc.cache, input.GroupID)

	return &CreateExpenseOutput{Expense: buildExpenseOutput(withSplits)}, nil
}

// checkTripAnchors verifies that the trip belongs to the group and that any
// day or event anchor belongs to the trip. A trip from another group is
// reported the same as a missing trip.
func (uc *CreateExpenseUseCase) checkTripAnchors(ctx context.Context, groupID, tripID uuid.UUID, dayID, eventID *uuid.UUID) error {
	trip, err := uc.tripRepo.FindTripByID(ctx, tripID)
	if err != nil || trip == nil || trip.GroupID != groupID {
		return domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

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

// checkExpenseAccess verifies the caller belongs to the group and returns
// the group's member id set for split validation.
func checkExpenseAccess(ctx context.Context, groupRepo adapter.GroupRepository, groupID, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	members, err := groupRepo.FindMembersByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group members: %w", err)
	}

	memberIDs := make(map[uuid.UUID]bool, len(members))
	for _, member := range members {
		memberIDs[member.UserID] = true
	}

	if !memberIDs[userID] {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"user is not a member of this group",
			domainerror.ErrNotGroupMember,
		)
	}

	return memberIDs, nil
}

func validateExpenseFields(description string, amount decimal.Decimal) error {
	if strings.TrimSpace(description) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"expense description is required",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if len(description) > MaxExpenseDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			fmt.Sprintf("description must not exceed %d characters", MaxExpenseDescriptionLength),
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return nil
}

// invalidateBalances drops cached balance summaries for the group. Cache
// failures never fail the write; stale entries expire on their own.
func invalidateBalances(ctx context.Context, cache adapter.BalanceCache, groupID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateGroup(ctx, groupID); err != nil {
		slog.Warn("Failed to invalidate balance cache",
			"groupID", groupID,
			"error", err,
		)
	}
}
