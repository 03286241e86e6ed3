package balance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
)

// GetGroupBalancesInput represents the input for a group-wide balance summary.
type GetGroupBalancesInput struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
}

// GetGroupBalancesOutput represents the output of a group-wide balance summary.
type GetGroupBalancesOutput struct {
	Summary *entity.MemberBalanceSummary
}

// GetGroupBalancesUseCase computes the caller's position across every trip
// of a group, with per-trip breakdowns.
type GetGroupBalancesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	groupRepo   adapter.GroupRepository
	tripRepo    adapter.TripRepository
	cache       adapter.BalanceCache
}

// NewGetGroupBalancesUseCase creates a new GetGroupBalancesUseCase instance.
func NewGetGroupBalancesUseCase(
	expenseRepo adapter.ExpenseRepository,
	groupRepo adapter.GroupRepository,
	tripRepo adapter.TripRepository,
	cache adapter.BalanceCache,
) *GetGroupBalancesUseCase {
	return &GetGroupBalancesUseCase{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		tripRepo:    tripRepo,
		cache:       cache,
	}
}

// Execute computes the summary.
func (uc *GetGroupBalancesUseCase) Execute(ctx context.Context, input GetGroupBalancesInput) (*GetGroupBalancesOutput, error) {
	memberNames, err := memberNamesForGroup(ctx, uc.groupRepo, input.GroupID, input.UserID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, err := uc.cache.GetGroupSummary(ctx, input.GroupID, input.UserID)
		if err != nil {
			slog.Warn("Balance cache read failed", "groupID", input.GroupID, "error", err)
		} else if cached != nil {
			return &GetGroupBalancesOutput{Summary: cached}, nil
		}
	}

	trips, err := uc.tripRepo.FindTripsByGroupID(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group trips: %w", err)
	}
	tripNames := make(map[uuid.UUID]string, len(trips))
	for _, trip := range trips {
		tripNames[trip.ID] = trip.Name
	}

	expenses, err := uc.expenseRepo.FindByGroupID(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group expenses: %w", err)
	}

	summary := Aggregate(AggregateInput{
		MemberID:    input.UserID,
		Expenses:    expenses,
		TripNames:   tripNames,
		MemberNames: memberNames,
	})

	if uc.cache != nil {
		if err := uc.cache.SetGroupSummary(ctx, input.GroupID, input.UserID, summary); err != nil {
			slog.Warn("Balance cache write failed", "groupID", input.GroupID, "error", err)
		}
	}

	return &GetGroupBalancesOutput{Summary: summary}, nil
}
