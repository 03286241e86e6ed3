package balance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// GetTripBalancesInput represents the input for a trip-scoped balance summary.
type GetTripBalancesInput struct {
	UserID uuid.UUID
	TripID uuid.UUID
}

// GetTripBalancesOutput represents the output of a trip-scoped balance summary.
type GetTripBalancesOutput struct {
	Summary *entity.MemberBalanceSummary
}

// GetTripBalancesUseCase computes the caller's balance position within one
// trip, consulting the cache before folding the trip's expenses.
type GetTripBalancesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	groupRepo   adapter.GroupRepository
	tripRepo    adapter.TripRepository
	cache       adapter.BalanceCache
}

// NewGetTripBalancesUseCase creates a new GetTripBalancesUseCase instance.
func NewGetTripBalancesUseCase(
	expenseRepo adapter.ExpenseRepository,
	groupRepo adapter.GroupRepository,
	tripRepo adapter.TripRepository,
	cache adapter.BalanceCache,
) *GetTripBalancesUseCase {
	return &GetTripBalancesUseCase{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		tripRepo:    tripRepo,
		cache:       cache,
	}
}

// Execute computes the summary.
func (uc *GetTripBalancesUseCase) Execute(ctx context.Context, input GetTripBalancesInput) (*GetTripBalancesOutput, error) {
	trip, err := uc.tripRepo.FindTripByID(ctx, input.TripID)
	if err != nil || trip == nil {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeTripNotFound,
			"trip not found",
			domainerror.ErrTripNotFound,
		)
	}

	memberNames, err := memberNamesForGroup(ctx, uc.groupRepo, trip.GroupID, input.UserID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, err := uc.cache.GetTripSummary(ctx, trip.GroupID, input.TripID, input.UserID)
		if err != nil {
			slog.Warn("Balance cache read failed", "tripID", input.TripID, "error", err)
		} else if cached != nil {
			return &GetTripBalancesOutput{Summary: cached}, nil
		}
	}

	expenses, err := uc.expenseRepo.FindByTripID(ctx, input.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip expenses: %w", err)
	}

	summary := Aggregate(AggregateInput{
		MemberID:    input.UserID,
		Expenses:    expenses,
		TripNames:   map[uuid.UUID]string{trip.ID: trip.Name},
		MemberNames: memberNames,
	})

	if uc.cache != nil {
		if err := uc.cache.SetTripSummary(ctx, trip.GroupID, input.TripID, input.UserID, summary); err != nil {
			slog.Warn("Balance cache write failed", "tripID", input.TripID, "error", err)
		}
	}

	return &GetTripBalancesOutput{Summary: summary}, nil
}

// memberNamesForGroup fetches the group's member roster, verifying the
// caller belongs to it, and returns a user-id to display-name lookup.
func memberNamesForGroup(ctx context.Context, groupRepo adapter.GroupRepository, groupID, userID uuid.UUID) (map[uuid.UUID]string, error) {
	members, err := groupRepo.FindMembersByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group members: %w", err)
	}

	names := make(map[uuid.UUID]string, len(members))
	isMember := false
	for _, member := range members {
		names[member.UserID] = member.UserName
		if member.UserID == userID {
			isMember = true
		}
	}

	if !isMember {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"user is not a member of this group",
			domainerror.ErrNotGroupMember,
		)
	}
	return names, nil
}
