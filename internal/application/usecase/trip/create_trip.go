package trip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// MaxTripNameLength is the maximum allowed length for trip names.
const MaxTripNameLength = 100

// CreateTripInput represents the input for trip creation.
type CreateTripInput struct {
	UserID      uuid.UUID
	GroupID     uuid.UUID
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
}

// CreateTripOutput represents the output of trip creation.
type CreateTripOutput struct {
	Trip *TripOutput
}

// CreateTripUseCase handles trip creation. The day schedule is generated
// from the date range and stored with the trip in one transaction.
type CreateTripUseCase struct {
	tripRepo  adapter.TripRepository
	groupRepo adapter.GroupRepository
}

// NewCreateTripUseCase creates a new CreateTripUseCase instance.
func NewCreateTripUseCase(tripRepo adapter.TripRepository, groupRepo adapter.GroupRepository) *CreateTripUseCase {
	return &CreateTripUseCase{tripRepo: tripRepo, groupRepo: groupRepo}
}

// Execute performs the trip creation.
func (uc *CreateTripUseCase) Execute(ctx context.Context, input CreateTripInput) (*CreateTripOutput, error) {
	if err := validateTripName(input.Name); err != nil {
		return nil, err
	}

	isMember, err := uc.groupRepo.IsUserMemberOfGroup(ctx, input.GroupID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"user is not a member of this group",
			domainerror.ErrNotGroupMember,
		)
	}

	trip := entity.NewTrip(
		input.GroupID,
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Destination),
		input.StartDate,
		input.EndDate,
		input.UserID,
	)

	days, err := GenerateDays(trip.ID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip, days); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return &CreateTripOutput{Trip: buildTripOutput(trip, days)}, nil
}

func validateTripName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domainerror.NewTripError(
			domainerror.ErrCodeTripNameRequired,
			"trip name is required",
			domainerror.ErrTripNameRequired,
		)
	}
	if len(trimmed) > MaxTripNameLength {
		return domainerror.NewTripError(
			domainerror.ErrCodeTripNameRequired,
			fmt.Sprintf("trip name must not exceed %d characters", MaxTripNameLength),
			domainerror.ErrTripNameRequired,
		)
	}
	return nil
}
