package trip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
)

// RegenerateScheduleInput represents the input for changing a trip's dates.
type RegenerateScheduleInput struct {
	UserID    uuid.UUID
	TripID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// RegenerateScheduleOutput reports the new schedule and what the cascade
// destroyed, so clients can show the damage.
type RegenerateScheduleOutput struct {
	Trip            *TripOutput
	DeletedEvents   int64
	DeletedExpenses int64
}

// RegenerateScheduleUseCase handles trip date changes. Changing the dates
// is destructive: the whole day set is replaced and every event and
// expense anchored to the old days is removed with it. Group members are
// notified by email afterwards.
type RegenerateScheduleUseCase struct {
	tripRepo     adapter.TripRepository
	groupRepo    adapter.GroupRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	cache        adapter.BalanceCache
}

// NewRegenerateScheduleUseCase creates a new RegenerateScheduleUseCase instance.
func NewRegenerateScheduleUseCase(
	tripRepo adapter.TripRepository,
	groupRepo adapter.GroupRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	cache adapter.BalanceCache,
) *RegenerateScheduleUseCase {
	return &RegenerateScheduleUseCase{
		tripRepo:     tripRepo,
		groupRepo:    groupRepo,
		userRepo:     userRepo,
		emailService: emailService,
		cache:        cache,
	}
}

// Execute performs the schedule regeneration.
func (uc *RegenerateScheduleUseCase) Execute(ctx context.Context, input RegenerateScheduleInput) (*RegenerateScheduleOutput, error) {
	trip, err := fetchTripForMember(ctx, uc.tripRepo, uc.groupRepo, input.TripID, input.UserID)
	if err != nil {
		return nil, err
	}

	days, err := GenerateDays(trip.ID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	trip.StartDate = days[0].Date
	trip.EndDate = days[len(days)-1].Date
	trip.UpdatedAt = time.Now().UTC()

	deletedEvents, deletedExpenses, err := uc.tripRepo.ReplaceSchedule(ctx, trip, days)
	if err != nil {
		return nil, fmt.Errorf("failed to regenerate schedule: %w", err)
	}

	if deletedExpenses > 0 && uc.cache != nil {
		if err := uc.cache.InvalidateGroup(ctx, trip.GroupID); err != nil {
			slog.Warn("Failed to invalidate balance cache after schedule change",
				"groupID", trip.GroupID,
				"error", err,
			)
		}
	}

	uc.notifyMembers(ctx, trip.GroupID, input.UserID, trip.Name, trip.StartDate, trip.EndDate, deletedEvents, deletedExpenses)

	return &RegenerateScheduleOutput{
		Trip:            buildTripOutput(trip, days),
		DeletedEvents:   deletedEvents,
		DeletedExpenses: deletedExpenses,
	}, nil
}

// notifyMembers queues a schedule-change email to every group member other
// than the actor who opted in to email notifications. Email failures never
// fail the schedule change.
func (uc *RegenerateScheduleUseCase) notifyMembers(ctx context.Context, groupID, actorID uuid.UUID, tripName string, startDate, endDate time.Time, deletedEvents, deletedExpenses int64) {
	members, err := uc.groupRepo.FindMembersByGroupID(ctx, groupID)
	if err != nil {
		slog.Warn("Failed to fetch members for schedule-change notification",
			"groupID", groupID,
			"error", err,
		)
		return
	}

	for _, member := range members {
		if member.UserID == actorID {
			continue
		}

		user, err := uc.userRepo.FindByID(ctx, member.UserID)
		if err != nil || !user.EmailNotifications {
			continue
		}

		err = uc.emailService.QueueScheduleChangedEmail(ctx, adapter.QueueScheduleChangedInput{
			MemberEmail:     user.Email,
			MemberName:      user.Name,
			TripName:        tripName,
			NewStartDate:    startDate.Format("2006-01-02"),
			NewEndDate:      endDate.Format("2006-01-02"),
			DeletedEvents:   deletedEvents,
			DeletedExpenses: deletedExpenses,
		})
		if err != nil {
			slog.Warn("Failed to queue schedule-change email",
				"userID", member.UserID,
				"error", err,
			)
		}
	}
}
