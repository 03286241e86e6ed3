// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// ListExternalParticipantsInput represents the input for listing a group's
// external participants.
type ListExternalParticipantsInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// ExternalParticipantItem represents one external participant in the list.
type ExternalParticipantItem struct {
	ID         uuid.UUID
	Name       string
	LastUsedAt time.Time
}

// ListExternalParticipantsOutput represents the output of listing external
// participants.
type ListExternalParticipantsOutput struct {
	Participants []ExternalParticipantItem
}

// ListExternalParticipantsUseCase lists the external participants known to a
// group, most recently used first, for name autocompletion in split forms.
type ListExternalParticipantsUseCase struct {
	groupRepo adapter.GroupRepository
	externals adapter.ExternalParticipantRepository
}

// NewListExternalParticipantsUseCase creates a new ListExternalParticipantsUseCase instance.
func NewListExternalParticipantsUseCase(groupRepo adapter.GroupRepository, externals adapter.ExternalParticipantRepository) *ListExternalParticipantsUseCase {
	return &ListExternalParticipantsUseCase{
		groupRepo: groupRepo,
		externals: externals,
	}
}

// Execute performs the listing.
func (uc *ListExternalParticipantsUseCase) Execute(ctx context.Context, input ListExternalParticipantsInput) (*ListExternalParticipantsOutput, error) {
	// Verify requester is a member of the group
	isMember, err := uc.groupRepo.IsUserMemberOfGroup(ctx, input.GroupID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"you are not a member of this group",
			domainerror.ErrNotGroupMember,
		)
	}

	participants, err := uc.externals.FindByGroupID(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list external participants: %w", err)
	}

	items := make([]ExternalParticipantItem, 0, len(participants))
	for _, p := range participants {
		items = append(items, ExternalParticipantItem{
			ID:         p.ID,
			Name:       p.Name,
			LastUsedAt: p.LastUsedAt,
		})
	}

	return &ListExternalParticipantsOutput{
		Participants: items,
	}, nil
}
