// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// UpdateGroupInput represents the input for updating a group.
type UpdateGroupInput struct {
	GroupID     uuid.UUID
	RequesterID uuid.UUID
	Name        string
	Description string
}

// UpdateGroupOutput represents the output of updating a group.
type UpdateGroupOutput struct {
	Group   *entity.Group
	Members []*entity.GroupMember
}

// UpdateGroupUseCase handles updating a group's name and description.
type UpdateGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewUpdateGroupUseCase creates a new UpdateGroupUseCase instance.
func NewUpdateGroupUseCase(groupRepo adapter.GroupRepository) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the group update operation.
func (uc *UpdateGroupUseCase) Execute(ctx context.Context, input UpdateGroupInput) (*UpdateGroupOutput, error) {
	// Verify requester is a member of the group
	member, err := uc.groupRepo.FindMemberByGroupAndUser(ctx, input.GroupID, input.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			domainerror.ErrGroupNotFound,
		)
	}

	// Only admins can update group details
	if member.Role != entity.MemberRoleAdmin {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupAdmin,
			"only group admins can update groups",
			domainerror.ErrNotGroupAdmin,
		)
	}

	group, err := uc.groupRepo.FindGroupByID(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			domainerror.ErrGroupNotFound,
		)
	}

	group.Name = input.Name
	group.Description = input.Description
	group.UpdatedAt = time.Now().UTC()

	if err := uc.groupRepo.UpdateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	members, err := uc.groupRepo.FindMembersByGroupID(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	return &UpdateGroupOutput{
		Group:   group,
		Members: members,
	}, nil
}
