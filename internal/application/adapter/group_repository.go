// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// GroupRepository defines the interface for group persistence operations.
type GroupRepository interface {
	// CreateGroup creates a new group in the database.
	CreateGroup(ctx context.Context, group *entity.Group) error

	// FindGroupByID retrieves a group by its ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// FindGroupsByUserID retrieves all groups a user belongs to.
	FindGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.GroupListItem, error)

	// UpdateGroup updates a group's fields.
	UpdateGroup(ctx context.Context, group *entity.Group) error

	// DeleteGroup removes a group and everything it owns: members, invites,
	// trips with their days, events, and expenses.
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// CreateMember adds a new member to a group.
	CreateMember(ctx context.Context, member *entity.GroupMember) error

	// FindMemberByGroupAndUser retrieves a member by group and user ID.
	FindMemberByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error)

	// FindMemberByID retrieves a member by its ID.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.GroupMember, error)

	// FindMembersByGroupID retrieves all members of a group.
	FindMembersByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupMember, error)

	// FindMembersByUserIDs retrieves the members of a group whose user ids
	// are in the given set (batch membership check).
	FindMembersByUserIDs(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) ([]*entity.GroupMember, error)

	// UpdateMember updates a member's fields (currently only the role).
	UpdateMember(ctx context.Context, member *entity.GroupMember) error

	// DeleteMember removes a member from a group.
	DeleteMember(ctx context.Context, id uuid.UUID) error

	// CountAdminsByGroupID counts the number of admins in a group.
	CountAdminsByGroupID(ctx context.Context, groupID uuid.UUID) (int, error)

	// CreateInvite creates a new group invitation.
	CreateInvite(ctx context.Context, invite *entity.GroupInvite) error

	// FindInviteByToken retrieves an invitation by its token.
	FindInviteByToken(ctx context.Context, token string) (*entity.GroupInvite, error)

	// FindPendingInviteByGroupAndEmail retrieves a pending invite by group and email.
	FindPendingInviteByGroupAndEmail(ctx context.Context, groupID uuid.UUID, email string) (*entity.GroupInvite, error)

	// UpdateInvite updates an invitation.
	UpdateInvite(ctx context.Context, invite *entity.GroupInvite) error

	// IsUserMemberOfGroup checks if a user is a member of a group.
	IsUserMemberOfGroup(ctx context.Context, groupID, userID uuid.UUID) (bool, error)

	// GetGroupWithMembers retrieves a group with its members and pending invites.
	GetGroupWithMembers(ctx context.Context, groupID uuid.UUID) (*entity.GroupWithMembers, error)
}

// ExternalParticipantRepository defines persistence for external
// participants, people without accounts who appear in splits by name.
type ExternalParticipantRepository interface {
	// Create inserts a new external participant. Returns
	// domainerror.ErrExternalParticipantConflict when a concurrent request
	// already created the same (groupID, name) pair.
	Create(ctx context.Context, participant *entity.ExternalParticipant) error

	// FindByGroupAndName retrieves a participant by exact (groupID, name).
	// Returns nil without error when no record exists.
	FindByGroupAndName(ctx context.Context, groupID uuid.UUID, name string) (*entity.ExternalParticipant, error)

	// FindByGroupID retrieves all external participants of a group,
	// most recently used first.
	FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.ExternalParticipant, error)

	// TouchLastUsed refreshes the last-used timestamp of a participant.
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
}
