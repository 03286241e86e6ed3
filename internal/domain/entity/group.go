// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole represents the role of a member in a group.
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// InviteStatus represents the status of a group invitation.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
	InviteStatusExpired  InviteStatus = "expired"
)

// Group represents a travel group in the Trip Planner system. Trips,
// expenses, and external participants are always owned by a group.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGroup creates a new Group entity.
func NewGroup(name, description string, createdBy uuid.UUID) *Group {
	now := time.Now().UTC()

	return &Group{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GroupMember represents a member of a group.
type GroupMember struct {
	ID       uuid.UUID
	GroupID  uuid.UUID
	UserID   uuid.UUID
	Role     MemberRole
	JoinedAt time.Time
	// User information (populated when needed)
	UserName  string
	UserEmail string
}

// NewGroupMember creates a new GroupMember entity.
func NewGroupMember(groupID, userID uuid.UUID, role MemberRole) *GroupMember {
	return &GroupMember{
		ID:       uuid.New(),
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
}

// GroupInvite represents an invitation to join a group.
type GroupInvite struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	Email     string
	Token     string
	InvitedBy uuid.UUID
	Status    InviteStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewGroupInvite creates a new GroupInvite entity.
func NewGroupInvite(groupID uuid.UUID, email, token string, invitedBy uuid.UUID, expiresAt time.Time) *GroupInvite {
	return &GroupInvite{
		ID:        uuid.New(),
		GroupID:   groupID,
		Email:     email,
		Token:     token,
		InvitedBy: invitedBy,
		Status:    InviteStatusPending,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
}

// IsExpired checks if the invitation has expired.
func (i *GroupInvite) IsExpired() bool {
	return time.Now().UTC().After(i.ExpiresAt)
}

// GroupWithMembers represents a group with its members.
type GroupWithMembers struct {
	Group          *Group
	Members        []*GroupMember
	PendingInvites []*GroupInvite
	MemberCount    int
	UserRole       MemberRole
}

// GroupListItem represents a group in a list view.
type GroupListItem struct {
	ID          uuid.UUID
	Name        string
	Description string
	MemberCount int
	TripCount   int
	Role        MemberRole
	CreatedAt   time.Time
}

// ExternalParticipant is a person without an account who takes part in
// group expenses, identified only by a free-text name scoped to the group.
// The (GroupID, Name) pair is the identity key; records are reused across
// expenses and never deleted automatically.
type ExternalParticipant struct {
	ID         uuid.UUID
	GroupID    uuid.UUID
	Name       string
	LastUsedAt time.Time
	CreatedAt  time.Time
}

// NewExternalParticipant creates a new ExternalParticipant entity.
func NewExternalParticipant(groupID uuid.UUID, name string) *ExternalParticipant {
	now := time.Now().UTC()
	return &ExternalParticipant{
		ID:         uuid.New(),
		GroupID:    groupID,
		Name:       name,
		LastUsedAt: now,
		CreatedAt:  now,
	}
}

// Touch refreshes the last-used timestamp.
func (p *ExternalParticipant) Touch() {
	p.LastUsedAt = time.Now().UTC()
}
