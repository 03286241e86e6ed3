// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for group creation.
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateGroupRequest represents the request body for updating a group.
type UpdateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// InviteMemberRequest represents the request body for inviting a member.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangeMemberRoleRequest represents the request body for changing a member's role.
type ChangeMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin member"`
}

// GroupResponse represents a single group in API responses.
type GroupResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	CreatedBy   string                `json:"created_by"`
	CreatedAt   time.Time             `json:"created_at"`
	Members     []GroupMemberResponse `json:"members,omitempty"`
}

// GroupListResponse represents the response for listing groups.
type GroupListResponse struct {
	Groups []GroupListItemResponse `json:"groups"`
}

// GroupListItemResponse represents a group in list view.
type GroupListItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MemberCount int       `json:"member_count"`
	TripCount   int       `json:"trip_count"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupDetailResponse represents detailed group information.
type GroupDetailResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description,omitempty"`
	CreatedBy      string                `json:"created_by"`
	CreatedAt      time.Time             `json:"created_at"`
	UserRole       string                `json:"user_role"`
	Members        []GroupMemberResponse `json:"members"`
	PendingInvites []GroupInviteResponse `json:"pending_invites,omitempty"`
}

// GroupMemberResponse represents a group member in API responses.
type GroupMemberResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupInviteResponse represents a group invitation in API responses.
type GroupInviteResponse struct {
	ID        string    `json:"id,omitempty"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// AcceptInviteResponse represents the response for accepting an invitation.
type AcceptInviteResponse struct {
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
}

// MemberRoleResponse represents the response for role change.
type MemberRoleResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ExternalParticipantResponse represents an external participant in API responses.
type ExternalParticipantResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// ExternalParticipantListResponse represents the response for listing a
// group's external participants.
type ExternalParticipantListResponse struct {
	Participants []ExternalParticipantResponse `json:"participants"`
}

// ToGroupResponse converts a domain Group entity to a GroupResponse DTO.
func ToGroupResponse(group *entity.Group, members []*entity.GroupMember) GroupResponse {
	response := GroupResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy.String(),
		CreatedAt:   group.CreatedAt,
		Members:     make([]GroupMemberResponse, len(members)),
	}

	for i, m := range members {
		response.Members[i] = ToGroupMemberResponse(m)
	}

	return response
}

// ToGroupListResponse converts a list of GroupListItem to GroupListResponse.
func ToGroupListResponse(groups []*entity.GroupListItem) GroupListResponse {
	items := make([]GroupListItemResponse, len(groups))
	for i, g := range groups {
		items[i] = GroupListItemResponse{
			ID:          g.ID.String(),
			Name:        g.Name,
			Description: g.Description,
			MemberCount: g.MemberCount,
			TripCount:   g.TripCount,
			Role:        string(g.Role),
			CreatedAt:   g.CreatedAt,
		}
	}
	return GroupListResponse{Groups: items}
}

// ToGroupDetailResponse converts group details to a GroupDetailResponse DTO.
func ToGroupDetailResponse(group *entity.Group, members []*entity.GroupMember, invites []*entity.GroupInvite, userRole entity.MemberRole) GroupDetailResponse {
	response := GroupDetailResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy.String(),
		CreatedAt:   group.CreatedAt,
		UserRole:    string(userRole),
		Members:     make([]GroupMemberResponse, len(members)),
	}

	for i, m := range members {
		response.Members[i] = ToGroupMemberResponse(m)
	}

	for _, invite := range invites {
		response.PendingInvites = append(response.PendingInvites, GroupInviteResponse{
			Email:     invite.Email,
			Status:    string(invite.Status),
			ExpiresAt: invite.ExpiresAt,
		})
	}

	return response
}

// ToGroupMemberResponse converts a domain GroupMember to a GroupMemberResponse DTO.
func ToGroupMemberResponse(member *entity.GroupMember) GroupMemberResponse {
	return GroupMemberResponse{
		ID:       member.ID.String(),
		UserID:   member.UserID.String(),
		Name:     member.UserName,
		Email:    member.UserEmail,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
}

// ToGroupInviteResponse converts a domain GroupInvite to a GroupInviteResponse DTO.
func ToGroupInviteResponse(invite *entity.GroupInvite) GroupInviteResponse {
	return GroupInviteResponse{
		ID:        invite.ID.String(),
		Email:     invite.Email,
		Token:     invite.Token,
		Status:    string(invite.Status),
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}
}

// ToMemberRoleResponse converts a domain GroupMember to a MemberRoleResponse DTO.
func ToMemberRoleResponse(member *entity.GroupMember) MemberRoleResponse {
	return MemberRoleResponse{
		ID:     member.ID.String(),
		UserID: member.UserID.String(),
		Role:   string(member.Role),
	}
}

// ToAcceptInviteResponse builds an AcceptInviteResponse.
func ToAcceptInviteResponse(groupID, groupName string) AcceptInviteResponse {
	return AcceptInviteResponse{
		GroupID:   groupID,
		GroupName: groupName,
	}
}

// ToExternalParticipantListResponse converts external participants to a list response.
func ToExternalParticipantListResponse(participants []*entity.ExternalParticipant) ExternalParticipantListResponse {
	items := make([]ExternalParticipantResponse, len(participants))
	for i, p := range participants {
		items[i] = ExternalParticipantResponse{
			ID:         p.ID.String(),
			Name:       p.Name,
			LastUsedAt: p.LastUsedAt,
		}
	}
	return ExternalParticipantListResponse{Participants: items}
}
