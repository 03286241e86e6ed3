// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/usecase/group"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/entrypoint/dto"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// GroupController handles group endpoints.
type GroupController struct {
	createUseCase        *group.CreateGroupUseCase
	listUseCase          *group.ListGroupsUseCase
	getUseCase           *group.GetGroupUseCase
	updateUseCase        *group.UpdateGroupUseCase
	deleteUseCase        *group.DeleteGroupUseCase
	inviteUseCase        *group.InviteMemberUseCase
	acceptInviteUseCase  *group.AcceptInviteUseCase
	changeRoleUseCase    *group.ChangeMemberRoleUseCase
	removeMemberUseCase  *group.RemoveMemberUseCase
	leaveUseCase         *group.LeaveGroupUseCase
	listExternalsUseCase *group.ListExternalParticipantsUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createUseCase *group.CreateGroupUseCase,
	listUseCase *group.ListGroupsUseCase,
	getUseCase *group.GetGroupUseCase,
	updateUseCase *group.UpdateGroupUseCase,
	deleteUseCase *group.DeleteGroupUseCase,
	inviteUseCase *group.InviteMemberUseCase,
	acceptInviteUseCase *group.AcceptInviteUseCase,
	changeRoleUseCase *group.ChangeMemberRoleUseCase,
	removeMemberUseCase *group.RemoveMemberUseCase,
	leaveUseCase *group.LeaveGroupUseCase,
	listExternalsUseCase *group.ListExternalParticipantsUseCase,
) *GroupController {
	return &GroupController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		inviteUseCase:        inviteUseCase,
		acceptInviteUseCase:  acceptInviteUseCase,
		changeRoleUseCase:    changeRoleUseCase,
		removeMemberUseCase:  removeMemberUseCase,
		leaveUseCase:         leaveUseCase,
		listExternalsUseCase: listExternalsUseCase,
	}
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGroupFields),
		})
		return
	}

	// Build input
	input := group.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGroupResponse(output.Group, output.Members)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Build input
	input := group.ListGroupsInput{
		UserID: userID,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve groups",
		})
		return
	}

	// Build response
	response := dto.ToGroupListResponse(output.Groups)
	ctx.JSON(http.StatusOK, response)
}

// Get handles GET /groups/:id requests.
func (c *GroupController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Build input
	input := group.GetGroupInput{
		GroupID: groupID,
		UserID:  userID,
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGroupDetailResponse(output.Group, output.Members, output.PendingInvites, output.UserRole)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /groups/:id requests.
func (c *GroupController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGroupFields),
		})
		return
	}

	// Build input
	input := group.UpdateGroupInput{
		GroupID:     groupID,
		RequesterID: userID,
		Name:        req.Name,
		Description: req.Description,
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGroupResponse(output.Group, output.Members)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /groups/:id requests.
func (c *GroupController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Build input
	input := group.DeleteGroupInput{
		GroupID:     groupID,
		RequesterID: userID,
	}

	// Execute use case
	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// Invite handles POST /groups/:id/invite requests.
func (c *GroupController) Invite(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Parse request body
	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidGroupEmail),
		})
		return
	}

	// Build input
	input := group.InviteMemberInput{
		GroupID:   groupID,
		Email:     req.Email,
		InviterID: userID,
	}

	// Execute use case
	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGroupInviteResponse(output.Invite)
	ctx.JSON(http.StatusCreated, response)
}

// AcceptInvite handles POST /groups/invites/:token/accept requests.
func (c *GroupController) AcceptInvite(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Get token from URL
	token := ctx.Param("token")
	if token == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Token is required",
		})
		return
	}

	// Build input
	input := group.AcceptInviteInput{
		Token:  token,
		UserID: userID,
	}

	// Execute use case
	output, err := c.acceptInviteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Build response
	response := dto.ToAcceptInviteResponse(output.GroupID.String(), output.GroupName)
	ctx.JSON(http.StatusOK, response)
}

// ChangeRole handles PUT /groups/:id/members/:member_id/role requests.
func (c *GroupController) ChangeRole(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Parse member ID from URL
	memberIDStr := ctx.Param("member_id")
	memberID, err := uuid.Parse(memberIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
		})
		return
	}

	// Parse request body
	var req dto.ChangeMemberRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidMemberRole),
		})
		return
	}

	// Build input
	input := group.ChangeMemberRoleInput{
		GroupID:     groupID,
		MemberID:    memberID,
		NewRole:     entity.MemberRole(req.Role),
		RequesterID: userID,
	}

	// Execute use case
	output, err := c.changeRoleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Build response
	response := dto.ToMemberRoleResponse(output.Member)
	ctx.JSON(http.StatusOK, response)
}

// RemoveMember handles DELETE /groups/:id/members/:member_id requests.
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Parse member ID from URL
	memberIDStr := ctx.Param("member_id")
	memberID, err := uuid.Parse(memberIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
		})
		return
	}

	// Build input
	input := group.RemoveMemberInput{
		GroupID:     groupID,
		MemberID:    memberID,
		RequesterID: userID,
	}

	// Execute use case
	_, err = c.removeMemberUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// Leave handles DELETE /groups/:id/members/me requests.
func (c *GroupController) Leave(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Build input
	input := group.LeaveGroupInput{
		GroupID: groupID,
		UserID:  userID,
	}

	// Execute use case
	_, err = c.leaveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// ListExternalParticipants handles GET /groups/:id/external-participants requests.
func (c *GroupController) ListExternalParticipants(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Build input
	input := group.ListExternalParticipantsInput{
		GroupID: groupID,
		UserID:  userID,
	}

	// Execute use case
	output, err := c.listExternalsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	// Build response
	items := make([]dto.ExternalParticipantResponse, len(output.Participants))
	for i, p := range output.Participants {
		items[i] = dto.ExternalParticipantResponse{
			ID:         p.ID.String(),
			Name:       p.Name,
			LastUsedAt: p.LastUsedAt,
		}
	}
	ctx.JSON(http.StatusOK, dto.ExternalParticipantListResponse{Participants: items})
}

// handleGroupError handles group errors and returns appropriate HTTP responses.
func (c *GroupController) handleGroupError(ctx *gin.Context, err error) {
	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		statusCode := c.getStatusCodeForGroupError(groupErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: groupErr.Message,
			Code:  string(groupErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGroupError maps group error codes to HTTP status codes.
func (c *GroupController) getStatusCodeForGroupError(code domainerror.GroupErrorCode) int {
	switch code {
	case domainerror.ErrCodeGroupNotFound,
		domainerror.ErrCodeMemberNotFound,
		domainerror.ErrCodeInviteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInviteAlreadyExists,
		domainerror.ErrCodeUserAlreadyMember,
		domainerror.ErrCodeExternalParticipantConflict:
		return http.StatusConflict
	case domainerror.ErrCodeNotGroupAdmin,
		domainerror.ErrCodeNotGroupMember:
		return http.StatusForbidden
	case domainerror.ErrCodeGroupNameTooLong,
		domainerror.ErrCodeGroupNameRequired,
		domainerror.ErrCodeInvalidMemberRole,
		domainerror.ErrCodeInvalidGroupEmail,
		domainerror.ErrCodeMissingGroupFields,
		domainerror.ErrCodeCannotRemoveSoleAdmin,
		domainerror.ErrCodeInviteExpired,
		domainerror.ErrCodeCannotInviteSelf:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
