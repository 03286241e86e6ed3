// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trip-planner/backend/internal/application/usecase/auth"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/entrypoint/dto"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user management endpoints.
type UserController struct {
	updateProfileUseCase *auth.UpdateProfileUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	updateProfileUseCase *auth.UpdateProfileUseCase,
) *UserController {
	return &UserController{
		updateProfileUseCase: updateProfileUseCase,
	}
}

// UpdateProfile handles PUT /users/me requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	// Get user ID from auth context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	// Email notifications stay enabled unless the client sends false
	emailNotifications := true
	if req.EmailNotifications != nil {
		emailNotifications = *req.EmailNotifications
	}

	input := auth.UpdateProfileInput{
		UserID:             userID,
		Name:               req.Name,
		AvatarURL:          req.AvatarURL,
		EmailNotifications: emailNotifications,
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUpdateProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleUpdateProfileError handles profile update errors and returns appropriate HTTP responses.
func (c *UserController) handleUpdateProfileError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForUpdateProfileError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUpdateProfileError maps auth error codes to HTTP status codes for profile updates.
func (c *UserController) getStatusCodeForUpdateProfileError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
