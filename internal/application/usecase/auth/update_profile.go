// Package auth contains authentication-related use cases.
package auth

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

// UpdateProfileInput represents the input for profile updates.
type UpdateProfileInput struct {
	UserID             uuid.UUID
	Name               string
	AvatarURL          string
	EmailNotifications bool
}

// UpdateProfileOutput represents the output of profile updates.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile updates: display name, avatar, and
// the email notification preference.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	user.AvatarURL = input.AvatarURL
	user.EmailNotifications = input.EmailNotifications
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
