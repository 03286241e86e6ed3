// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueGroupInvitationEmail queues a group invitation email.
func (s *Service) QueueGroupInvitationEmail(ctx context.Context, input adapter.QueueGroupInvitationInput) error {
	subject := fmt.Sprintf("%s invited you to %s - Trip Planner", input.InviterName, input.GroupName)

	templateData := map[string]interface{}{
		"inviter_name":  input.InviterName,
		"inviter_email": input.InviterEmail,
		"group_name":    input.GroupName,
		"invite_url":    input.InviteURL,
		"expires_in":    input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateGroupInvitation,
		input.InviteEmail,
		"", // Recipient name unknown for invitations
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue group invitation email",
			err,
		)
	}

	return nil
}

// QueueScheduleChangedEmail queues a trip schedule-change warning email.
func (s *Service) QueueScheduleChangedEmail(ctx context.Context, input adapter.QueueScheduleChangedInput) error {
	subject := fmt.Sprintf("The dates of %s changed - Trip Planner", input.TripName)

	templateData := map[string]interface{}{
		"member_name":      input.MemberName,
		"trip_name":        input.TripName,
		"new_start_date":   input.NewStartDate,
		"new_end_date":     input.NewEndDate,
		"deleted_events":   input.DeletedEvents,
		"deleted_expenses": input.DeletedExpenses,
	}

	job := entity.NewEmailJob(
		entity.TemplateScheduleChanged,
		input.MemberEmail,
		input.MemberName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue schedule change email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
