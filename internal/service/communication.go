// internal/service/communication.go
package service

import (
	"context"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/email/mailer"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-playground/validator/v10"
)

// emailPageSize bounds how many directory rows an email blast loads at once.
const emailPageSize = 200

type CommunicationService struct {
	notifications repository.NotificationRepositoryIface
	members       repository.MemberRepositoryIface
	emailService  mailer.Sender
	recorder      audit.Recorder
	validate      *validator.Validate
}

func NewCommunicationService(
	notifications repository.NotificationRepositoryIface,
	members repository.MemberRepositoryIface,
	emailService mailer.Sender,
	recorder audit.Recorder,
) *CommunicationService {
	return &CommunicationService{
		notifications: notifications,
		members:       members,
		emailService:  emailService,
		recorder:      recorder,
		validate:      validator.New(),
	}
}

type BroadcastInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Broadcast persists a push notification for the whole church.
// Gated: owner/admin only.
func (s *CommunicationService) Broadcast(ctx context.Context, id tenant.Identity, input BroadcastInput) (*model.Notification, error) {
	if err := tenant.Authorize(id, tenant.ActionSendBroadcast); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	n := &model.Notification{
		ChurchID: id.ChurchID,
		Title:    input.Title,
		Body:     input.Body,
		SentBy:   id.UserID,
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionSend, "notification", n.ID, model.Details{
		"title": n.Title,
	})

	return n, nil
}

func (s *CommunicationService) ListNotifications(ctx context.Context, id tenant.Identity, offset, limit int) ([]*model.Notification, int64, error) {
	return s.notifications.FindAllPaginated(ctx, id.Scope(), offset, limit)
}

type EmailMembersInput struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// EmailMembers sends a plain announcement email to every directory member
// with an address on file. Delivery failures for individual recipients are
// counted, not fatal.
func (s *CommunicationService) EmailMembers(ctx context.Context, id tenant.Identity, input EmailMembersInput) (int, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if s.emailService == nil {
		return 0, fmt.Errorf("%w: email delivery not configured", domain.ErrInternal)
	}

	sent := 0
	for offset := 0; ; offset += emailPageSize {
		members, _, err := s.members.FindAllPaginated(ctx, id.Scope(), offset, emailPageSize)
		if err != nil {
			return 0, err
		}

		for _, m := range members {
			if m.Email == "" {
				continue
			}
			if err := mailer.SendAnnouncementEmail(s.emailService, m.Email, input.Subject, input.Body); err != nil {
				continue
			}
			sent++
		}

		if len(members) < emailPageSize {
			break
		}
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionSend, "communication", id.ChurchID, model.Details{
		"subject": input.Subject,
		"sent":    sent,
	})

	return sent, nil
}
