// internal/service/church.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/email"
	"github.com/Braham27/churchflow-sub002/internal/email/mailer"
	"github.com/Braham27/churchflow-sub002/internal/identifier"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const invitationTTL = 7 * 24 * time.Hour

type ChurchService struct {
	repo         repository.ChurchRepositoryIface
	memberships  repository.MembershipRepositoryIface
	invitations  repository.InvitationRepositoryIface
	emailService *email.Service
	recorder     audit.Recorder
	baseURL      string
	validate     *validator.Validate
}

func NewChurchService(
	repo repository.ChurchRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	invitations repository.InvitationRepositoryIface,
	emailService *email.Service,
	recorder audit.Recorder,
	baseURL string,
) *ChurchService {
	return &ChurchService{
		repo:         repo,
		memberships:  memberships,
		invitations:  invitations,
		emailService: emailService,
		recorder:     recorder,
		baseURL:      baseURL,
		validate:     validator.New(),
	}
}

type CreateChurchInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Timezone string `json:"timezone"`
}

// Create onboards a new church. The slug is derived from the name and
// allocated globally; church, owner membership, and default fund are created
// in one transaction inside the allocator's insert attempt, so a slug race
// re-runs the whole group.
func (s *ChurchService) Create(ctx context.Context, userID uuid.UUID, input CreateChurchInput) (*model.Church, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.memberships.FindByUser(ctx, userID); err == nil {
		return nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	church := &model.Church{
		Name:        input.Name,
		Tier:        model.TierTrial,
		CreatedByID: userID,
	}
	if input.Timezone != "" {
		church.Settings.Timezone = input.Timezone
	}
	expiry := time.Now().UTC().Add(30 * 24 * time.Hour)
	church.TrialExpiresAt = &expiry

	ns := identifier.NamespaceFunc(s.repo.SlugExists)
	slug, err := identifier.Slug(ctx, input.Name, ns, func(ctx context.Context, candidate string) error {
		church.Slug = candidate
		return s.repo.CreateWithOwner(ctx, church, userID)
	})
	if err != nil {
		return nil, err
	}
	church.Slug = slug

	s.recorder.Record(ctx, church.ID, userID, model.ActionCreate, "church", church.ID, model.Details{
		"name": church.Name,
		"slug": church.Slug,
	})

	return church, nil
}

// Get returns the caller's church.
func (s *ChurchService) Get(ctx context.Context, id tenant.Identity) (*model.Church, error) {
	return s.repo.FindByID(ctx, id.ChurchID)
}

type UpdateSettingsInput struct {
	Name            *string `json:"name"`
	Timezone        *string `json:"timezone"`
	PublicWebsite   *bool   `json:"public_website"`
	DonationsModule *bool   `json:"donations_module"`
	CheckInModule   *bool   `json:"check_in_module"`
}

// UpdateSettings mutates church settings. Gated: owner/admin only.
func (s *ChurchService) UpdateSettings(ctx context.Context, id tenant.Identity, input UpdateSettingsInput) (*model.Church, error) {
	if err := tenant.Authorize(id, tenant.ActionUpdateSettings); err != nil {
		return nil, err
	}

	church, err := s.repo.FindByID(ctx, id.ChurchID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		church.Name = *input.Name
	}
	if input.Timezone != nil {
		church.Settings.Timezone = *input.Timezone
	}
	if input.PublicWebsite != nil {
		church.Settings.PublicWebsite = *input.PublicWebsite
	}
	if input.DonationsModule != nil {
		church.Settings.DonationsModule = *input.DonationsModule
	}
	if input.CheckInModule != nil {
		church.Settings.CheckInModule = *input.CheckInModule
	}

	if err := s.repo.Update(ctx, church); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, church.ID, id.UserID, model.ActionUpdate, "church", church.ID, model.Details{
		"fields": "settings",
	})

	return church, nil
}

type InviteInput struct {
	Email string     `json:"email" validate:"required,email"`
	Role  model.Role `json:"role" validate:"required"`
}

// Invite sends a church membership invitation. Gated: owner/admin only.
func (s *ChurchService) Invite(ctx context.Context, id tenant.Identity, input InviteInput) (*model.Invitation, error) {
	if err := tenant.Authorize(id, tenant.ActionInviteMember); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if input.Role == model.RoleOwner {
		return nil, fmt.Errorf("%w: cannot invite an owner", domain.ErrInvalidInput)
	}

	inv := &model.Invitation{
		ChurchID:  id.ChurchID,
		Email:     input.Email,
		Role:      input.Role,
		Token:     generateInviteToken(),
		InvitedBy: id.UserID,
		ExpiresAt: time.Now().UTC().Add(invitationTTL),
	}

	if err := s.invitations.Create(ctx, inv); err != nil {
		return nil, err
	}

	church, err := s.repo.FindByID(ctx, id.ChurchID)
	if err != nil {
		return nil, err
	}

	inviteLink := fmt.Sprintf("%s/api/invitations/accept?token=%s", s.baseURL, inv.Token)
	if s.emailService != nil {
		if err := mailer.SendInvitationEmail(s.emailService, inv.Email, church.Name, inviteLink); err != nil {
			return nil, fmt.Errorf("sending invitation email: %w", err)
		}
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "invitation", inv.ID, model.Details{
		"email": inv.Email,
		"role":  string(inv.Role),
	})

	return inv, nil
}

// AcceptInvitation turns a pending invitation into a membership for the
// authenticated principal.
func (s *ChurchService) AcceptInvitation(ctx context.Context, userID uuid.UUID, token string) (*model.Membership, error) {
	inv, err := s.invitations.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv.AcceptedAt != nil {
		return nil, domain.ErrConflict
	}
	if time.Now().UTC().After(inv.ExpiresAt) {
		return nil, domain.ErrInvitationExpired
	}

	m := &model.Membership{
		ChurchID: inv.ChurchID,
		UserID:   userID,
		Role:     inv.Role,
	}
	if err := s.invitations.Accept(ctx, inv, m); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, inv.ChurchID, userID, model.ActionCreate, "membership", m.ID, model.Details{
		"role": string(m.Role),
	})

	return m, nil
}

func generateInviteToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(err) // This should never happen
	}
	return hex.EncodeToString(bytes)
}
