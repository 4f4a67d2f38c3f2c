package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/mocks"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// captureRecorder retains recorded audit entries for assertions.
type captureRecorder struct {
	entries []capturedEntry
}

type capturedEntry struct {
	ChurchID   uuid.UUID
	ActorID    uuid.UUID
	Action     model.ActionKind
	TargetType string
	TargetID   uuid.UUID
	Detail     model.Details
}

func (c *captureRecorder) Record(_ context.Context, churchID, actorID uuid.UUID, action model.ActionKind, targetType string, targetID uuid.UUID, detail model.Details) {
	c.entries = append(c.entries, capturedEntry{
		ChurchID:   churchID,
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
	})
}

var _ audit.Recorder = (*captureRecorder)(nil)

func TestChurchCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("onboards church with derived slug and audit entry", func(t *testing.T) {
		churchRepo := mocks.NewMockChurchRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)
		recorder := &captureRecorder{}

		membershipRepo.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(nil, domain.ErrNotFound)

		churchRepo.EXPECT().
			SlugExists(gomock.Any(), "grace-community-church").
			Return(false, nil)

		churchRepo.EXPECT().
			CreateWithOwner(gomock.Any(), gomock.Any(), userID).
			DoAndReturn(func(_ context.Context, church *model.Church, _ uuid.UUID) error {
				church.ID = uuid.New()
				return nil
			})

		svc := service.NewChurchService(churchRepo, membershipRepo, nil, nil, recorder, "http://localhost:8080")

		church, err := svc.Create(context.Background(), userID, service.CreateChurchInput{
			Name:     "Grace Community Church",
			Timezone: "America/Chicago",
		})

		require.NoError(t, err)
		assert.Equal(t, "grace-community-church", church.Slug)
		assert.Equal(t, model.TierTrial, church.Tier)
		assert.Equal(t, "America/Chicago", church.Settings.Timezone)
		require.NotNil(t, church.TrialExpiresAt)
		assert.True(t, church.TrialExpiresAt.After(time.Now().UTC()))

		require.Len(t, recorder.entries, 1)
		entry := recorder.entries[0]
		assert.Equal(t, church.ID, entry.ChurchID)
		assert.Equal(t, userID, entry.ActorID)
		assert.Equal(t, model.ActionCreate, entry.Action)
		assert.Equal(t, "church", entry.TargetType)
		assert.Equal(t, "grace-community-church", entry.Detail["slug"])
	})

	t.Run("taken slug gets the next suffix", func(t *testing.T) {
		churchRepo := mocks.NewMockChurchRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		membershipRepo.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(nil, domain.ErrNotFound)

		churchRepo.EXPECT().SlugExists(gomock.Any(), "grace").Return(true, nil)
		churchRepo.EXPECT().SlugExists(gomock.Any(), "grace-1").Return(true, nil)
		churchRepo.EXPECT().SlugExists(gomock.Any(), "grace-2").Return(false, nil)
		churchRepo.EXPECT().
			CreateWithOwner(gomock.Any(), gomock.Any(), userID).
			Return(nil)

		svc := service.NewChurchService(churchRepo, membershipRepo, nil, nil, audit.NoOpRecorder{}, "")

		church, err := svc.Create(context.Background(), userID, service.CreateChurchInput{Name: "Grace"})
		require.NoError(t, err)
		assert.Equal(t, "grace-2", church.Slug)
	})

	t.Run("membership race inside the insert is not retried as a slug collision", func(t *testing.T) {
		churchRepo := mocks.NewMockChurchRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		membershipRepo.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(nil, domain.ErrNotFound)

		churchRepo.EXPECT().SlugExists(gomock.Any(), "grace").Return(false, nil)
		// The caller acquired a membership between the pre-check and the
		// insert; the translated conflict must surface once, not loop.
		churchRepo.EXPECT().
			CreateWithOwner(gomock.Any(), gomock.Any(), userID).
			Return(domain.ErrAlreadyMember)

		svc := service.NewChurchService(churchRepo, membershipRepo, nil, nil, audit.NoOpRecorder{}, "")

		_, err := svc.Create(context.Background(), userID, service.CreateChurchInput{Name: "Grace"})
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("a second church for the same user is refused", func(t *testing.T) {
		churchRepo := mocks.NewMockChurchRepositoryIface(ctrl)
		membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

		membershipRepo.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(&model.Membership{UserID: userID, ChurchID: uuid.New()}, nil)

		svc := service.NewChurchService(churchRepo, membershipRepo, nil, nil, audit.NoOpRecorder{}, "")

		_, err := svc.Create(context.Background(), userID, service.CreateChurchInput{Name: "Second Church"})
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("rejects invalid input before touching the database", func(t *testing.T) {
		svc := service.NewChurchService(nil, mocks.NewMockMembershipRepositoryIface(ctrl), nil, nil, audit.NoOpRecorder{}, "")

		_, err := svc.Create(context.Background(), userID, service.CreateChurchInput{Name: ""})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestChurchUpdateSettingsGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("volunteer is refused without repository access", func(t *testing.T) {
		svc := service.NewChurchService(nil, nil, nil, nil, audit.NoOpRecorder{}, "")

		id := tenant.Identity{UserID: uuid.New(), ChurchID: uuid.New(), Role: model.RoleVolunteer}
		_, err := svc.UpdateSettings(context.Background(), id, service.UpdateSettingsInput{})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin updates settings", func(t *testing.T) {
		churchRepo := mocks.NewMockChurchRepositoryIface(ctrl)
		recorder := &captureRecorder{}

		churchID := uuid.New()
		churchRepo.EXPECT().
			FindByID(gomock.Any(), churchID).
			Return(&model.Church{ID: churchID, Name: "Grace"}, nil)
		churchRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewChurchService(churchRepo, nil, nil, nil, recorder, "")

		id := tenant.Identity{UserID: uuid.New(), ChurchID: churchID, Role: model.RoleAdmin}
		tz := "Europe/Berlin"
		church, err := svc.UpdateSettings(context.Background(), id, service.UpdateSettingsInput{Timezone: &tz})
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", church.Settings.Timezone)
		require.Len(t, recorder.entries, 1)
		assert.Equal(t, model.ActionUpdate, recorder.entries[0].Action)
	})
}

func TestChurchInviteGate(t *testing.T) {
	svc := service.NewChurchService(nil, nil, nil, nil, audit.NoOpRecorder{}, "")

	id := tenant.Identity{UserID: uuid.New(), ChurchID: uuid.New(), Role: model.RoleStaff}
	_, err := svc.Invite(context.Background(), id, service.InviteInput{
		Email: "new@example.com",
		Role:  model.RoleVolunteer,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAcceptInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	churchID := uuid.New()

	t.Run("creates membership and marks accepted in one call", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		inv := &model.Invitation{
			ID:        uuid.New(),
			ChurchID:  churchID,
			Email:     "new@example.com",
			Role:      model.RoleStaff,
			Token:     "tok",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}

		invitationRepo.EXPECT().FindByToken(gomock.Any(), "tok").Return(inv, nil)
		invitationRepo.EXPECT().
			Accept(gomock.Any(), inv, gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.Invitation, m *model.Membership) error {
				assert.Equal(t, churchID, m.ChurchID)
				assert.Equal(t, userID, m.UserID)
				assert.Equal(t, model.RoleStaff, m.Role)
				now := time.Now().UTC()
				inv.AcceptedAt = &now
				return nil
			})

		svc := service.NewChurchService(nil, nil, invitationRepo, nil, audit.NoOpRecorder{}, "")

		m, err := svc.AcceptInvitation(context.Background(), userID, "tok")
		require.NoError(t, err)
		assert.Equal(t, model.RoleStaff, m.Role)
	})

	t.Run("already accepted is a conflict", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		accepted := time.Now().UTC().Add(-time.Hour)
		invitationRepo.EXPECT().FindByToken(gomock.Any(), "tok").Return(&model.Invitation{
			AcceptedAt: &accepted,
			ExpiresAt:  time.Now().UTC().Add(time.Hour),
		}, nil)

		svc := service.NewChurchService(nil, nil, invitationRepo, nil, audit.NoOpRecorder{}, "")

		_, err := svc.AcceptInvitation(context.Background(), userID, "tok")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("expired invitation is refused", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		invitationRepo.EXPECT().FindByToken(gomock.Any(), "tok").Return(&model.Invitation{
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}, nil)

		svc := service.NewChurchService(nil, nil, invitationRepo, nil, audit.NoOpRecorder{}, "")

		_, err := svc.AcceptInvitation(context.Background(), userID, "tok")
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
	})

	t.Run("membership in another church surfaces as a conflict", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		invitationRepo.EXPECT().FindByToken(gomock.Any(), "tok").Return(&model.Invitation{
			ChurchID:  churchID,
			Role:      model.RoleStaff,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}, nil)
		invitationRepo.EXPECT().
			Accept(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrAlreadyMember)

		svc := service.NewChurchService(nil, nil, invitationRepo, nil, audit.NoOpRecorder{}, "")

		_, err := svc.AcceptInvitation(context.Background(), userID, "tok")
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})
}
