package tenant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/mocks"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	churchID := uuid.New()

	t.Run("maps membership to identity", func(t *testing.T) {
		memberships := mocks.NewMockMembershipSource(ctrl)
		memberships.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(&model.Membership{
				ChurchID: churchID,
				UserID:   userID,
				Role:     model.RoleAdmin,
			}, nil)

		id, err := tenant.NewResolver(memberships).Resolve(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, id.UserID)
		assert.Equal(t, churchID, id.ChurchID)
		assert.Equal(t, model.RoleAdmin, id.Role)
		assert.Equal(t, churchID, id.Scope().ChurchID)
	})

	t.Run("no membership means no tenant", func(t *testing.T) {
		memberships := mocks.NewMockMembershipSource(ctrl)
		memberships.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(nil, domain.ErrNotFound)

		_, err := tenant.NewResolver(memberships).Resolve(context.Background(), userID)
		assert.ErrorIs(t, err, domain.ErrNoTenant)
	})

	t.Run("lookup failures are not mistaken for missing tenants", func(t *testing.T) {
		memberships := mocks.NewMockMembershipSource(ctrl)
		memberships.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(nil, errors.New("connection refused"))

		_, err := tenant.NewResolver(memberships).Resolve(context.Background(), userID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNoTenant)
	})
}

func TestIdentityContext(t *testing.T) {
	id := tenant.Identity{
		UserID:   uuid.New(),
		ChurchID: uuid.New(),
		Role:     model.RoleOwner,
	}

	ctx := tenant.WithIdentity(context.Background(), id)
	got, err := tenant.IdentityFrom(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = tenant.IdentityFrom(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
