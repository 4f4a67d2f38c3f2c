package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/middleware"
	"github.com/Braham27/churchflow-sub002/internal/mocks"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTenantMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	churchID := uuid.New()

	authenticated := func(r *http.Request) *http.Request {
		ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
		return r.WithContext(ctx)
	}

	t.Run("threads identity into the request context", func(t *testing.T) {
		memberships := mocks.NewMockMembershipSource(ctrl)
		memberships.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(&model.Membership{UserID: userID, ChurchID: churchID, Role: model.RoleStaff}, nil)

		var got tenant.Identity
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := tenant.IdentityFrom(r.Context())
			require.NoError(t, err)
			got = id
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r := authenticated(httptest.NewRequest(http.MethodGet, "/api/members", nil))
		middleware.TenantMiddleware(tenant.NewResolver(memberships))(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, churchID, got.ChurchID)
		assert.Equal(t, model.RoleStaff, got.Role)
	})

	t.Run("no membership routes to onboarding", func(t *testing.T) {
		memberships := mocks.NewMockMembershipSource(ctrl)
		memberships.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(nil, domain.ErrNotFound)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a tenant")
		})

		w := httptest.NewRecorder()
		r := authenticated(httptest.NewRequest(http.MethodGet, "/api/members", nil))
		middleware.TenantMiddleware(tenant.NewResolver(memberships))(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "onboarding_required")
	})

	t.Run("missing principal is unauthorized", func(t *testing.T) {
		memberships := mocks.NewMockMembershipSource(ctrl)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run unauthenticated")
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/members", nil)
		middleware.TenantMiddleware(tenant.NewResolver(memberships))(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
