package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/auth"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/mocks"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("registers and issues a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "pastor@example.com").
			Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				user.ID = uuid.New()
				return nil
			})

		svc := service.NewUserService(repo, hasher, tokens)

		out, err := svc.Signup(context.Background(), service.SignupInput{
			Email:     "pastor@example.com",
			FirstName: "Pat",
			Password:  "long enough password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.NotEqual(t, "long enough password", out.User.PasswordHash)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, out.User.ID.String(), claims.UserID)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "pastor@example.com").
			Return(&model.User{Email: "pastor@example.com"}, nil)

		svc := service.NewUserService(repo, hasher, tokens)

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:     "pastor@example.com",
			FirstName: "Pat",
			Password:  "long enough password",
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("short passwords never reach the repository", func(t *testing.T) {
		svc := service.NewUserService(nil, hasher, tokens)

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:     "pastor@example.com",
			FirstName: "Pat",
			Password:  "short",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	hashed, err := hasher.Hash("correct password")
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "pastor@example.com",
		PasswordHash: hashed,
		Status:       model.StatusActive,
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewUserService(repo, hasher, tokens)

		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewUserService(repo, hasher, tokens)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from a wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := service.NewUserService(repo, hasher, tokens)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
