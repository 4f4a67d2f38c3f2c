package service_test

import (
	"context"
	"testing"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/mocks"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemberCreateEmailConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := adminIdentity()

	memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
	memberRepo.EXPECT().
		EmailExists(gomock.Any(), id.Scope(), "pat@example.com").
		Return(true, nil)

	svc := service.NewMemberService(memberRepo, audit.NoOpRecorder{})

	_, err := svc.Create(context.Background(), id, service.MemberInput{
		FirstName: "Pat",
		Email:     "pat@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMemberUpdateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := adminIdentity()
	memberID := uuid.New()

	existing := func() *model.Member {
		return &model.Member{
			ID:        memberID,
			ChurchID:  id.ChurchID,
			FirstName: "Pat",
			Email:     "pat@example.com",
		}
	}

	t.Run("changing to an address already on file is a conflict", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).Return(existing(), nil)
		memberRepo.EXPECT().
			EmailExists(gomock.Any(), id.Scope(), "sam@example.com").
			Return(true, nil)

		svc := service.NewMemberService(memberRepo, audit.NoOpRecorder{})

		_, err := svc.Update(context.Background(), id, memberID, service.MemberInput{
			FirstName: "Pat",
			Email:     "sam@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("keeping the same address skips the uniqueness check", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).Return(existing(), nil)
		memberRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewMemberService(memberRepo, audit.NoOpRecorder{})

		_, err := svc.Update(context.Background(), id, memberID, service.MemberInput{
			FirstName: "Patricia",
			Email:     "pat@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("own address in a different case is not a new address", func(t *testing.T) {
		// email is citext; a case change must not read as taken.
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).Return(existing(), nil)
		memberRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewMemberService(memberRepo, audit.NoOpRecorder{})

		_, err := svc.Update(context.Background(), id, memberID, service.MemberInput{
			FirstName: "Pat",
			Email:     "Pat@Example.COM",
		})
		require.NoError(t, err)
	})

	t.Run("clearing the address needs no check", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).Return(existing(), nil)
		memberRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewMemberService(memberRepo, audit.NoOpRecorder{})

		member, err := svc.Update(context.Background(), id, memberID, service.MemberInput{
			FirstName: "Pat",
		})
		require.NoError(t, err)
		assert.Empty(t, member.Email)
	})

	t.Run("constraint backstop surfaces as the same conflict", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).Return(existing(), nil)
		memberRepo.EXPECT().
			EmailExists(gomock.Any(), id.Scope(), "sam@example.com").
			Return(false, nil)
		memberRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(domain.ErrConflict)

		svc := service.NewMemberService(memberRepo, audit.NoOpRecorder{})

		_, err := svc.Update(context.Background(), id, memberID, service.MemberInput{
			FirstName: "Pat",
			Email:     "sam@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
