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
	"gorm.io/gorm"
)

func adminIdentity() tenant.Identity {
	return tenant.Identity{
		UserID:   uuid.New(),
		ChurchID: uuid.New(),
		Role:     model.RoleAdmin,
	}
}

func TestEventCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := adminIdentity()

	eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
	recorder := &captureRecorder{}

	eventRepo.EXPECT().
		CheckInCodeExists(gomock.Any(), id.Scope(), gomock.Any()).
		Return(false, nil)
	eventRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *model.Event) error {
			event.ID = uuid.New()
			return nil
		})

	svc := service.NewEventService(eventRepo, nil, recorder)

	event, err := svc.Create(context.Background(), id, service.EventInput{
		Title:    "Sunday Service",
		StartsAt: time.Now().UTC().Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, id.ChurchID, event.ChurchID)
	assert.Len(t, event.CheckInCode, 6)
	for _, r := range event.CheckInCode {
		assert.NotContains(t, "IO01", string(r), "check-in code %q contains an ambiguous character", event.CheckInCode)
	}

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, model.ActionCreate, recorder.entries[0].Action)
	assert.Equal(t, "event", recorder.entries[0].TargetType)
}

func TestEventCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := adminIdentity()
	eventID := uuid.New()
	memberID := uuid.New()

	event := &model.Event{ID: eventID, ChurchID: id.ChurchID, Title: "Sunday Service"}

	t.Run("adult check-in records attendance without a security code", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		recorder := &captureRecorder{}

		eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).Return(event, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).
			Return(&model.Member{ID: memberID, ChurchID: id.ChurchID}, nil)

		var captured *model.Attendance
		eventRepo.EXPECT().
			CreateAttendance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, att *model.Attendance) error {
				captured = att
				return nil
			})

		svc := service.NewEventService(eventRepo, memberRepo, recorder)

		att, err := svc.CheckIn(context.Background(), id, eventID, service.CheckInInput{MemberID: memberID})
		require.NoError(t, err)
		assert.Empty(t, att.SecurityCode)
		assert.Equal(t, id.UserID, att.CheckedInBy)

		require.NotNil(t, captured)
		assert.Equal(t, captured.ServiceDate, captured.ServiceDate.Truncate(24*time.Hour),
			"service date must be truncated to the day")

		require.Len(t, recorder.entries, 1)
		assert.Equal(t, "attendance", recorder.entries[0].TargetType)
	})

	t.Run("same-day repeat is a conflict", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).Return(event, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).
			Return(&model.Member{ID: memberID, ChurchID: id.ChurchID}, nil)
		eventRepo.EXPECT().
			CreateAttendance(gomock.Any(), gomock.Any()).
			Return(domain.ErrAlreadyCheckedIn)

		svc := service.NewEventService(eventRepo, memberRepo, audit.NoOpRecorder{})

		_, err := svc.CheckIn(context.Background(), id, eventID, service.CheckInInput{MemberID: memberID})
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	})

	t.Run("child check-in gets a pickup security code", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).Return(event, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).
			Return(&model.Member{ID: memberID, ChurchID: id.ChurchID, IsChild: true}, nil)
		eventRepo.EXPECT().
			SecurityCodeExists(gomock.Any(), eventID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		eventRepo.EXPECT().
			CreateAttendance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, att *model.Attendance) error {
				assert.Len(t, att.SecurityCode, 4, "code must be claimed by the insert itself")
				return nil
			})

		svc := service.NewEventService(eventRepo, memberRepo, audit.NoOpRecorder{})

		att, err := svc.CheckIn(context.Background(), id, eventID, service.CheckInInput{MemberID: memberID})
		require.NoError(t, err)
		assert.Len(t, att.SecurityCode, 4)
	})

	t.Run("child code that loses the insert race is redrawn", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).Return(event, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).
			Return(&model.Member{ID: memberID, ChurchID: id.ChurchID, IsChild: true}, nil)
		eventRepo.EXPECT().
			SecurityCodeExists(gomock.Any(), eventID, gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(2)

		var codes []string
		eventRepo.EXPECT().
			CreateAttendance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, att *model.Attendance) error {
				codes = append(codes, att.SecurityCode)
				if len(codes) == 1 {
					return gorm.ErrDuplicatedKey
				}
				return nil
			}).
			Times(2)

		svc := service.NewEventService(eventRepo, memberRepo, audit.NoOpRecorder{})

		att, err := svc.CheckIn(context.Background(), id, eventID, service.CheckInInput{MemberID: memberID})
		require.NoError(t, err)
		assert.Len(t, att.SecurityCode, 4)
		require.Len(t, codes, 2)
	})

	t.Run("repeat child check-in is a conflict, not a code collision", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).Return(event, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).
			Return(&model.Member{ID: memberID, ChurchID: id.ChurchID, IsChild: true}, nil)
		eventRepo.EXPECT().
			SecurityCodeExists(gomock.Any(), eventID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		eventRepo.EXPECT().
			CreateAttendance(gomock.Any(), gomock.Any()).
			Return(domain.ErrAlreadyCheckedIn)

		svc := service.NewEventService(eventRepo, memberRepo, audit.NoOpRecorder{})

		_, err := svc.CheckIn(context.Background(), id, eventID, service.CheckInInput{MemberID: memberID})
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	})

	t.Run("a member from another church reads as not found", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).Return(event, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).
			Return(nil, domain.ErrNotFound)

		svc := service.NewEventService(eventRepo, memberRepo, audit.NoOpRecorder{})

		_, err := svc.CheckIn(context.Background(), id, eventID, service.CheckInInput{MemberID: memberID})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("explicit service date is honored per day", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)

		eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).Return(event, nil)
		memberRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), memberID).
			Return(&model.Member{ID: memberID, ChurchID: id.ChurchID}, nil)

		when := time.Date(2026, 3, 8, 10, 30, 0, 0, time.UTC)
		eventRepo.EXPECT().
			CreateAttendance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, att *model.Attendance) error {
				assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), att.ServiceDate)
				return nil
			})

		svc := service.NewEventService(eventRepo, memberRepo, audit.NoOpRecorder{})

		_, err := svc.CheckIn(context.Background(), id, eventID, service.CheckInInput{
			MemberID:    memberID,
			ServiceDate: when,
		})
		require.NoError(t, err)
	})
}

func TestEventDeleteRecordsAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := adminIdentity()
	eventID := uuid.New()

	eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
	recorder := &captureRecorder{}

	eventRepo.EXPECT().FindByID(gomock.Any(), id.Scope(), eventID).
		Return(&model.Event{ID: eventID, ChurchID: id.ChurchID}, nil)
	eventRepo.EXPECT().Delete(gomock.Any(), id.Scope(), eventID).Return(nil)

	svc := service.NewEventService(eventRepo, nil, recorder)

	require.NoError(t, svc.Delete(context.Background(), id, eventID))
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, model.ActionDelete, recorder.entries[0].Action)
	assert.Equal(t, eventID, recorder.entries[0].TargetID)
}
