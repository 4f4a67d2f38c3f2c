package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/email"
	"github.com/Braham27/churchflow-sub002/internal/mocks"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSender records recipients and bounces the ones it is told to.
type fakeSender struct {
	sent    []string
	bounces map[string]bool
}

func (f *fakeSender) Send(data email.EmailData, _, _ string) error {
	if f.bounces[data.To] {
		return errors.New("bounced")
	}
	f.sent = append(f.sent, data.To)
	return nil
}

func TestBroadcastGate(t *testing.T) {
	svc := service.NewCommunicationService(nil, nil, nil, audit.NoOpRecorder{})

	id := adminIdentity()
	id.Role = model.RoleVolunteer

	_, err := svc.Broadcast(context.Background(), id, service.BroadcastInput{
		Title: "Picnic",
		Body:  "Saturday at noon",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEmailMembersPagesThroughDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := adminIdentity()

	// A full first page means the loop must come back for the rest.
	page1 := make([]*model.Member, 200)
	for i := range page1 {
		page1[i] = &model.Member{
			ID:       uuid.New(),
			ChurchID: id.ChurchID,
			Email:    fmt.Sprintf("m%03d@example.com", i),
		}
	}
	page1[7].Email = "" // no address on file

	page2 := []*model.Member{
		{ID: uuid.New(), ChurchID: id.ChurchID, Email: "late1@example.com"},
		{ID: uuid.New(), ChurchID: id.ChurchID, Email: "bounce@example.com"},
		{ID: uuid.New(), ChurchID: id.ChurchID, Email: "late2@example.com"},
	}

	memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
	memberRepo.EXPECT().
		FindAllPaginated(gomock.Any(), id.Scope(), 0, 200).
		Return(page1, int64(203), nil)
	memberRepo.EXPECT().
		FindAllPaginated(gomock.Any(), id.Scope(), 200, 200).
		Return(page2, int64(203), nil)

	sender := &fakeSender{bounces: map[string]bool{"bounce@example.com": true}}
	recorder := &captureRecorder{}

	svc := service.NewCommunicationService(nil, memberRepo, sender, recorder)

	sent, err := svc.EmailMembers(context.Background(), id, service.EmailMembersInput{
		Subject: "Newsletter",
		Body:    "Hello church",
	})
	require.NoError(t, err)

	// 203 members, one without an address, one bounce.
	assert.Equal(t, 201, sent)
	assert.Len(t, sender.sent, 201)
	assert.Contains(t, sender.sent, "late2@example.com")

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, model.ActionSend, recorder.entries[0].Action)
	assert.Equal(t, 201, recorder.entries[0].Detail["sent"])
}
