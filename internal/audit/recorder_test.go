package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/mocks"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDBRecorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	churchID := uuid.New()
	actorID := uuid.New()
	targetID := uuid.New()

	t.Run("writes a complete entry", func(t *testing.T) {
		logs := mocks.NewMockActivityLogRepositoryIface(ctrl)

		var captured *model.ActivityLogEntry
		logs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *model.ActivityLogEntry) error {
				captured = entry
				return nil
			})

		audit.NewDBRecorder(logs).Record(context.Background(), churchID, actorID,
			model.ActionDelete, "member", targetID, model.Details{"reason": "moved away"})

		require.NotNil(t, captured)
		assert.Equal(t, churchID, captured.ChurchID)
		assert.Equal(t, actorID, captured.ActorID)
		assert.Equal(t, model.ActionDelete, captured.Action)
		assert.Equal(t, "member", captured.TargetType)
		assert.Equal(t, targetID, captured.TargetID)
		assert.Equal(t, "moved away", captured.Detail["reason"])
	})

	t.Run("a failed write does not panic or propagate", func(t *testing.T) {
		logs := mocks.NewMockActivityLogRepositoryIface(ctrl)
		logs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		// Record has no error return; the mutation it trails already stands.
		audit.NewDBRecorder(logs).Record(context.Background(), churchID, actorID,
			model.ActionCreate, "event", targetID, nil)
	})
}
