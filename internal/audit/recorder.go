// internal/audit/recorder.go
package audit

import (
	"context"
	"log/slog"

	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/google/uuid"
)

// Recorder appends audit entries for mutating operations.
type Recorder interface {
	// Record appends an entry. It runs synchronously before the HTTP
	// response is written; callers do not consume a return value.
	Record(ctx context.Context, churchID, actorID uuid.UUID, action model.ActionKind, targetType string, targetID uuid.UUID, detail model.Details)
}

// DBRecorder writes activity entries through the activity log repository.
// The triggering mutation has already committed by the time Record runs, so
// a failed write is logged loudly but never rolls the mutation back.
type DBRecorder struct {
	logs repository.ActivityLogRepositoryIface
}

func NewDBRecorder(logs repository.ActivityLogRepositoryIface) *DBRecorder {
	return &DBRecorder{logs: logs}
}

func (r *DBRecorder) Record(ctx context.Context, churchID, actorID uuid.UUID, action model.ActionKind, targetType string, targetID uuid.UUID, detail model.Details) {
	entry := &model.ActivityLogEntry{
		ChurchID:   churchID,
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
	}

	if err := r.logs.Create(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "audit entry lost",
			"error", err,
			"church_id", churchID,
			"actor_id", actorID,
			"action", action,
			"target_type", targetType,
			"target_id", targetID,
		)
	}
}

// NoOpRecorder discards entries. Used in tests.
type NoOpRecorder struct{}

func (NoOpRecorder) Record(context.Context, uuid.UUID, uuid.UUID, model.ActionKind, string, uuid.UUID, model.Details) {
}
