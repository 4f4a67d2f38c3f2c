// internal/repository/activity_log.go
package repository

import (
	"context"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"gorm.io/gorm"
)

type ActivityLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.ActivityLogEntry) error
	FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.ActivityLogEntry, int64, error)
}

// ActivityLogRepository is append-only; there are deliberately no update or
// delete methods.
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, entry *model.ActivityLogEntry) error {
	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity log entry: %w", result.Error)
	}
	return nil
}

func (r *ActivityLogRepository) FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.ActivityLogEntry, int64, error) {
	var entries []*model.ActivityLogEntry
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.ActivityLogEntry{}).Scopes(scope.Filter).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity log entries: %w", err)
	}

	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find activity log entries: %w", result.Error)
	}

	return entries, count, nil
}
