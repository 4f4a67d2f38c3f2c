// internal/repository/notification.go
package repository

import (
	"context"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"gorm.io/gorm"
)

type NotificationRepositoryIface interface {
	Create(ctx context.Context, n *model.Notification) error
	FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Notification, int64, error)
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	result := r.db.WithContext(ctx).Create(n)
	if result.Error != nil {
		return fmt.Errorf("failed to create notification: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Notification, int64, error) {
	var notifications []*model.Notification
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Notification{}).Scopes(scope.Filter).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&notifications)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated notifications: %w", result.Error)
	}

	return notifications, count, nil
}
