// internal/repository/event.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/identifier"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepositoryIface interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Event, error)
	FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Event, int64, error)
	CheckInCodeExists(ctx context.Context, scope tenant.Scope, code string) (bool, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error

	CreateAttendance(ctx context.Context, att *model.Attendance) error
	SecurityCodeExists(ctx context.Context, eventID uuid.UUID, serviceDate time.Time, code string) (bool, error)
	FindAttendance(ctx context.Context, scope tenant.Scope, eventID uuid.UUID, serviceDate time.Time) ([]*model.Attendance, error)
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	result := r.db.WithContext(ctx).Create(event)
	if result.Error != nil {
		// Surfaced untranslated so the code allocator can see the
		// unique violation and redraw.
		return result.Error
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	result := r.db.WithContext(ctx).Scopes(scope.Filter).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", result.Error)
	}
	return &event, nil
}

func (r *EventRepository) FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Event, int64, error) {
	var events []*model.Event
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Event{}).Scopes(scope.Filter).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Order("starts_at DESC").
		Offset(offset).Limit(limit).Find(&events)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated events: %w", result.Error)
	}

	return events, count, nil
}

func (r *EventRepository) CheckInCodeExists(ctx context.Context, scope tenant.Scope, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Event{}).Scopes(scope.Filter).
		Where("check_in_code = ?", code).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check event code: %w", result.Error)
	}
	return count > 0, nil
}

func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	result := r.db.WithContext(ctx).Save(event)
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	return nil
}

// Delete removes the event with its registrations and attendance in one
// transaction, dependents first.
func (r *EventRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scope.Filter(tx).Where("event_id = ?", id).Delete(&model.Registration{}).Error; err != nil {
			return fmt.Errorf("deleting registrations: %w", err)
		}

		if err := scope.Filter(tx).Where("event_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
			return fmt.Errorf("deleting attendance: %w", err)
		}

		if err := scope.Filter(tx).Delete(&model.Event{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting event: %w", err)
		}

		return nil
	})
}

// CreateAttendance inserts a check-in row. Two unique indexes guard the
// table and translation drops the constraint name, so on a violation the
// row is re-read to tell them apart: an attendance already on file for the
// member maps to domain.ErrAlreadyCheckedIn, anything else was a security
// code collision and comes back raw so the code allocator redraws.
func (r *EventRepository) CreateAttendance(ctx context.Context, att *model.Attendance) error {
	result := r.db.WithContext(ctx).Create(att)
	if result.Error == nil {
		return nil
	}
	if !identifier.IsUniqueViolation(result.Error) {
		return fmt.Errorf("failed to create attendance: %w", result.Error)
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("event_id = ? AND member_id = ? AND service_date = ?", att.EventID, att.MemberID, att.ServiceDate).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to create attendance: %w", result.Error)
	}
	if count > 0 {
		return domain.ErrAlreadyCheckedIn
	}
	return result.Error
}

func (r *EventRepository) SecurityCodeExists(ctx context.Context, eventID uuid.UUID, serviceDate time.Time, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("event_id = ? AND service_date = ? AND security_code = ?", eventID, serviceDate, code).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check security code: %w", result.Error)
	}
	return count > 0, nil
}

func (r *EventRepository) FindAttendance(ctx context.Context, scope tenant.Scope, eventID uuid.UUID, serviceDate time.Time) ([]*model.Attendance, error) {
	var rows []*model.Attendance
	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Where("event_id = ? AND service_date = ?", eventID, serviceDate).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find attendance: %w", result.Error)
	}
	return rows, nil
}
