// internal/repository/member.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepositoryIface interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Member, error)
	FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Member, int64, error)
	EmailExists(ctx context.Context, scope tenant.Scope, email string) (bool, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	result := r.db.WithContext(ctx).Create(member)
	if result.Error != nil {
		// The partial unique index on (church_id, email) backstops the
		// service-level existence check.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: member email already in use", domain.ErrConflict)
		}
		return fmt.Errorf("failed to create member: %w", result.Error)
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	result := r.db.WithContext(ctx).Scopes(scope.Filter).First(&member, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", result.Error)
	}
	return &member, nil
}

func (r *MemberRepository) FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Member, int64, error) {
	var members []*model.Member
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Member{}).Scopes(scope.Filter).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Order("last_name, first_name").
		Offset(offset).Limit(limit).Find(&members)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated members: %w", result.Error)
	}

	return members, count, nil
}

func (r *MemberRepository) EmailExists(ctx context.Context, scope tenant.Scope, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Member{}).Scopes(scope.Filter).
		Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check member email: %w", result.Error)
	}
	return count > 0, nil
}

func (r *MemberRepository) Update(ctx context.Context, member *model.Member) error {
	result := r.db.WithContext(ctx).Save(member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: member email already in use", domain.ErrConflict)
		}
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	return nil
}

// Delete removes the member and its dependent rows, dependents first, in one
// transaction.
func (r *MemberRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scope.Filter(tx).Where("member_id = ?", id).Delete(&model.GroupMember{}).Error; err != nil {
			return fmt.Errorf("deleting group memberships: %w", err)
		}

		if err := scope.Filter(tx).Where("member_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
			return fmt.Errorf("deleting attendance: %w", err)
		}

		if err := scope.Filter(tx).Delete(&model.Member{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting member: %w", err)
		}

		return nil
	})
}
