// internal/repository/group.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/identifier"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupRepositoryIface interface {
	Create(ctx context.Context, group *model.Group) error
	FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Group, error)
	FindAll(ctx context.Context, scope tenant.Scope) ([]*model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error

	AddMember(ctx context.Context, gm *model.GroupMember) error
	RemoveMember(ctx context.Context, scope tenant.Scope, groupID, memberID uuid.UUID) error
	FindMembers(ctx context.Context, scope tenant.Scope, groupID uuid.UUID) ([]*model.GroupMember, error)
}

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	result := r.db.WithContext(ctx).Create(group)
	if result.Error != nil {
		return fmt.Errorf("failed to create group: %w", result.Error)
	}
	return nil
}

func (r *GroupRepository) FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Group, error) {
	var group model.Group
	result := r.db.WithContext(ctx).Scopes(scope.Filter).First(&group, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", result.Error)
	}
	return &group, nil
}

func (r *GroupRepository) FindAll(ctx context.Context, scope tenant.Scope) ([]*model.Group, error) {
	var groups []*model.Group
	result := r.db.WithContext(ctx).Scopes(scope.Filter).Order("name").Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find groups: %w", result.Error)
	}
	return groups, nil
}

func (r *GroupRepository) Update(ctx context.Context, group *model.Group) error {
	result := r.db.WithContext(ctx).Save(group)
	if result.Error != nil {
		return fmt.Errorf("failed to update group: %w", result.Error)
	}
	return nil
}

// Delete removes group members first, then the group, in one transaction so
// an interrupted delete leaves no orphaned rows.
func (r *GroupRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scope.Filter(tx).Where("group_id = ?", id).Delete(&model.GroupMember{}).Error; err != nil {
			return fmt.Errorf("deleting group members: %w", err)
		}

		if err := scope.Filter(tx).Delete(&model.Group{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting group: %w", err)
		}

		return nil
	})
}

func (r *GroupRepository) AddMember(ctx context.Context, gm *model.GroupMember) error {
	result := r.db.WithContext(ctx).Create(gm)
	if result.Error != nil {
		if identifier.IsUniqueViolation(result.Error) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to add group member: %w", result.Error)
	}
	return nil
}

func (r *GroupRepository) RemoveMember(ctx context.Context, scope tenant.Scope, groupID, memberID uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Delete(&model.GroupMember{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove group member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GroupRepository) FindMembers(ctx context.Context, scope tenant.Scope, groupID uuid.UUID) ([]*model.GroupMember, error) {
	var members []*model.GroupMember
	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Where("group_id = ?", groupID).Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find group members: %w", result.Error)
	}
	return members, nil
}
