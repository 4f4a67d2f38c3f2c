// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
	FindByChurch(ctx context.Context, churchID uuid.UUID) ([]*model.Membership, error)
	Create(ctx context.Context, m *model.Membership) error
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// FindByUser returns the user's single membership. The unique index on
// user_id makes First deterministic rather than first-row-wins.
func (r *MembershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", result.Error)
	}
	return &m, nil
}

func (r *MembershipRepository) FindByChurch(ctx context.Context, churchID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	result := r.db.WithContext(ctx).Where("church_id = ?", churchID).Find(&memberships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find church memberships: %w", result.Error)
	}
	return memberships, nil
}

func (r *MembershipRepository) Create(ctx context.Context, m *model.Membership) error {
	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("failed to create membership: %w", result.Error)
	}
	return nil
}
