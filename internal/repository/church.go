// internal/repository/church.go
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

type ChurchRepositoryIface interface {
	CreateWithOwner(ctx context.Context, church *model.Church, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Church, error)
	FindBySlug(ctx context.Context, slug string) (*model.Church, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, church *model.Church) error
}

type ChurchRepository struct {
	db *gorm.DB
}

func NewChurchRepository(db *gorm.DB) *ChurchRepository {
	return &ChurchRepository{db: db}
}

// CreateWithOwner creates the church, its owner membership, and the default
// General fund in one transaction. Partial onboarding is not a valid state.
func (r *ChurchRepository) CreateWithOwner(ctx context.Context, church *model.Church, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(church).Error; err != nil {
			return fmt.Errorf("creating church: %w", err)
		}

		owner := &model.Membership{
			ChurchID: church.ID,
			UserID:   ownerID,
			Role:     model.RoleOwner,
		}
		if err := tx.Create(owner).Error; err != nil {
			// The unique index on memberships.user_id can fire here when the
			// caller acquired a membership after the service pre-check. That
			// is not a slug collision, so it must not reach the slug
			// allocator as a raw unique violation.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyMember
			}
			return fmt.Errorf("creating owner membership: %w", err)
		}

		fund := &model.Fund{
			ChurchID:  church.ID,
			Name:      "General",
			IsDefault: true,
		}
		if err := tx.Create(fund).Error; err != nil {
			return fmt.Errorf("creating default fund: %w", err)
		}

		return nil
	})
}

func (r *ChurchRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Church, error) {
	var church model.Church
	result := r.db.WithContext(ctx).First(&church, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to find church: %w", result.Error)
	}
	return &church, nil
}

func (r *ChurchRepository) FindBySlug(ctx context.Context, slug string) (*model.Church, error) {
	var church model.Church
	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&church)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to find church by slug: %w", result.Error)
	}
	return &church, nil
}

// SlugExists checks the church slug namespace, which is global across all
// tenants. Only live rows reserve a slug.
func (r *ChurchRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Church{}).Where("slug = ?", slug).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check slug: %w", result.Error)
	}
	return count > 0, nil
}

func (r *ChurchRepository) Update(ctx context.Context, church *model.Church) error {
	result := r.db.WithContext(ctx).Save(church)
	if result.Error != nil {
		return fmt.Errorf("failed to update church: %w", result.Error)
	}
	return nil
}
