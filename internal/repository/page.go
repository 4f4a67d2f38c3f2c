// internal/repository/page.go
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

type PageRepositoryIface interface {
	Create(ctx context.Context, page *model.WebPage) error
	FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.WebPage, error)
	FindAll(ctx context.Context, scope tenant.Scope) ([]*model.WebPage, error)
	SlugExists(ctx context.Context, scope tenant.Scope, slug string) (bool, error)
	Update(ctx context.Context, page *model.WebPage) error
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Create(ctx context.Context, page *model.WebPage) error {
	result := r.db.WithContext(ctx).Create(page)
	if result.Error != nil {
		// Untranslated so the slug allocator can see unique violations.
		return result.Error
	}
	return nil
}

func (r *PageRepository) FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.WebPage, error) {
	var page model.WebPage
	result := r.db.WithContext(ctx).Scopes(scope.Filter).First(&page, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find page: %w", result.Error)
	}
	return &page, nil
}

func (r *PageRepository) FindAll(ctx context.Context, scope tenant.Scope) ([]*model.WebPage, error) {
	var pages []*model.WebPage
	result := r.db.WithContext(ctx).Scopes(scope.Filter).Order("title").Find(&pages)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pages: %w", result.Error)
	}
	return pages, nil
}

// SlugExists checks the per-church page slug namespace.
func (r *PageRepository) SlugExists(ctx context.Context, scope tenant.Scope, slug string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.WebPage{}).Scopes(scope.Filter).
		Where("slug = ?", slug).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check page slug: %w", result.Error)
	}
	return count > 0, nil
}

func (r *PageRepository) Update(ctx context.Context, page *model.WebPage) error {
	result := r.db.WithContext(ctx).Save(page)
	if result.Error != nil {
		return fmt.Errorf("failed to update page: %w", result.Error)
	}
	return nil
}

func (r *PageRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(scope.Filter).Delete(&model.WebPage{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete page: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
