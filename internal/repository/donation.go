// internal/repository/donation.go
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

type FundRepositoryIface interface {
	Create(ctx context.Context, fund *model.Fund) error
	FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Fund, error)
	FindAll(ctx context.Context, scope tenant.Scope) ([]*model.Fund, error)
}

type DonationRepositoryIface interface {
	CreateWithFundTotal(ctx context.Context, donation *model.Donation) error
	FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Donation, int64, error)
}

type FundRepository struct {
	db *gorm.DB
}

func NewFundRepository(db *gorm.DB) *FundRepository {
	return &FundRepository{db: db}
}

func (r *FundRepository) Create(ctx context.Context, fund *model.Fund) error {
	result := r.db.WithContext(ctx).Create(fund)
	if result.Error != nil {
		return fmt.Errorf("failed to create fund: %w", result.Error)
	}
	return nil
}

func (r *FundRepository) FindByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*model.Fund, error) {
	var fund model.Fund
	result := r.db.WithContext(ctx).Scopes(scope.Filter).First(&fund, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fund: %w", result.Error)
	}
	return &fund, nil
}

func (r *FundRepository) FindAll(ctx context.Context, scope tenant.Scope) ([]*model.Fund, error) {
	var funds []*model.Fund
	result := r.db.WithContext(ctx).Scopes(scope.Filter).Order("name").Find(&funds)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find funds: %w", result.Error)
	}
	return funds, nil
}

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// CreateWithFundTotal inserts the donation and increments the fund running
// total in one transaction. The fund update carries the church predicate, so
// a donation can never move money on another tenant's fund.
func (r *DonationRepository) CreateWithFundTotal(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return fmt.Errorf("creating donation: %w", err)
		}

		result := tx.Model(&model.Fund{}).
			Where("id = ? AND church_id = ?", donation.FundID, donation.ChurchID).
			Update("total_cents", gorm.Expr("total_cents + ?", donation.AmountCents))
		if result.Error != nil {
			return fmt.Errorf("updating fund total: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return nil
	})
}

func (r *DonationRepository) FindAllPaginated(ctx context.Context, scope tenant.Scope, offset, limit int) ([]*model.Donation, int64, error) {
	var donations []*model.Donation
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Donation{}).Scopes(scope.Filter).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	result := r.db.WithContext(ctx).Scopes(scope.Filter).
		Order("given_at DESC").
		Offset(offset).Limit(limit).Find(&donations)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated donations: %w", result.Error)
	}

	return donations, count, nil
}
