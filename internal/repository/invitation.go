// internal/repository/invitation.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"gorm.io/gorm"
)

type InvitationRepositoryIface interface {
	Create(ctx context.Context, inv *model.Invitation) error
	FindByToken(ctx context.Context, token string) (*model.Invitation, error)
	Accept(ctx context.Context, inv *model.Invitation, m *model.Membership) error
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *model.Invitation) error {
	result := r.db.WithContext(ctx).Create(inv)
	if result.Error != nil {
		return fmt.Errorf("failed to create invitation: %w", result.Error)
	}
	return nil
}

// FindByToken is deliberately unscoped: the invitee has no tenant yet.
func (r *InvitationRepository) FindByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var inv model.Invitation
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&inv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find invitation: %w", result.Error)
	}
	return &inv, nil
}

// Accept creates the membership and stamps the invitation accepted in one
// transaction, so a crash between the two writes cannot leave the token
// pending and reusable.
func (r *InvitationRepository) Accept(ctx context.Context, inv *model.Invitation, m *model.Membership) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyMember
			}
			return fmt.Errorf("creating membership: %w", err)
		}

		now := time.Now().UTC()
		inv.AcceptedAt = &now
		if err := tx.Save(inv).Error; err != nil {
			return fmt.Errorf("updating invitation: %w", err)
		}

		return nil
	})
}
