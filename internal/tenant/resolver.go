// internal/tenant/resolver.go
package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/google/uuid"
)

//go:generate mockgen -source=./resolver.go -destination=../mocks/mock_membership_source.go -package=mocks MembershipSource

// MembershipSource is the membership lookup the resolver needs. The
// repository layer satisfies it.
type MembershipSource interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
}

// Resolver maps an authenticated principal to their church and role.
// A principal belongs to at most one church; the membership table enforces
// that with a unique index on user_id.
type Resolver struct {
	memberships MembershipSource
}

func NewResolver(memberships MembershipSource) *Resolver {
	return &Resolver{memberships: memberships}
}

// Resolve looks up the principal's membership. Read-only.
// Returns domain.ErrNoTenant when the principal has no membership yet;
// callers route that to the onboarding flow, not an error page.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) (Identity, error) {
	m, err := r.memberships.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Identity{}, domain.ErrNoTenant
		}
		return Identity{}, fmt.Errorf("resolving membership: %w", err)
	}

	return Identity{
		UserID:   userID,
		ChurchID: m.ChurchID,
		Role:     m.Role,
	}, nil
}
