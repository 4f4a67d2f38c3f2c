// internal/tenant/context.go
package tenant

import (
	"context"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/google/uuid"
)

// Identity is the resolved tenant binding for the requesting principal.
// It is threaded through the request context by the tenant middleware so
// concurrent requests never share resolution state.
type Identity struct {
	UserID   uuid.UUID
	ChurchID uuid.UUID
	Role     model.Role
}

type contextKey string

const identityKey = contextKey("churchflow_identity")

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the resolved identity from the context.
// Handlers behind the tenant middleware can rely on this never failing.
func IdentityFrom(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}

// Scope returns the data-access scope for this identity.
func (id Identity) Scope() Scope {
	return Scope{ChurchID: id.ChurchID}
}
