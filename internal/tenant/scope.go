// internal/tenant/scope.go
package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope carries the tenant predicate every query on a church-scoped table
// must apply. A row that exists under a different church is indistinguishable
// from an absent row: lookups through a scope surface domain.ErrNotFound,
// never a forbidden error, so entity existence does not leak across tenants.
type Scope struct {
	ChurchID uuid.UUID
}

// Filter is a gorm scope applying the church predicate, for use with
// db.Scopes(s.Filter) or directly as s.Filter(tx).
func (s Scope) Filter(tx *gorm.DB) *gorm.DB {
	return tx.Where("church_id = ?", s.ChurchID)
}
