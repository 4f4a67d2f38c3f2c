// internal/tenant/rolegate.go
package tenant

import (
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/model"
)

// Action is a sensitive operation gated on the caller's role. Ordinary CRUD
// on members, events, donations and so on only requires membership and never
// consults the gate.
type Action string

const (
	ActionUpdateSettings Action = "church.update_settings"
	ActionCreatePage     Action = "page.create"
	ActionSendBroadcast  Action = "notification.broadcast"
	ActionInviteMember   Action = "membership.invite"
)

// sensitiveActions is the single allow-list for role checks. Owner and admin
// are equally privileged for administrative mutations; keeping the list in
// one table avoids per-endpoint drift.
var sensitiveActions = map[Action][]model.Role{
	ActionUpdateSettings: {model.RoleOwner, model.RoleAdmin},
	ActionCreatePage:     {model.RoleOwner, model.RoleAdmin},
	ActionSendBroadcast:  {model.RoleOwner, model.RoleAdmin},
	ActionInviteMember:   {model.RoleOwner, model.RoleAdmin},
}

// Authorize checks the identity's role against the allow-list for the action.
// Returns domain.ErrForbidden for insufficient roles and for unknown actions.
func Authorize(id Identity, action Action) error {
	allowed, ok := sensitiveActions[action]
	if !ok {
		return domain.ErrForbidden
	}
	for _, role := range allowed {
		if id.Role == role {
			return nil
		}
	}
	return domain.ErrForbidden
}
