// internal/middleware/tenant.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
)

// TenantMiddleware resolves the authenticated principal to their church and
// threads the identity through the request context. Runs after
// AuthMiddleware. Requests from principals with no membership get a 403 with
// an onboarding_required code so clients can route to the onboarding flow.
func TenantMiddleware(resolver *tenant.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFrom(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			identity, err := resolver.Resolve(r.Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrNoTenant) {
					respondWithJSON(w, http.StatusForbidden, map[string]string{
						"error":      "No church membership",
						"error_code": "onboarding_required",
					})
					return
				}
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve church")
				return
			}

			next.ServeHTTP(w, r.WithContext(tenant.WithIdentity(r.Context(), identity)))
		})
	}
}
