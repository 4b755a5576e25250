package portal

import (
	"net/http"

	"github.com/maintboard/cmmskit/pkg/authsession"
	"github.com/maintboard/cmmskit/pkg/rbac"
)

// WithSession resolves the current session snapshot once per request and
// injects it, together with the effective role, into the request context.
// Gates and handlers downstream read the snapshot from there instead of
// hitting the manager again, so a logout mid-request cannot flip access
// decisions halfway through.
func WithSession(sessions *authsession.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessions.Session()

			ctx := authsession.SetSessionToContext(r.Context(), session)
			ctx = rbac.SetRoleToContext(ctx, session.Role())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
