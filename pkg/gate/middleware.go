package gate

import (
	"net/http"

	"github.com/maintboard/cmmskit/pkg/authsession"
	"github.com/maintboard/cmmskit/pkg/rbac"
)

// RequireAuthenticated rejects requests without an authenticated session in
// the context with 401. The session is placed there by the portal's
// session-resolving middleware.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := authsession.GetSessionFromContext(r.Context())
		if !ok || !session.IsAuthenticated {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole allows only sessions whose role matches one of the given roles
// (OR semantics). Missing sessions get 401, mismatched roles 403.
func RequireRole(roles ...rbac.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := authsession.GetSessionFromContext(r.Context())
			if !ok || !session.IsAuthenticated || session.User == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if !Allowed(session.User.Role, roles...) {
				http.Error(w, "insufficient role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission allows only sessions whose role is granted the
// permission under the built-in matrix.
func RequirePermission(permission rbac.Permission) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := authsession.GetSessionFromContext(r.Context())
			if !ok || !session.IsAuthenticated || session.User == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if !rbac.HasPermission(session.User.Role, permission) {
				http.Error(w, "insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
