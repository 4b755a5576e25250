package portal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maintboard/cmmskit/pkg/gate"
	"github.com/maintboard/cmmskit/pkg/rbac"
)

// Mountable is anything that can be mounted as a sub-router, typically a
// resource-specific page or API group built elsewhere.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which areas to mount in the portal module. The
// auth service is required; everything else is optional and only mounted
// when provided.
type RouterOptions struct {
	Auth *AuthService

	// Protected areas, mounted behind the session middleware plus an
	// authentication gate. Admin is additionally restricted to platform
	// administrators.
	Dashboard Mountable
	Admin     Mountable
}

// Router creates the portal router.
//
// Example:
//
//	authSvc := portal.NewAuthService(sessions, menu)
//
//	r := chi.NewRouter()
//	r.Mount("/", portal.Router(portal.RouterOptions{
//	    Auth: authSvc,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(WithSession(opts.Auth.sessions))

	r.Mount("/auth", opts.Auth.Handle())
	r.Get("/navigation", opts.Auth.navigation)

	r.Group(func(protected chi.Router) {
		protected.Use(gate.RequireAuthenticated)

		protected.Get("/session", opts.Auth.session)

		if opts.Dashboard != nil {
			protected.Mount("/dashboard", opts.Dashboard.Handle())
		}
		if opts.Admin != nil {
			protected.With(gate.RequireRole(rbac.RoleSuperadmin)).
				Mount("/admin", opts.Admin.Handle())
		}
	})

	return r
}
