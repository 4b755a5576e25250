// Package portal wires the session manager, role gates and navigation
// registry into a mountable chi router for the admin front-end.
//
// The module resolves the session once per request and injects it into the
// context; everything downstream — authentication gates, role gates, the
// navigation endpoint — reads that snapshot. Protected areas are mounted
// behind gates from pkg/gate:
//
//	sessions := authsession.New(cfg, tokenstore.NewMemoryStore())
//	authSvc := portal.NewAuthService(sessions, navigation.DefaultMenu())
//
//	r := chi.NewRouter()
//	r.Mount("/", portal.Router(portal.RouterOptions{
//		Auth:  authSvc,
//		Admin: adminArea,
//	}))
package portal
