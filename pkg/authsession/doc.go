// Package authsession owns the authenticated session lifecycle for CMMS
// admin front-ends: login, logout, restore-on-boot and the reaction to an
// expired refresh token.
//
// The Manager is the single writer of session state. It moves through an
// explicit state machine (anonymous → authenticating → authenticated →
// anonymous, with a restoring state on boot) and persists the access token,
// refresh token and user snapshot through a tokenstore.Store. Consumers
// receive the manager by injection and read immutable snapshots via
// Session(); there is no ambient global session.
//
//	store := tokenstore.NewMemoryStore()
//	sessions := authsession.New(cfg, store,
//	    authsession.WithLogger(log),
//	    authsession.WithUnauthenticatedHook(func(ctx context.Context) {
//	        // hard navigation to /login
//	    }))
//
//	if _, err := sessions.RestoreSession(ctx); err != nil { ... }
//
//	session, err := sessions.Login(ctx, email, password)
//	if err != nil {
//	    // err.Error() is the user-presentable normalized message
//	}
//
// The backend reports users in snake_case with nested organization
// memberships; the first membership's role is taken as authoritative when
// mapping to the flat User shape.
package authsession
