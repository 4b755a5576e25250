// Package apiclient is the single HTTP entry point for all CMMS backend I/O.
//
// The client composes an explicit middleware chain around the base transport:
// a refresh-on-401 decorator wrapping a bearer-injection decorator. The
// bearer middleware reads the access token from the token store fresh on
// every request; the refresh middleware reacts to a 401 by exchanging the
// refresh token for a new access token and resubmitting the original request
// exactly once. Concurrent 401s coalesce into a single refresh request
// through a single-flight group, and a failed refresh clears the persisted
// auth state and fires the configured auth-error handler exactly once.
//
// Every failure surfaces as a normalized *Error with a user-presentable
// Message, the HTTP Status, an optional backend Code and field-level
// validation Errors. No other status code is retried automatically; an
// opt-in RetryLinear helper exists for callers that want their own policy.
//
//	store := tokenstore.NewMemoryStore()
//	var cfg apiclient.Config
//	config.MustLoad(&cfg)
//
//	client := apiclient.New(cfg, store,
//	    apiclient.WithLogger(log),
//	    apiclient.WithAuthErrorHandler(func(ctx context.Context) {
//	        // hard navigation to the login route
//	    }))
//
//	me, err := apiclient.Get[authsession.User](ctx, client, "/auth/me")
package apiclient
