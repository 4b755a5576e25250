// Package tokenstore persists the authenticated session's credentials: the
// access token, the refresh token and the serialized user snapshot, under a
// fixed set of keys in a common namespace.
//
// The store is deliberately dumb. It tracks no expiry and performs no
// validation; the API client discovers token expiry reactively through a 401
// response. Logout and unrecoverable auth failures clear all three keys as a
// set.
//
//	store := tokenstore.NewMemoryStore()
//	_ = store.Set(ctx, tokenstore.KeyAccessToken, token)
//
// For server-rendered deployments that hold tokens per browser session, use
// the Redis-backed store with a per-session namespace:
//
//	store := tokenstore.NewRedisStore(client,
//	    tokenstore.WithNamespace("cmms:auth:"+sessionID))
package tokenstore
