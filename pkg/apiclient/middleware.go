package apiclient

import (
	"context"
	"net/http"

	"github.com/maintboard/cmmskit/pkg/tokenstore"
)

// Middleware decorates an http.RoundTripper. Cross-cutting request concerns
// (bearer injection, refresh-on-401) are explicit decorators composed into a
// chain, never implicit client mutation.
type Middleware func(next http.RoundTripper) http.RoundTripper

// Chain composes middlewares around a base transport. The first middleware
// is outermost: it sees the request first and the response last.
func Chain(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		base = middlewares[i](base)
	}
	return base
}

// roundTripperFunc adapts a function to http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// WithBearerAuth returns a middleware that attaches the stored access token
// as a bearer credential. The store is read fresh on every request, so a
// request issued after a successful refresh always carries the new token.
// With no token present the request proceeds unauthenticated and the server
// rejects it if auth is required.
func WithBearerAuth(store tokenstore.Store) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			token, err := store.Get(req.Context(), tokenstore.KeyAccessToken)
			if err == nil && token != "" {
				req = req.Clone(req.Context())
				req.Header.Set("Authorization", "Bearer "+token)
			}
			return next.RoundTrip(req)
		})
	}
}

// retriedCtxKey marks a request that has already been resubmitted after a
// refresh, enforcing the retry-once ceiling.
type retriedCtxKey struct{}

func markRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retriedCtxKey{}, true)
}

func isRetried(ctx context.Context) bool {
	retried, _ := ctx.Value(retriedCtxKey{}).(bool)
	return retried
}
