package authsession

import "context"

// sessionCtxKey is the context key for the resolved session snapshot.
type sessionCtxKey struct{}

// SetSessionToContext stores a session snapshot in the context for handlers
// downstream of the session-resolving middleware.
func SetSessionToContext(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// GetSessionFromContext retrieves the session snapshot from the context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(Session)
	return session, ok
}
