package authsession

import "errors"

var (
	// ErrInvalidTransition indicates a session state change outside the
	// transition table, e.g. restoring a session while authenticated.
	ErrInvalidTransition = errors.New("authsession.invalid_transition")

	// ErrNotAuthenticated indicates an operation that requires an active
	// session was called without one.
	ErrNotAuthenticated = errors.New("authsession.not_authenticated")

	// ErrPersistFailed indicates the token store rejected a write while
	// establishing a session.
	ErrPersistFailed = errors.New("authsession.persist_failed")
)
