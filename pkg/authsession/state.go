package authsession

// State is the session controller's lifecycle state.
type State string

const (
	// StateAnonymous means no authenticated user.
	StateAnonymous State = "anonymous"

	// StateRestoring means persisted state is being read on boot.
	StateRestoring State = "restoring"

	// StateAuthenticating means a login attempt is in flight.
	StateAuthenticating State = "authenticating"

	// StateAuthenticated means a user session is active.
	StateAuthenticated State = "authenticated"
)

// transitions is the explicit transition table. Anything absent is an
// invalid transition and is rejected.
var transitions = map[State][]State{
	StateAnonymous:      {StateAuthenticating, StateRestoring},
	StateRestoring:      {StateAuthenticated, StateAnonymous},
	StateAuthenticating: {StateAuthenticated, StateAnonymous},
	// Re-authentication goes through authenticating again.
	StateAuthenticated: {StateAnonymous, StateAuthenticating},
}

func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
