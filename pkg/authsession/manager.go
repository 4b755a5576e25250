package authsession

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/maintboard/cmmskit/pkg/apiclient"
	"github.com/maintboard/cmmskit/pkg/rbac"
	"github.com/maintboard/cmmskit/pkg/tokenstore"
)

// Backend auth endpoints, relative to the API base URL.
const (
	loginPath          = "/auth/login"
	logoutPath         = "/auth/logout"
	mePath             = "/auth/me"
	forgotPasswordPath = "/auth/forgot-password"
	resetPasswordPath  = "/auth/reset-password"
)

// Session is a read-only snapshot of the current auth state.
type Session struct {
	User            *User
	IsAuthenticated bool
}

// Role returns the session's effective role. Without a user the viewer role
// is returned, so downstream permission checks fail closed rather than
// panicking on a missing session.
func (s Session) Role() rbac.Role {
	if s.User == nil {
		return rbac.RoleViewer
	}
	return s.User.Role
}

// Manager owns the session lifecycle: login, logout, restore-on-boot and the
// reaction to unrecoverable auth failures. It is the only writer of session
// state; consumers receive it by injection and read snapshots through
// Session(). All methods are safe for concurrent use.
type Manager struct {
	client *apiclient.Client
	store  tokenstore.Store
	log    *slog.Logger

	onUnauthenticated func(ctx context.Context)
	clientOpts        []apiclient.Option

	mu    sync.RWMutex
	state State
	user  *User
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithUnauthenticatedHook sets the front-end reaction to an unrecoverable
// auth failure, typically a hard navigation to the login route. It runs after
// local state is cleared.
func WithUnauthenticatedHook(hook func(ctx context.Context)) Option {
	return func(m *Manager) {
		m.onUnauthenticated = hook
	}
}

// WithClientOptions forwards extra options to the underlying API client.
func WithClientOptions(opts ...apiclient.Option) Option {
	return func(m *Manager) {
		m.clientOpts = append(m.clientOpts, opts...)
	}
}

// New creates a Manager and its API client. The manager registers itself as
// the client's auth-error handler, so an expired refresh token anywhere in
// the request path drops the session to anonymous.
func New(cfg apiclient.Config, store tokenstore.Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   slog.Default(),
		state: StateAnonymous,
	}
	for _, opt := range opts {
		opt(m)
	}

	clientOpts := append([]apiclient.Option{
		apiclient.WithLogger(m.log),
		apiclient.WithAuthErrorHandler(m.handleAuthError),
	}, m.clientOpts...)
	m.client = apiclient.New(cfg, store, clientOpts...)

	return m
}

// Client exposes the API client sharing this manager's auth state, for
// resource services to build on.
func (m *Manager) Client() *apiclient.Client {
	return m.client
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Session returns a snapshot of the current session.
func (m *Manager) Session() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateAuthenticated || m.user == nil {
		return Session{}
	}
	user := *m.user
	return Session{User: &user, IsAuthenticated: true}
}

// loginResponse mirrors the login endpoint's payload.
type loginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         userPayload `json:"user"`
}

// Login exchanges credentials for tokens, persists them and transitions to
// authenticated. On failure the session stays anonymous and the normalized
// error message is surfaced to the caller; invalid credentials and network
// failures are not distinguished beyond that message.
func (m *Manager) Login(ctx context.Context, email, password string) (Session, error) {
	if err := m.setState(StateAuthenticating); err != nil {
		return Session{}, err
	}

	resp, err := apiclient.Post[loginResponse](ctx, m.client, loginPath, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		m.forceState(StateAnonymous, nil)
		return Session{}, err
	}

	user := mapUser(resp.User)
	if err := m.persist(ctx, resp.AccessToken, resp.RefreshToken, user); err != nil {
		m.forceState(StateAnonymous, nil)
		return Session{}, err
	}

	m.forceState(StateAuthenticated, &user)
	m.log.InfoContext(ctx, "session established",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()))

	return m.Session(), nil
}

// Logout clears local auth state and transitions to anonymous. The
// server-side logout call is best-effort: local state clears even when the
// network round trip fails.
func (m *Manager) Logout(ctx context.Context) {
	if _, err := apiclient.Post[struct{}](ctx, m.client, logoutPath, nil); err != nil {
		m.log.DebugContext(ctx, "server-side logout failed", slog.String("error", err.Error()))
	}

	if err := m.store.Clear(ctx); err != nil {
		m.log.ErrorContext(ctx, "failed to clear auth state", slog.String("error", err.Error()))
	}
	m.forceState(StateAnonymous, nil)
}

// RestoreSession reads persisted tokens and the user snapshot on boot. When
// both are present the session optimistically becomes authenticated without
// re-validating the token; the first protected request either succeeds or
// 401s into the refresh path. With nothing (or only partial state) persisted
// the session settles anonymous.
func (m *Manager) RestoreSession(ctx context.Context) (Session, error) {
	if err := m.setState(StateRestoring); err != nil {
		return Session{}, err
	}

	token, tokenErr := m.store.Get(ctx, tokenstore.KeyAccessToken)
	rawUser, userErr := m.store.Get(ctx, tokenstore.KeyUserData)
	if tokenErr != nil || token == "" || userErr != nil || rawUser == "" {
		// Partial state is as good as none; drop whatever is left.
		_ = m.store.Clear(ctx)
		m.forceState(StateAnonymous, nil)
		return Session{}, nil
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		_ = m.store.Clear(ctx)
		m.forceState(StateAnonymous, nil)
		return Session{}, nil
	}
	// Stored roles from older sessions may carry legacy names.
	user.Role = rbac.ToRole(string(user.Role))

	m.forceState(StateAuthenticated, &user)
	return m.Session(), nil
}

// Me fetches the current profile from the backend and updates the session
// snapshot.
func (m *Manager) Me(ctx context.Context) (User, error) {
	if m.State() != StateAuthenticated {
		return User{}, ErrNotAuthenticated
	}

	payload, err := apiclient.Get[userPayload](ctx, m.client, mePath)
	if err != nil {
		return User{}, err
	}

	user := mapUser(payload)
	m.UpdateUser(user)
	return user, nil
}

// UpdateUser replaces the in-memory user snapshot and re-persists it, e.g.
// after a profile edit. A no-op outside the authenticated state.
func (m *Manager) UpdateUser(user User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAuthenticated {
		return
	}
	m.user = &user

	if raw, err := json.Marshal(user); err == nil {
		_ = m.store.Set(context.Background(), tokenstore.KeyUserData, string(raw))
	}
}

// ForgotPassword starts the out-of-band credential recovery flow.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	_, err := apiclient.Post[struct{}](ctx, m.client, forgotPasswordPath, map[string]string{"email": email})
	return err
}

// ResetPassword completes the recovery flow with the emailed reset token.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := apiclient.Post[struct{}](ctx, m.client, resetPasswordPath, map[string]string{
		"token":    token,
		"password": newPassword,
	})
	return err
}

// handleAuthError runs when the API client declares auth unrecoverable. The
// client has already cleared the persisted keys; this drops the in-memory
// session and triggers the front-end hook.
func (m *Manager) handleAuthError(ctx context.Context) {
	m.forceState(StateAnonymous, nil)
	m.log.WarnContext(ctx, "session terminated: refresh token rejected")

	if m.onUnauthenticated != nil {
		m.onUnauthenticated(ctx)
	}
}

// persist writes the three auth keys. Failures leave the store cleared so a
// half-written session can never be restored.
func (m *Manager) persist(ctx context.Context, accessToken, refreshToken string, user User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	for key, value := range map[tokenstore.Key]string{
		tokenstore.KeyAccessToken:  accessToken,
		tokenstore.KeyRefreshToken: refreshToken,
		tokenstore.KeyUserData:     string(raw),
	} {
		if err := m.store.Set(ctx, key, value); err != nil {
			_ = m.store.Clear(ctx)
			return errors.Join(ErrPersistFailed, err)
		}
	}
	return nil
}

// setState performs a validated transition.
func (m *Manager) setState(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !canTransition(m.state, to) {
		return ErrInvalidTransition
	}
	m.state = to
	return nil
}

// forceState settles a terminal outcome of an in-flight operation together
// with the user snapshot it implies.
func (m *Manager) forceState(to State, user *User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = to
	m.user = user
}
