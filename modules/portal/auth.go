package portal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maintboard/cmmskit/pkg/apiclient"
	"github.com/maintboard/cmmskit/pkg/authsession"
	"github.com/maintboard/cmmskit/pkg/navigation"
)

// AuthService exposes the session lifecycle over HTTP: login, logout,
// credential recovery, the current-session endpoint and the filtered
// navigation menu. It is a thin translation layer; all session semantics
// live in the manager.
type AuthService struct {
	sessions *authsession.Manager
	menu     *navigation.Registry
	log      *slog.Logger
}

// AuthServiceOption configures the AuthService.
type AuthServiceOption func(*AuthService)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) AuthServiceOption {
	return func(s *AuthService) {
		if log != nil {
			s.log = log
		}
	}
}

// NewAuthService creates the auth service.
func NewAuthService(sessions *authsession.Manager, menu *navigation.Registry, opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		sessions: sessions,
		menu:     menu,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle mounts the auth endpoints.
func (s *AuthService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", s.login)
	r.Post("/logout", s.logout)
	r.Post("/forgot-password", s.forgotPassword)
	r.Post("/reset-password", s.resetPassword)

	return r
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.log.WarnContext(r.Context(), "login rejected", slog.String("error", err.Error()))
		writeError(w, errorStatus(err, http.StatusUnauthorized), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session.User)
}

func (s *AuthService) logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (s *AuthService) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.sessions.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, errorStatus(err, http.StatusBadGateway), err.Error())
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (s *AuthService) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.sessions.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		writeError(w, errorStatus(err, http.StatusBadRequest), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// session returns the authenticated user's snapshot. The authentication gate
// upstream guarantees the session is present.
func (s *AuthService) session(w http.ResponseWriter, r *http.Request) {
	session, _ := authsession.GetSessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, session.User)
}

type menuEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon,omitempty"`
}

// navigation returns the menu entries visible to the current session. It is
// deliberately outside the authentication gate: an anonymous visitor gets
// the public subset rather than a 401.
func (s *AuthService) navigation(w http.ResponseWriter, r *http.Request) {
	session, _ := authsession.GetSessionFromContext(r.Context())

	items := s.menu.Visible(session)
	entries := make([]menuEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, menuEntry{ID: item.ID, Label: item.Label, Path: item.Path, Icon: item.Icon})
	}

	writeJSON(w, http.StatusOK, entries)
}

// errorStatus maps a normalized API error to a response status, falling back
// when the error carries no HTTP status of its own.
func errorStatus(err error, fallback int) int {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Status > 0 {
		return apiErr.Status
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
