package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/maintboard/cmmskit/pkg/tokenstore"
)

// refreshPath is the backend endpoint exchanging a refresh token for a new
// access token.
const refreshPath = "/auth/token/refresh"

// AuthErrorHandler is invoked when auth becomes unrecoverable: the refresh
// token is missing, expired or rejected. By then all persisted auth keys are
// already cleared; the handler performs the front-end reaction, typically a
// hard navigation to the login route.
type AuthErrorHandler func(ctx context.Context)

// Refresher exchanges the stored refresh token for a new access token.
//
// Concurrent refresh attempts are coalesced through a single-flight group:
// at most one refresh request is in flight at any time, every caller that
// needed a refresh during that window observes the same outcome, and the
// in-flight guard is dropped when the attempt completes so the next 401
// starts a fresh attempt.
type Refresher struct {
	store       tokenstore.Store
	endpoint    string
	httpClient  *http.Client
	group       singleflight.Group
	onAuthError AuthErrorHandler
	log         *slog.Logger
}

// NewRefresher creates a Refresher for the given backend base URL. The
// refresher talks to the backend directly, outside the middleware chain, so
// a failing refresh can never trigger another refresh.
func NewRefresher(cfg Config, store tokenstore.Store, onAuthError AuthErrorHandler, log *slog.Logger) *Refresher {
	if log == nil {
		log = slog.Default()
	}
	return &Refresher{
		store:       store,
		endpoint:    cfg.BaseURL + refreshPath,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		onAuthError: onAuthError,
		log:         log,
	}
}

// Refresh returns a fresh access token, coalescing concurrent callers into a
// single refresh request. On failure the persisted auth state is cleared and
// the auth-error handler fires exactly once, regardless of how many callers
// were waiting on the attempt.
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	token, err, _ := r.group.Do("token_refresh", func() (any, error) {
		// The shared attempt must not die with the first caller's context.
		token, err := r.refresh(context.WithoutCancel(ctx))
		if err != nil {
			r.failAuth(context.WithoutCancel(ctx), err)
			return "", err
		}
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// refreshResponse mirrors the refresh endpoint's payload. A rotated refresh
// token is optional; when present it replaces the stored one.
type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r *Refresher) refresh(ctx context.Context) (string, error) {
	refreshToken, err := r.store.Get(ctx, tokenstore.KeyRefreshToken)
	if err != nil || refreshToken == "" {
		return "", errors.Join(ErrRefreshTokenMissing, sessionExpired())
	}

	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return "", errors.Join(ErrRefreshFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Join(ErrRefreshFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errors.Join(ErrRefreshFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", errors.Join(ErrRefreshFailed, normalizeResponse(resp), sessionExpired())
	}

	var payload refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.AccessToken == "" {
		return "", errors.Join(ErrRefreshFailed, sessionExpired())
	}

	if err := r.store.Set(ctx, tokenstore.KeyAccessToken, payload.AccessToken); err != nil {
		return "", errors.Join(ErrRefreshFailed, err)
	}
	if payload.RefreshToken != "" {
		if err := r.store.Set(ctx, tokenstore.KeyRefreshToken, payload.RefreshToken); err != nil {
			return "", errors.Join(ErrRefreshFailed, err)
		}
	}

	return payload.AccessToken, nil
}

// hasCredentials reports whether an access token is persisted, i.e. whether
// the request the middleware just saw fail went out authenticated. The store
// is the source of truth here because the bearer middleware attaches the
// header to its own clone of the request.
func (r *Refresher) hasCredentials(ctx context.Context) bool {
	token, err := r.store.Get(ctx, tokenstore.KeyAccessToken)
	return err == nil && token != ""
}

// failAuth clears persisted auth state and notifies the handler. Runs inside
// the single-flight group, so it executes once per failed attempt.
func (r *Refresher) failAuth(ctx context.Context, cause error) {
	r.log.WarnContext(ctx, "token refresh failed, clearing session", slog.String("error", cause.Error()))

	if err := r.store.Clear(ctx); err != nil {
		r.log.ErrorContext(ctx, "failed to clear auth state", slog.String("error", err.Error()))
	}
	if r.onAuthError != nil {
		r.onAuthError(ctx)
	}
}

func sessionExpired() *Error {
	return &Error{
		Message: "Your session has expired, please sign in again",
		Status:  http.StatusUnauthorized,
		Code:    "session_expired",
	}
}

// WithTokenRefresh returns the refresh-on-401 middleware. A 401 response for
// a credentialed request that has not been resubmitted yet triggers the
// refresh procedure; on success the original request is resubmitted exactly
// once (the inner bearer middleware re-reads the store and attaches the
// fresh token). On failure the refresh error propagates as the final error.
// No other status code is ever retried here.
//
// A 401 for a request that went out without an access token is a plain
// rejection — a failed login, a wrong reset token — not an expired session,
// so it propagates untouched with the backend's own error body and no
// refresh attempt.
func WithTokenRefresh(refresher *Refresher) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil || resp.StatusCode != http.StatusUnauthorized {
				return resp, err
			}
			if isRetried(req.Context()) {
				return resp, nil
			}
			if !refresher.hasCredentials(req.Context()) {
				return resp, nil
			}

			// The 401 body is replaced by the retry's response.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()

			if _, err := refresher.Refresh(req.Context()); err != nil {
				return nil, err
			}

			retry, err := replayableRequest(req)
			if err != nil {
				return nil, err
			}
			return next.RoundTrip(retry)
		})
	}
}

// replayableRequest clones the original request for the single resubmission,
// restoring the body from GetBody when one was sent.
func replayableRequest(req *http.Request) (*http.Request, error) {
	retry := req.Clone(markRetried(req.Context()))
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	// A stale Authorization header must not survive into the retry; the
	// bearer middleware re-reads the store on the way down.
	retry.Header.Del("Authorization")
	return retry, nil
}
