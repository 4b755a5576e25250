package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintboard/cmmskit/pkg/apiclient"
	"github.com/maintboard/cmmskit/pkg/tokenstore"
)

type thing struct {
	Value string `json:"value"`
}

func newClient(t *testing.T, serverURL string, store tokenstore.Store, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	return apiclient.New(apiclient.Config{
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	}, store, opts...)
}

func seedTokens(t *testing.T, store tokenstore.Store, access, refresh string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, access))
	require.NoError(t, store.Set(ctx, tokenstore.KeyRefreshToken, refresh))
	require.NoError(t, store.Set(ctx, tokenstore.KeyUserData, `{"id":"u1"}`))
}

func TestClient_BearerInjection(t *testing.T) {
	t.Parallel()

	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(thing{Value: "ok"})
	}))
	defer srv.Close()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()
	client := newClient(t, srv.URL, store)

	// No token stored: the request goes out unauthenticated.
	_, err := apiclient.Get[thing](ctx, client, "/things")
	require.NoError(t, err)
	assert.Equal(t, "", gotAuth.Load())

	// The store is read fresh on every call, not cached.
	require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "tok-1"))
	_, err = apiclient.Get[thing](ctx, client, "/things")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth.Load())

	require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "tok-2"))
	_, err = apiclient.Get[thing](ctx, client, "/things")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-2", gotAuth.Load())
}

func TestClient_SingleFlightRefresh(t *testing.T) {
	t.Parallel()

	var refreshCalls, successWithNew atomic.Int64

	// Both protected requests must observe their 401 before the coalesced
	// refresh resolves, so the test pins down the concurrent window.
	var both sync.WaitGroup
	both.Add(2)

	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer new-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
			both.Done()
			return
		}
		successWithNew.Add(1)
		_ = json.NewEncoder(w).Encode(thing{Value: "ok"})
	})
	mux.HandleFunc("/auth/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		both.Wait()
		refreshCalls.Add(1)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refresh_token"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "new-token"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokenstore.NewMemoryStore()
	seedTokens(t, store, "expired-token", "refresh-1")
	client := newClient(t, srv.URL, store)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := apiclient.Get[thing](context.Background(), client, "/things")
			results[i] = err
		}(i)
	}
	wg.Wait()

	// Exactly one refresh request, both originals resubmitted with the
	// refreshed token, neither caller observes the intermediate 401.
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 2, successWithNew.Load())
	assert.NoError(t, results[0])
	assert.NoError(t, results[1])

	got, err := store.Get(context.Background(), tokenstore.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "new-token", got)
}

func TestClient_RefreshFailureCascadesToLogout(t *testing.T) {
	t.Parallel()

	var refreshCalls, authErrorFired atomic.Int64

	var both sync.WaitGroup
	both.Add(2)

	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
		both.Done()
	})
	mux.HandleFunc("/auth/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		both.Wait()
		refreshCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid refresh token"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokenstore.NewMemoryStore()
	seedTokens(t, store, "expired-token", "bad-refresh")
	client := newClient(t, srv.URL, store, apiclient.WithAuthErrorHandler(func(ctx context.Context) {
		authErrorFired.Add(1)
	}))

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := apiclient.Get[thing](context.Background(), client, "/things")
			results[i] = err
		}(i)
	}
	wg.Wait()

	// One refresh attempt shared by both waiters; the auth-error handler
	// fires exactly once and all persisted keys are gone.
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 1, authErrorFired.Load())
	require.Error(t, results[0])
	require.Error(t, results[1])

	for _, key := range tokenstore.Keys() {
		_, err := store.Get(context.Background(), key)
		assert.True(t, errors.Is(err, tokenstore.ErrKeyNotFound), "key %s must be cleared", key)
	}
}

func TestClient_AnonymousUnauthorizedIsNotRefreshed(t *testing.T) {
	t.Parallel()

	var refreshCalls, authErrorFired atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	})
	mux.HandleFunc("/auth/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// Empty store: the login request goes out without credentials.
	store := tokenstore.NewMemoryStore()
	client := newClient(t, srv.URL, store, apiclient.WithAuthErrorHandler(func(ctx context.Context) {
		authErrorFired.Add(1)
	}))

	_, err := apiclient.Post[thing](context.Background(), client, "/auth/login", map[string]string{
		"email": "tech@acme.test", "password": "wrong",
	})
	require.Error(t, err)

	// A 401 on an unauthenticated request is a plain rejection: the backend's
	// message survives and the session-expired machinery stays out of it.
	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.EqualValues(t, 0, refreshCalls.Load())
	assert.EqualValues(t, 0, authErrorFired.Load())
}

func TestClient_RetryOnceCeiling(t *testing.T) {
	t.Parallel()

	var protectedHits, refreshCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		protectedHits.Add(1)
		// Rejects even the refreshed token.
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "still unauthorized"})
	})
	mux.HandleFunc("/auth/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "new-token"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokenstore.NewMemoryStore()
	seedTokens(t, store, "expired-token", "refresh-1")
	client := newClient(t, srv.URL, store)

	_, err := apiclient.Get[thing](context.Background(), client, "/things")
	require.Error(t, err)

	// Original request plus exactly one resubmission, never a third.
	assert.EqualValues(t, 2, protectedHits.Load())
	assert.EqualValues(t, 1, refreshCalls.Load())

	var apiErr *apiclient.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "still unauthorized", apiErr.Message)
}

func TestClient_ResubmissionReplaysBody(t *testing.T) {
	t.Parallel()

	var bodies []string
	var mu sync.Mutex

	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		var payload thing
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		mu.Lock()
		bodies = append(bodies, payload.Value)
		mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer new-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(payload)
	})
	mux.HandleFunc("/auth/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "new-token"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokenstore.NewMemoryStore()
	seedTokens(t, store, "expired-token", "refresh-1")
	client := newClient(t, srv.URL, store)

	got, err := apiclient.Post[thing](context.Background(), client, "/things", thing{Value: "pump-3"})
	require.NoError(t, err)
	assert.Equal(t, "pump-3", got.Value)
	assert.Equal(t, []string{"pump-3", "pump-3"}, bodies)
}

func TestClient_ErrorNormalizationPrecedence(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/message-and-error", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"A","error":"B"}`))
	})
	mux.HandleFunc("/error-only", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"B"}`))
	})
	mux.HandleFunc("/unhelpful-body", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"details":42}`))
	})
	mux.HandleFunc("/no-body", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/validation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Validation failed","code":"validation_error","errors":{"title":["is required"]}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	store := tokenstore.NewMemoryStore()
	client := newClient(t, srv.URL, store)

	tests := []struct {
		name        string
		path        string
		wantMessage string
		wantStatus  int
	}{
		{name: "message wins over error", path: "/message-and-error", wantMessage: "A", wantStatus: http.StatusBadRequest},
		{name: "error field used when no message", path: "/error-only", wantMessage: "B", wantStatus: http.StatusBadRequest},
		{name: "generic fallback for unhelpful body", path: "/unhelpful-body", wantMessage: "Something went wrong, please try again", wantStatus: http.StatusBadRequest},
		{name: "transport description when no body", path: "/no-body", wantMessage: "request failed with status 500", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := apiclient.Get[thing](ctx, client, tt.path)
			var apiErr *apiclient.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
		})
	}

	t.Run("validation errors preserved", func(t *testing.T) {
		_, err := apiclient.Get[thing](ctx, client, "/validation")
		var apiErr *apiclient.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Validation failed", apiErr.Message)
		assert.Equal(t, "validation_error", apiErr.Code)
		assert.Equal(t, []string{"is required"}, apiErr.Errors["title"])
	})

	t.Run("unreachable server yields transport message", func(t *testing.T) {
		dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		dead.Close()

		unreachable := newClient(t, dead.URL, store)
		_, err := apiclient.Get[thing](ctx, unreachable, "/things")
		var apiErr *apiclient.Error
		require.True(t, errors.As(err, &apiErr))
		assert.NotEmpty(t, apiErr.Message)
		assert.Zero(t, apiErr.Status)
	})
}

func TestClient_NoAutomaticRetryForServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	store := tokenstore.NewMemoryStore()
	client := newClient(t, srv.URL, store)

	_, err := apiclient.Get[thing](context.Background(), client, "/things")
	require.Error(t, err)
	assert.EqualValues(t, 1, hits.Load())
	assert.True(t, apiclient.IsStatus(err, http.StatusServiceUnavailable))
}

func TestRetryLinear(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64
	err := apiclient.RetryLinear(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		if attempts.Add(1) < 3 {
			return apiclient.MarkRetryable(errors.New("transient"))
		}
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, attempts.Load())

	// Unmarked errors abort immediately.
	attempts.Store(0)
	err = apiclient.RetryLinear(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		attempts.Add(1)
		return errors.New("fatal")
	})
	require.Error(t, err)
	assert.EqualValues(t, 1, attempts.Load())
}
