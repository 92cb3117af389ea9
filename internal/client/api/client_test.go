package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-hugo/cliq-cli/internal/client/session"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// memStore is an in-memory session.Store for adapter tests.
type memStore struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *memStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *memStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

func (s *memStore) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, had := s.m[session.KeyToken]
	s.m = map[string]string{}
	return had
}

func (s *memStore) Watch(string, func(string, bool)) func() { return func() {} }
func (s *memStore) Close() error                            { return nil }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *memStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := newMemStore()
	return New(srv.URL, 5*time.Second, store, logging.NewNop()), store
}

func TestClient_UnwrapsEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":7,"name":"Ada"},"message":"ok"}`))
	}))

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.Get(context.Background(), "/contacts/7", nil, &out))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Ada", out.Name)
}

func TestClient_BareBodyWithoutEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Ada"}`))
	}))

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.Get(context.Background(), "/contacts/7", nil, &out))
	assert.Equal(t, "Ada", out.Name)
}

func TestClient_UnexpectedShapeRejected(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"just a string"`))
	}))

	var out struct{ ID int64 }
	err := c.Get(context.Background(), "/x", nil, &out)
	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindClient, apiErr.Kind)
}

func TestClient_BearerHeaderOnlyWithToken(t *testing.T) {
	var gotAuth atomic.Value
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, c.Get(context.Background(), "/x", nil, nil))
	assert.Equal(t, "", gotAuth.Load())

	store.Set(session.KeyToken, "tok-1")
	require.NoError(t, c.Get(context.Background(), "/x", nil, nil))
	assert.Equal(t, "Bearer tok-1", gotAuth.Load())
}

func TestClient_RequestIDHeaderSet(t *testing.T) {
	var got string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, c.Get(context.Background(), "/x", nil, nil))
	assert.NotEmpty(t, got)
}

func TestClient_QueryParamsEncoded(t *testing.T) {
	var got url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	}))

	q := url.Values{}
	q.Set("search", "ada lovelace")
	q.Set("page", "2")
	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/contacts/list", q, &out))
	assert.Equal(t, "ada lovelace", got.Get("search"))
	assert.Equal(t, "2", got.Get("page"))
}

func TestClient_NetworkErrorClassified(t *testing.T) {
	store := newMemStore()
	// Nothing listens on this port.
	c := New("http://127.0.0.1:1", time.Second, store, logging.NewNop())

	err := c.Get(context.Background(), "/x", nil, nil)
	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "cannot reach the server", apiErr.Message)
}

func TestClient_ServerErrorMessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"title is required"}`, "title is required"},
		{"error field", `{"error":"boom"}`, "boom"},
		{"no body", ``, "server error"},
		{"non-json body", `internal error`, "server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))

			err := c.Post(context.Background(), "/tasks/create", map[string]string{}, nil)
			require.Error(t, err)
			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, KindServer, apiErr.Kind)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestClient_UnauthorizedClearsSessionAndNavigatesOnce(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	store.Set(session.KeyToken, "expired")
	store.Set(session.KeyUser, "u")

	var navigations atomic.Int32
	c.OnUnauthorized(func() { navigations.Add(1) })

	// A burst of concurrent requests all hitting 401.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := c.Get(context.Background(), "/tasks/list", nil, nil)
			assert.True(t, IsUnauthorized(err))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), navigations.Load(), "forced logout must navigate exactly once")
	_, ok := store.Get(session.KeyToken)
	assert.False(t, ok)
	_, ok = store.Get(session.KeyUser)
	assert.False(t, ok)
}

func TestClient_UnauthorizedWithoutSessionDoesNotNavigate(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	fired := false
	c.OnUnauthorized(func() { fired = true })

	err := c.Get(context.Background(), "/auth/validate", nil, nil)
	require.True(t, IsUnauthorized(err))
	assert.False(t, fired, "401 with no live session must not navigate")
}

func TestClient_BadBaseURL(t *testing.T) {
	c := New("not a url", time.Second, newMemStore(), logging.NewNop())
	err := c.Get(context.Background(), "/x", nil, nil)
	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindClient, apiErr.Kind)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "nope", ErrorMessage(&Error{Kind: KindServer, Message: "nope", Status: 500}))
	assert.Equal(t, "assert.AnError general error for testing", ErrorMessage(assertAnError()))
}

func assertAnError() error {
	return assert.AnError
}
