package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/fivetwenty-io/gameadmin/internal/client"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *capturingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *capturingLogger) Debug(msg string, _ map[string]interface{}) { l.record(msg) }
func (l *capturingLogger) Info(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *capturingLogger) Warn(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *capturingLogger) Error(msg string, _ map[string]interface{}) { l.record(msg) }

func (l *capturingLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.messages...)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, admin.ErrConfigRequired)
	})

	t.Run("requires API endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &admin.Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API endpoint is required")
	})

	t.Run("defaults the API prefix", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &admin.Config{APIEndpoint: "https://admin.example.com/"})
		require.NoError(t, err)
		assert.Equal(t, "https://admin.example.com/api", client.BaseURL())
		assert.NotNil(t, client.Session())
		assert.False(t, client.Session().IsLoggedIn())
	})

	t.Run("honors a custom prefix", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &admin.Config{
			APIEndpoint: "https://admin.example.com",
			APIPrefix:   "/backend/api/",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://admin.example.com/backend/api", client.BaseURL())
	})

	t.Run("uses the provided session", func(t *testing.T) {
		t.Parallel()

		session := admin.NewSession()
		session.Authenticate()

		client, err := New(context.Background(), &admin.Config{APIEndpoint: "https://admin.example.com", Session: session})
		require.NoError(t, err)
		assert.Same(t, session, client.Session())
	})

	t.Run("exposes every resource client", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &admin.Config{APIEndpoint: "https://admin.example.com"})
		require.NoError(t, err)

		assert.NotNil(t, client.Achievements())
		assert.NotNil(t, client.Items())
		assert.NotNil(t, client.Skins())
		assert.NotNil(t, client.Vouchers())
		assert.NotNil(t, client.Terrains())
		assert.NotNil(t, client.Missions())
		assert.NotNil(t, client.Users())
		assert.NotNil(t, client.GameUsers())
		assert.NotNil(t, client.Addresses())
		assert.NotNil(t, client.Currencies())
		assert.NotNil(t, client.Products())
		assert.NotNil(t, client.Ads())
		assert.NotNil(t, client.TransactionHistories())
		assert.NotNil(t, client.CurrencyHistories())
		assert.NotNil(t, client.Auth())
	})
}

func TestNew_FetchCSRFOnInit(t *testing.T) {
	t.Parallel()

	var primed atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/get-csrf-cookie" {
			primed.Store(true)

			http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "abc", Path: "/"})
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := New(context.Background(), &admin.Config{APIEndpoint: server.URL, FetchCSRFOnInit: true})
	require.NoError(t, err)
	assert.True(t, primed.Load())
	assert.Equal(t, "abc", client.HTTPClient().CSRFToken())
}

func TestClient_UnauthorizedFlipsSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
	}))
	defer server.Close()

	session := admin.NewSession()
	session.Authenticate()

	client, err := New(context.Background(), &admin.Config{APIEndpoint: server.URL, Session: session})
	require.NoError(t, err)

	_, err = client.Vouchers().Index(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, admin.IsUnauthorized(err))
	assert.False(t, session.IsLoggedIn())
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	logger := &capturingLogger{}

	client, err := New(context.Background(), &admin.Config{APIEndpoint: server.URL, Logger: logger, Debug: true})
	require.NoError(t, err)

	_, err = client.Skins().Index(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, logger.Messages(), "HTTP Request")
	assert.Contains(t, logger.Messages(), "HTTP Response")
	assert.Contains(t, logger.Messages(), "admin request")
	assert.Contains(t, logger.Messages(), "admin response")
}

func TestClient_DebugLoggingReportsValidation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"The name field is required.","errors":{"name":["The name field is required."]}}`))
	}))
	defer server.Close()

	logger := &capturingLogger{}

	client, err := New(context.Background(), &admin.Config{APIEndpoint: server.URL, Logger: logger, Debug: true})
	require.NoError(t, err)

	_, err = client.Skins().Store(context.Background(), map[string]interface{}{"name": ""})
	require.Error(t, err)
	assert.True(t, admin.IsValidation(err))
	assert.Contains(t, logger.Messages(), "admin validation failed")
}

func TestClient_QuietWithoutDebug(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	logger := &capturingLogger{}

	client, err := New(context.Background(), &admin.Config{APIEndpoint: server.URL, Logger: logger})
	require.NoError(t, err)

	_, err = client.Skins().Index(context.Background(), nil)
	require.NoError(t, err)
	assert.NotContains(t, logger.Messages(), "admin request")
}
