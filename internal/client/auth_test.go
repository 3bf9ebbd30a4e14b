package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

func newAuthServer(t *testing.T, loginBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/get-csrf-cookie", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "tok%3D", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "tok=", r.Header.Get("X-XSRF-TOKEN"))

		var credentials admin.LoginRequest

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))

		if credentials.Password != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"These credentials do not match our records."}`))

			return
		}

		http.SetCookie(w, &http.Cookie{Name: "admin_session", Value: "s1", Path: "/"})

		if loginBody == "" {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(loginBody))
	})
	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		cookie, err := r.Cookie("admin_session")
		if assert.NoError(t, err) {
			assert.Equal(t, "s1", cookie.Value)
		}

		w.WriteHeader(http.StatusNoContent)
	})

	return httptest.NewServer(mux)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestAuthClient(t *testing.T) {
	t.Parallel()

	t.Run("login returns user", func(t *testing.T) {
		t.Parallel()

		server := newAuthServer(t, `{"user":{"id":1,"email":"ops@example.com","role":"admin","profile":{"full_name":"Ops"}}}`)
		defer server.Close()

		auth := NewTestClient(t, server.URL).Auth()
		require.NoError(t, auth.CSRFCookie(context.Background()))

		user, err := auth.Login(context.Background(), &admin.LoginRequest{Email: "ops@example.com", Password: "secret"})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "ops@example.com", user.Email)
		assert.Equal(t, "Ops", user.UserProfile().FullName)

		require.NoError(t, auth.Logout(context.Background()))
	})

	t.Run("login unwraps data envelope", func(t *testing.T) {
		t.Parallel()

		server := newAuthServer(t, `{"data":{"id":2,"email":"mod@example.com","role":"moderator"}}`)
		defer server.Close()

		auth := NewTestClient(t, server.URL).Auth()
		require.NoError(t, auth.CSRFCookie(context.Background()))

		user, err := auth.Login(context.Background(), &admin.LoginRequest{Email: "mod@example.com", Password: "secret"})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 2, user.ID)
	})

	t.Run("login without body", func(t *testing.T) {
		t.Parallel()

		server := newAuthServer(t, "")
		defer server.Close()

		auth := NewTestClient(t, server.URL).Auth()
		require.NoError(t, auth.CSRFCookie(context.Background()))

		user, err := auth.Login(context.Background(), &admin.LoginRequest{Email: "ops@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()

		server := newAuthServer(t, "")
		defer server.Close()

		auth := NewTestClient(t, server.URL).Auth()
		require.NoError(t, auth.CSRFCookie(context.Background()))

		user, err := auth.Login(context.Background(), &admin.LoginRequest{Email: "ops@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "These credentials do not match our records.")
	})
}
