package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	adminhttp "github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/achievements/3", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("X-XSRF-TOKEN"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": map[string]interface{}{"id": 3, "name": "First blood"}})
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL + "/api")

		resp, err := client.Do(context.Background(), &adminhttp.Request{
			Method: "GET",
			Path:   "achievements/3",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result admin.DataResponse[admin.Achievement]

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Data.ID)
		assert.Equal(t, "First blood", result.Data.Name)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/vouchers", request.URL.Path)
			assert.Equal(t, "page=2&per_page=10&search=spring%20sale", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL + "/api/")

		resp, err := client.Get(context.Background(), "/vouchers",
			admin.NewQuery().Set("page", 2).Set("per_page", 10).Set("search", "spring sale"))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Desert", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "terrains", map[string]interface{}{"name": "Desert"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"message":"The name field is required.","errors":{"name":["The name field is required."]}}`))
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "skins", map[string]string{})
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 422, resp.StatusCode)

		apiErr := &admin.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, []string{"The name field is required."}, apiErr.FieldErrors("name"))
		assert.True(t, admin.IsValidation(err))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "gamectl-test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL, adminhttp.WithUserAgent("gamectl-test"))

		resp, err := client.Do(context.Background(), &adminhttp.Request{
			Method: "GET",
			Path:   "/items",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := adminhttp.NewClient(server.URL, adminhttp.WithLogger(logger), adminhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/ads", nil)
		require.NoError(t, err)

		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*adminhttp.Client, context.Context) (*adminhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *adminhttp.Client, ctx context.Context) (*adminhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *adminhttp.Client, ctx context.Context) (*adminhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *adminhttp.Client, ctx context.Context) (*adminhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *adminhttp.Client, ctx context.Context) (*adminhttp.Response, error) {
				return c.Patch(ctx, "/test", nil)
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *adminhttp.Client, ctx context.Context) (*adminhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := adminhttp.NewClient(server.URL)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Credentials(t *testing.T) {
	t.Parallel()
	t.Run("forwards decoded CSRF cookie", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/api/get-csrf-cookie":
				http.SetCookie(writer, &http.Cookie{Name: "XSRF-TOKEN", Value: "abc%3D%3D", Path: "/"})
				http.SetCookie(writer, &http.Cookie{Name: "game_session", Value: "s3ss10n", Path: "/"})
				writer.WriteHeader(http.StatusNoContent)
			case "/api/login":
				assert.Equal(t, "abc==", request.Header.Get("X-XSRF-TOKEN"))

				cookie, err := request.Cookie("game_session")
				assert.NoError(t, err)
				assert.Equal(t, "s3ss10n", cookie.Value)

				writer.WriteHeader(http.StatusOK)
			default:
				writer.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL + "/api")

		_, err := client.Get(context.Background(), "get-csrf-cookie", nil)
		require.NoError(t, err)
		assert.Equal(t, "abc==", client.CSRFToken())

		resp, err := client.Post(context.Background(), "login", map[string]string{"email": "ops@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("shares jar across clients", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path == "/api/get-csrf-cookie" {
				http.SetCookie(writer, &http.Cookie{Name: "XSRF-TOKEN", Value: "shared", Path: "/"})

				return
			}

			assert.Equal(t, "shared", request.Header.Get("X-XSRF-TOKEN"))
		}))
		defer server.Close()

		first := adminhttp.NewClient(server.URL + "/api")
		second := adminhttp.NewClient(server.URL+"/api", adminhttp.WithCookieJar(first.Jar()))

		_, err := first.Get(context.Background(), "get-csrf-cookie", nil)
		require.NoError(t, err)

		_, err = second.Get(context.Background(), "terrains", nil)
		require.NoError(t, err)
	})
}

func TestClient_UnauthorizedRevokesSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		_, _ = writer.Write([]byte(`{"message":"Unauthenticated."}`))
	}))
	defer server.Close()

	session := admin.NewSession()
	session.Authenticate()

	client := adminhttp.NewClient(server.URL, adminhttp.WithSession(session))

	resp, err := client.Get(context.Background(), "/gameusers", nil)
	require.Error(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.True(t, admin.IsUnauthorized(err))
	assert.JSONEq(t, `{"message":"Unauthenticated."}`, string(resp.Body))
	assert.False(t, session.IsLoggedIn())
}

func TestClient_InterceptorsSeeRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "yes", request.Header.Get("X-Intercepted"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var seenStatus atomic.Int32

	client := adminhttp.NewClient(server.URL, adminhttp.WithInterceptors(
		[]admin.RequestInterceptor{admin.HeaderInterceptor(map[string]string{"X-Intercepted": "yes"})},
		[]admin.ResponseInterceptor{func(ctx context.Context, req *admin.Request, resp *admin.Response) error {
			seenStatus.Store(int32(resp.StatusCode)) //nolint:gosec // status codes fit

			return nil
		}},
	))

	_, err := client.Get(context.Background(), "/missions", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(200), seenStatus.Load())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL, adminhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL, adminhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := adminhttp.NewClient(server.URL, adminhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}
