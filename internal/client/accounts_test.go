package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

func TestAddressesClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/addresses", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"data":[{"id":1,"ip_address":"10.0.0.1","country":"ID"}]}`))
		case http.MethodPost:
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Empty(t, body)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data":{"id":2,"ip_address":"10.0.0.2","country":"SG"}}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	addresses := NewTestClient(t, server.URL).Addresses()

	list, err := addresses.Index(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "10.0.0.1", list.Data[0].IPAddress)

	created, err := addresses.Store(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.Equal(t, "SG", created.Country)
}

func TestUsersClient_Store(t *testing.T) {
	RunStoreTests(t, []TestWriteOperation{
		{
			Name:         "creates admin",
			Request:      &admin.UserCreateRequest{Email: "ops@example.com", Password: "secret", Role: "admin", FullName: "Ops"},
			ExpectedPath: "/api/admin/users",
			ExpectedBody: `{"email":"ops@example.com","password":"secret","role":"admin","full_name":"Ops"}`,
			StatusCode:   http.StatusCreated,
			Response: admin.DataResponse[admin.User]{Data: admin.User{
				ID: 5, Email: "ops@example.com", Role: "admin", Profile: &admin.Profile{FullName: "Ops"},
			}},
		},
		{
			Name:         "duplicate email",
			Request:      &admin.UserCreateRequest{Email: "ops@example.com"},
			ExpectedPath: "/api/admin/users",
			StatusCode:   http.StatusUnprocessableEntity,
			Response: map[string]interface{}{
				"message": "The email has already been taken.",
				"errors":  map[string][]string{"email": {"The email has already been taken."}},
			},
			WantErr:    true,
			ErrMessage: "creating user",
		},
	}, func(c *Client) func(context.Context, any) (*admin.User, error) {
		return c.Users().Store
	})
}

func TestGameUsersClient_ValidationError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"The given data was invalid.","errors":{"username":["The username has already been taken."]}}`))
	}))
	defer server.Close()

	_, err := NewTestClient(t, server.URL).GameUsers().Store(context.Background(), &admin.GameUserCreateRequest{Username: "taken"})
	require.Error(t, err)
	assert.True(t, admin.IsValidation(err))

	var apiErr *admin.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"The username has already been taken."}, apiErr.FieldErrors("username"))
}
