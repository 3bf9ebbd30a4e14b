package gameclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
	"github.com/fivetwenty-io/gameadmin/pkg/gameclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := gameclient.New(context.Background(), nil)
		require.ErrorIs(t, err, admin.ErrConfigRequired)
	})

	t.Run("requires endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := gameclient.New(context.Background(), &admin.Config{})
		require.ErrorIs(t, err, admin.ErrAPIEndpointRequired)
	})

	t.Run("does not modify config", func(t *testing.T) {
		t.Parallel()

		config := &admin.Config{APIEndpoint: "admin.example.com/"}

		client, err := gameclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "admin.example.com/", config.APIEndpoint)
	})
}

func TestNew_SkipTLSOutsideDevMode(t *testing.T) {
	t.Setenv("GAMEADMIN_DEV_MODE", "")

	_, err := gameclient.New(context.Background(), &admin.Config{APIEndpoint: "https://admin.example.com", SkipTLSVerify: true})
	require.ErrorIs(t, err, admin.ErrSkipTLSOnlyInDev)
}

func TestNew_SkipTLSInDevModeIgnoresCase(t *testing.T) {
	t.Setenv("GAMEADMIN_DEV_MODE", "TRUE")

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client, err := gameclient.New(context.Background(), &admin.Config{APIEndpoint: server.URL, SkipTLSVerify: true})
	require.NoError(t, err)

	skins, err := client.Skins().Index(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, skins.Data)
}

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"admin.example.com", "https://admin.example.com"},
		{"admin.example.com/", "https://admin.example.com"},
		{"http://localhost:8000", "http://localhost:8000"},
		{"https://admin.example.com/", "https://admin.example.com"},
		{" https://admin.example.com ", "https://admin.example.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gameclient.NormalizeEndpoint(tt.in))
		})
	}
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := gameclient.NewWithEndpoint(context.Background(), "https://admin.example.com")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.False(t, client.Session().IsLoggedIn())
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/api/terrains":
			assert.Equal(t, "page=2&per_page=10", request.URL.RawQuery)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"data":[{"id":11,"name":"Desert","is_default":false,"is_active":true}],` +
				`"links":{"first":null,"last":null,"prev":"/api/terrains?page=1","next":null},` +
				`"meta":{"current_page":2,"from":11,"last_page":2,"per_page":10,"to":11,"total":11}}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	session := admin.NewSession()
	session.Authenticate()

	client, err := gameclient.NewWithSession(context.Background(), server.URL, session, nil)
	require.NoError(t, err)

	pager := admin.NewPaginationState()
	pager.NextPage()

	terrains, err := client.Terrains().Index(context.Background(), pager.Query())
	require.NoError(t, err)
	require.Len(t, terrains.Data, 1)
	assert.Equal(t, "Desert", terrains.Data[0].Name)

	pager.UpdateFromMeta(terrains.Meta)
	assert.Equal(t, 2, pager.CurrentPage())
	assert.True(t, pager.HasPrev())
	assert.False(t, pager.HasNext())

	_, err = client.Vouchers().Show(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, admin.IsNotFound(err))
}
