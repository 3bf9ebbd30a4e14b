package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

func TestAdsClient_Update(t *testing.T) {
	RunUpdateTests(t, []TestWriteOperation{
		{
			Name:         "updates",
			ID:           3,
			Request:      map[string]interface{}{"is_active": false},
			ExpectedPath: "/api/ads/3",
			ExpectedBody: `{"is_active":false}`,
			Response:     admin.DataResponse[admin.Ad]{Data: admin.Ad{ID: 3, Name: "banner"}},
		},
		{
			Name:         "validation failure",
			ID:           4,
			Request:      map[string]interface{}{"reward": -1},
			ExpectedPath: "/api/ads/4",
			ExpectedBody: `{"reward":-1}`,
			StatusCode:   http.StatusUnprocessableEntity,
			Response: map[string]interface{}{
				"message": "The reward must be at least 0.",
				"errors":  map[string][]string{"reward": {"The reward must be at least 0."}},
			},
			WantErr:    true,
			ErrMessage: "The reward must be at least 0.",
		},
	}, func(c *Client) func(context.Context, int, any) (*admin.Ad, error) {
		return c.Ads().Update
	})
}

func TestCurrenciesClient_Update(t *testing.T) {
	RunUpdateTests(t, []TestWriteOperation{
		{
			Name:         "updates",
			ID:           5,
			Request:      map[string]interface{}{"currency_value": 250},
			ExpectedPath: "/api/currencies/5",
			ExpectedBody: `{"currency_value":250}`,
			Response:     admin.DataResponse[admin.Currency]{Data: admin.Currency{ID: 5, CurrencyValue: 250}},
		},
	}, func(c *Client) func(context.Context, int, any) (*admin.Currency, error) {
		return c.Currencies().Update
	})
}

func TestAdsClient_SoftDelete(t *testing.T) {
	t.Run("Delete", func(t *testing.T) {
		RunDeleteTests(t, []TestDeleteOperation{
			{Name: "trashes", ID: 2, ExpectedPath: "/api/ads/2", StatusCode: http.StatusNoContent},
		}, func(c *Client) func(context.Context, int) error {
			return c.Ads().Delete
		})
	})

	t.Run("PermanentDelete", func(t *testing.T) {
		RunDeleteTests(t, []TestDeleteOperation{
			{
				Name:         "purges",
				ID:           2,
				ExpectedPath: "/api/ads/permanentDestroy/2",
				StatusCode:   http.StatusOK,
				Response:     admin.MessageResponse{Message: "Ad permanently deleted"},
			},
			{
				Name:         "missing",
				ID:           99,
				ExpectedPath: "/api/ads/permanentDestroy/99",
				StatusCode:   http.StatusNotFound,
				WantErr:      true,
				ErrMessage:   "permanently deleting ad 99",
			},
		}, func(c *Client) func(context.Context, int) error {
			return c.Ads().PermanentDelete
		})
	})

	t.Run("Restore", func(t *testing.T) {
		RunDeleteTests(t, []TestDeleteOperation{
			{
				Name:           "restores",
				ID:             2,
				ExpectedPath:   "/api/ads/restore/2",
				ExpectedMethod: http.MethodPatch,
				Response:       admin.MessageResponse{Message: "Ad restored"},
			},
		}, func(c *Client) func(context.Context, int) error {
			return c.Ads().Restore
		})
	})
}

func TestAdsClient_IndexTrashed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ads", r.URL.Path)
		assert.Equal(t, "page=1&per_page=10", r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "name": "banner", "ad_type": "banner", "reward": 0, "is_active": true, "deleted_at": null},
				{"id": 2, "name": "video", "ad_type": "rewarded", "reward": 50, "is_active": false, "deleted_at": "2024-05-01T10:00:00.000000Z"}
			],
			"links": {"first": null, "last": null, "prev": null, "next": null},
			"meta": {"current_page": 1, "from": 1, "last_page": 1, "per_page": 10, "to": 2, "total": 2}
		}`))
	}))
	defer server.Close()

	pagination := admin.NewPaginationState()

	ads, err := NewTestClient(t, server.URL).Ads().Index(context.Background(), pagination.Query())
	require.NoError(t, err)
	require.Len(t, ads.Data, 2)
	assert.False(t, ads.Data[0].IsTrashed())
	assert.True(t, ads.Data[1].IsTrashed())
	assert.False(t, ads.HasNext())
	assert.Equal(t, 2, ads.Meta.Total)
}

func TestProductsClient_Lookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		call func(admin.ProductsClient, context.Context) (*admin.ListResponse[admin.Product], error)
	}{
		{"items", "/api/products/items", admin.ProductsClient.Items},
		{"products", "/api/products/products", admin.ProductsClient.Products},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"data":[{"id":1,"code":"GEM100","name":"100 gems","price":0.99,"product_type":"currency"}]}`))
			}))
			defer server.Close()

			products, err := tt.call(NewTestClient(t, server.URL).Products(), context.Background())
			require.NoError(t, err)
			require.Len(t, products.Data, 1)
			assert.Equal(t, "GEM100", products.Data[0].Code)
			assert.InDelta(t, 0.99, products.Data[0].Price, 0.0001)
		})
	}
}

func TestCurrenciesClient_StoreNestedProduct(t *testing.T) {
	RunStoreTests(t, []TestWriteOperation{
		{
			Name: "nests product",
			Request: &admin.CurrencyRequest{
				CurrencyType:  "gem",
				CurrencyValue: 100,
				Product: &admin.ProductRequest{
					Code: "GEM100", Name: "100 gems", Price: 0.99, Description: "gems", IsActive: true, ProductType: "currency",
				},
			},
			ExpectedPath: "/api/currencies",
			ExpectedBody: `{"currency_type":"gem","currency_value":100,"product":{"code":"GEM100","name":"100 gems",` +
				`"price":0.99,"description":"gems","is_active":true,"product_type":"currency"}}`,
			StatusCode: http.StatusCreated,
			Response:   admin.DataResponse[admin.Currency]{Data: admin.Currency{ID: 1, CurrencyType: "gem", CurrencyValue: 100}},
		},
	}, func(c *Client) func(context.Context, any) (*admin.Currency, error) {
		return c.Currencies().Store
	})
}
