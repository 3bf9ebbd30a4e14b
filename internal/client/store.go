package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// CurrenciesClient implements admin.CurrenciesClient.
type CurrenciesClient struct {
	*ResourceClient[admin.Currency]
}

// NewCurrenciesClient creates a new currencies client.
func NewCurrenciesClient(httpClient *http.Client) *CurrenciesClient {
	return &CurrenciesClient{
		ResourceClient: NewResourceClient[admin.Currency](httpClient, "currencies", "currency"),
	}
}

// ProductsClient implements admin.ProductsClient.
type ProductsClient struct {
	*ResourceClient[admin.Product]
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{
		ResourceClient: NewResourceClient[admin.Product](httpClient, "products", "product"),
	}
}

// Items implements admin.ProductsClient.Items.
func (c *ProductsClient) Items(ctx context.Context) (*admin.ListResponse[admin.Product], error) {
	return c.lookup(ctx, "items")
}

// Products implements admin.ProductsClient.Products.
func (c *ProductsClient) Products(ctx context.Context) (*admin.ListResponse[admin.Product], error) {
	return c.lookup(ctx, "products")
}

func (c *ProductsClient) lookup(ctx context.Context, kind string) (*admin.ListResponse[admin.Product], error) {
	resp, err := c.httpClient.Get(ctx, c.resourcePath+"/"+kind, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s products: %w", kind, err)
	}

	result, err := decodeList[admin.Product](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s products response: %w", kind, err)
	}

	return result, nil
}

// AdsClient implements admin.AdsClient. Ads are soft deleted: Delete trashes
// an ad, Restore brings it back and PermanentDelete removes it.
type AdsClient struct {
	*ResourceClient[admin.Ad]
}

// NewAdsClient creates a new ads client.
func NewAdsClient(httpClient *http.Client) *AdsClient {
	return &AdsClient{
		ResourceClient: NewResourceClient[admin.Ad](httpClient, "ads", "ad"),
	}
}

var (
	_ admin.CurrenciesClient = (*CurrenciesClient)(nil)
	_ admin.ProductsClient   = (*ProductsClient)(nil)
	_ admin.AdsClient        = (*AdsClient)(nil)
)
