package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// UsersClient implements admin.UsersClient for admin console accounts.
type UsersClient struct {
	*ResourceClient[admin.User]
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		ResourceClient: NewResourceClient[admin.User](httpClient, "admin/users", "user"),
	}
}

// GameUsersClient implements admin.GameUsersClient for player accounts.
type GameUsersClient struct {
	*ResourceClient[admin.GameUser]
}

// NewGameUsersClient creates a new game users client.
func NewGameUsersClient(httpClient *http.Client) *GameUsersClient {
	return &GameUsersClient{
		ResourceClient: NewResourceClient[admin.GameUser](httpClient, "gameusers", "game user"),
	}
}

// AddressesClient implements admin.AddressesClient. The endpoint takes no
// query and no payload.
type AddressesClient struct {
	httpClient *http.Client
}

// NewAddressesClient creates a new addresses client.
func NewAddressesClient(httpClient *http.Client) *AddressesClient {
	return &AddressesClient{
		httpClient: httpClient,
	}
}

// Index implements admin.AddressesClient.Index.
func (c *AddressesClient) Index(ctx context.Context) (*admin.ListResponse[admin.Address], error) {
	resp, err := c.httpClient.Get(ctx, "addresses", nil)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}

	result, err := decodeList[admin.Address](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing addresses list response: %w", err)
	}

	return result, nil
}

// Store implements admin.AddressesClient.Store.
func (c *AddressesClient) Store(ctx context.Context) (*admin.Address, error) {
	resp, err := c.httpClient.Post(ctx, "addresses", nil)
	if err != nil {
		return nil, fmt.Errorf("creating address: %w", err)
	}

	result, err := decodeData[admin.Address](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing address response: %w", err)
	}

	return result, nil
}

var (
	_ admin.UsersClient     = (*UsersClient)(nil)
	_ admin.GameUsersClient = (*GameUsersClient)(nil)
	_ admin.AddressesClient = (*AddressesClient)(nil)
)
