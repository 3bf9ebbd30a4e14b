package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// AuthClient implements admin.AuthClient.
type AuthClient struct {
	httpClient *http.Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
	}
}

// CSRFCookie implements admin.AuthClient.CSRFCookie.
func (c *AuthClient) CSRFCookie(ctx context.Context) error {
	_, err := c.httpClient.Get(ctx, "get-csrf-cookie", nil)
	if err != nil {
		return fmt.Errorf("fetching CSRF cookie: %w", err)
	}

	return nil
}

// Login implements admin.AuthClient.Login. The user is read from a "user" or
// "data" envelope or from the bare body; it is nil when the backend
// acknowledges the login without one.
func (c *AuthClient) Login(ctx context.Context, credentials *admin.LoginRequest) (*admin.User, error) {
	resp, err := c.httpClient.Post(ctx, "login", credentials)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	if len(resp.Body) == 0 {
		return nil, nil //nolint:nilnil // empty acknowledgement
	}

	var envelope struct {
		User *admin.User `json:"user"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err == nil && envelope.User != nil {
		return envelope.User, nil
	}

	user, err := decodeData[admin.User](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing login response: %w", err)
	}

	if user.ID == 0 && user.Email == "" {
		return nil, nil //nolint:nilnil // acknowledgement without a user
	}

	return user, nil
}

// Logout implements admin.AuthClient.Logout.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.httpClient.Post(ctx, "logout", nil)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

var _ admin.AuthClient = (*AuthClient)(nil)
