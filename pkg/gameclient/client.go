package gameclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/gameadmin/internal/client"
	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// New creates a new admin API client. The endpoint gets "https://" when it
// has no scheme and loses any trailing slash. config is not modified.
func New(ctx context.Context, config *admin.Config) (admin.Client, error) {
	if config == nil {
		return nil, admin.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, admin.ErrAPIEndpointRequired
	}

	if config.SkipTLSVerify && !constants.DevModeEnabled() {
		return nil, fmt.Errorf("%w (set %s=true)", admin.ErrSkipTLSOnlyInDev, constants.DevModeEnvVar)
	}

	normalized := *config
	normalized.APIEndpoint = NormalizeEndpoint(config.APIEndpoint)

	// Use the internal client implementation
	apiClient, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NormalizeEndpoint trims a trailing slash and defaults the scheme to https.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithEndpoint creates a new client with just an API endpoint and a fresh
// logged-out session.
func NewWithEndpoint(ctx context.Context, endpoint string) (admin.Client, error) {
	return New(ctx, &admin.Config{
		APIEndpoint: endpoint,
	})
}

// NewWithSession creates a client that continues an existing session: the
// session flag and the cookie jar holding the server session cookie.
func NewWithSession(ctx context.Context, endpoint string, session *admin.Session, jar http.CookieJar) (admin.Client, error) {
	return New(ctx, &admin.Config{
		APIEndpoint: endpoint,
		Session:     session,
		Jar:         jar,
	})
}
