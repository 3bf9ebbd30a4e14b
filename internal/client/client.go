package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/internal/http"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// Client implements the admin.Client interface.
type Client struct {
	httpClient *http.Client
	session    *admin.Session
	baseURL    string
	logger     admin.Logger

	// Resource clients
	achievements         admin.AchievementsClient
	items                admin.ItemsClient
	skins                admin.SkinsClient
	vouchers             admin.VouchersClient
	terrains             admin.TerrainsClient
	missions             admin.MissionsClient
	users                admin.UsersClient
	gameUsers            admin.GameUsersClient
	addresses            admin.AddressesClient
	currencies           admin.CurrenciesClient
	products             admin.ProductsClient
	ads                  admin.AdsClient
	transactionHistories admin.TransactionHistoriesClient
	currencyHistories    admin.CurrencyHistoriesClient
	auth                 admin.AuthClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *admin.Config, session *admin.Session) []http.Option {
	httpOpts := []http.Option{
		http.WithSession(session),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.Debug && config.Logger != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(
			[]admin.RequestInterceptor{admin.RequestLogInterceptor(config.Logger)},
			[]admin.ResponseInterceptor{admin.ResponseLogInterceptor(config.Logger)},
		))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Jar != nil {
		httpOpts = append(httpOpts, http.WithCookieJar(config.Jar))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.SkipTLSVerify && constants.DevModeEnabled() {
		httpOpts = append(httpOpts, http.WithInsecureSkipVerify(true))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// apiBaseURL joins the endpoint and the API prefix.
func apiBaseURL(config *admin.Config) string {
	prefix := config.APIPrefix
	if prefix == "" {
		prefix = constants.DefaultAPIPrefix
	}

	return strings.TrimRight(config.APIEndpoint, "/") + "/" + strings.Trim(prefix, "/")
}

// New creates a new admin API client. A session is created when the config
// carries none.
func New(ctx context.Context, config *admin.Config) (*Client, error) {
	if config == nil {
		return nil, admin.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, admin.ErrAPIEndpointRequired
	}

	session := config.Session
	if session == nil {
		session = admin.NewSession()
	}

	baseURL := apiBaseURL(config)
	httpClient := http.NewClient(baseURL, createHTTPClientOptions(config, session)...)

	client := &Client{
		httpClient: httpClient,
		session:    session,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	if config.FetchCSRFOnInit {
		err := client.auth.CSRFCookie(ctx)
		if err != nil && client.logger != nil {
			client.logger.Warn("failed to prime CSRF cookie", map[string]interface{}{"error": err.Error()})
		}
	}

	return client, nil
}

// BaseURL returns the URL every resource path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the shared transport.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Session implements admin.Client.Session.
func (c *Client) Session() *admin.Session {
	return c.session
}

// Resource client accessors

// Achievements implements admin.Client.Achievements.
func (c *Client) Achievements() admin.AchievementsClient {
	return c.achievements
}

// Items implements admin.Client.Items.
func (c *Client) Items() admin.ItemsClient {
	return c.items
}

// Skins implements admin.Client.Skins.
func (c *Client) Skins() admin.SkinsClient {
	return c.skins
}

// Vouchers implements admin.Client.Vouchers.
func (c *Client) Vouchers() admin.VouchersClient {
	return c.vouchers
}

// Terrains implements admin.Client.Terrains.
func (c *Client) Terrains() admin.TerrainsClient {
	return c.terrains
}

// Missions implements admin.Client.Missions.
func (c *Client) Missions() admin.MissionsClient {
	return c.missions
}

// Users implements admin.Client.Users.
func (c *Client) Users() admin.UsersClient {
	return c.users
}

// GameUsers implements admin.Client.GameUsers.
func (c *Client) GameUsers() admin.GameUsersClient {
	return c.gameUsers
}

// Addresses implements admin.Client.Addresses.
func (c *Client) Addresses() admin.AddressesClient {
	return c.addresses
}

// Currencies implements admin.Client.Currencies.
func (c *Client) Currencies() admin.CurrenciesClient {
	return c.currencies
}

// Products implements admin.Client.Products.
func (c *Client) Products() admin.ProductsClient {
	return c.products
}

// Ads implements admin.Client.Ads.
func (c *Client) Ads() admin.AdsClient {
	return c.ads
}

// TransactionHistories implements admin.Client.TransactionHistories.
func (c *Client) TransactionHistories() admin.TransactionHistoriesClient {
	return c.transactionHistories
}

// CurrencyHistories implements admin.Client.CurrencyHistories.
func (c *Client) CurrencyHistories() admin.CurrencyHistoriesClient {
	return c.currencyHistories
}

// Auth implements admin.Client.Auth.
func (c *Client) Auth() admin.AuthClient {
	return c.auth
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.achievements = NewAchievementsClient(c.httpClient)
	c.items = NewItemsClient(c.httpClient)
	c.skins = NewSkinsClient(c.httpClient)
	c.vouchers = NewVouchersClient(c.httpClient)
	c.terrains = NewTerrainsClient(c.httpClient)
	c.missions = NewMissionsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.gameUsers = NewGameUsersClient(c.httpClient)
	c.addresses = NewAddressesClient(c.httpClient)
	c.currencies = NewCurrenciesClient(c.httpClient)
	c.products = NewProductsClient(c.httpClient)
	c.ads = NewAdsClient(c.httpClient)
	c.transactionHistories = NewTransactionHistoriesClient(c.httpClient)
	c.currencyHistories = NewCurrencyHistoriesClient(c.httpClient)
	c.auth = NewAuthClient(c.httpClient)
}

// loggerAdapter keeps the HTTP layer decoupled from the caller's logger value.
type loggerAdapter struct {
	logger admin.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var _ admin.Client = (*Client)(nil)

// String describes the client for debug output.
func (c *Client) String() string {
	return fmt.Sprintf("admin client for %s", c.baseURL)
}
