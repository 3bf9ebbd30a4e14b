package admin

import (
	"context"
	"net/http"
	"time"
)

// Indexer lists a resource.
type Indexer[T any] interface {
	Index(ctx context.Context, query *Query) (*ListResponse[T], error)
}

// Shower fetches a single resource.
type Shower[T any] interface {
	Show(ctx context.Context, id int) (*T, error)
}

// Storer creates a resource. body is any JSON-encodable value, typically one
// of the *Request types or a free-form map.
type Storer[T any] interface {
	Store(ctx context.Context, body any) (*T, error)
}

// Updater replaces a resource.
type Updater[T any] interface {
	Update(ctx context.Context, id int, body any) (*T, error)
}

// Deleter deletes a resource. For soft-deletable resources this moves the
// record to the trash.
type Deleter interface {
	Delete(ctx context.Context, id int) error
}

// PermanentDeleter removes a soft-deleted resource for good.
type PermanentDeleter interface {
	PermanentDelete(ctx context.Context, id int) error
}

// Restorer brings a soft-deleted resource back.
type Restorer interface {
	Restore(ctx context.Context, id int) error
}

// CatalogClient is the surface of the catalogue resources that can be listed,
// created, shown and deleted but not edited.
type CatalogClient[T any] interface {
	Indexer[T]
	Storer[T]
	Shower[T]
	Deleter
}

// AchievementsClient defines operations for achievements.
type AchievementsClient interface {
	CatalogClient[Achievement]
}

// ItemsClient defines operations for items.
type ItemsClient interface {
	CatalogClient[Item]
}

// SkinsClient defines operations for skins.
type SkinsClient interface {
	CatalogClient[Skin]
}

// VouchersClient defines operations for vouchers.
type VouchersClient interface {
	CatalogClient[Voucher]
}

// TerrainsClient defines operations for terrains.
type TerrainsClient interface {
	CatalogClient[Terrain]
}

// MissionsClient defines operations for missions.
type MissionsClient interface {
	CatalogClient[Mission]
}

// UsersClient defines operations for admin accounts.
type UsersClient interface {
	CatalogClient[User]
}

// GameUsersClient defines operations for player accounts.
type GameUsersClient interface {
	CatalogClient[GameUser]
}

// CurrenciesClient defines operations for currency packs.
type CurrenciesClient interface {
	Indexer[Currency]
	Storer[Currency]
	Updater[Currency]
	Deleter
}

// ProductsClient defines operations for products.
type ProductsClient interface {
	Indexer[Product]
	Storer[Product]
	Updater[Product]
	Deleter

	// Items lists the products backing items.
	Items(ctx context.Context) (*ListResponse[Product], error)
	// Products lists the standalone products.
	Products(ctx context.Context) (*ListResponse[Product], error)
}

// AdsClient defines operations for ads.
type AdsClient interface {
	Indexer[Ad]
	Storer[Ad]
	Updater[Ad]
	Deleter
	PermanentDeleter
	Restorer
}

// AddressesClient defines operations for recorded addresses.
type AddressesClient interface {
	Index(ctx context.Context) (*ListResponse[Address], error)
	Store(ctx context.Context) (*Address, error)
}

// TransactionHistoriesClient defines operations for purchase records.
type TransactionHistoriesClient interface {
	Indexer[TransactionHistory]
}

// CurrencyHistoriesClient defines operations for currency balance records.
type CurrencyHistoriesClient interface {
	Indexer[CurrencyHistory]
}

// AuthClient defines the session endpoints.
type AuthClient interface {
	// CSRFCookie primes the cookie jar with the XSRF-TOKEN cookie.
	CSRFCookie(ctx context.Context) error
	// Login opens a server-side session and returns the signed-in account.
	Login(ctx context.Context, credentials *LoginRequest) (*User, error)
	// Logout closes the server-side session.
	Logout(ctx context.Context) error
}

// CatalogClients provides access to the game catalogue clients.
type CatalogClients interface {
	Achievements() AchievementsClient
	Items() ItemsClient
	Skins() SkinsClient
	Vouchers() VouchersClient
	Terrains() TerrainsClient
	Missions() MissionsClient
}

// AccountClients provides access to account clients.
type AccountClients interface {
	Users() UsersClient
	GameUsers() GameUsersClient
	Addresses() AddressesClient
}

// StoreClients provides access to store clients.
type StoreClients interface {
	Currencies() CurrenciesClient
	Products() ProductsClient
	Ads() AdsClient
}

// HistoryClients provides access to the read-only history clients.
type HistoryClients interface {
	TransactionHistories() TransactionHistoriesClient
	CurrencyHistories() CurrencyHistoriesClient
}

// Client is the admin API client.
type Client interface {
	CatalogClients
	AccountClients
	StoreClients
	HistoryClients

	Auth() AuthClient
	Session() *Session
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an admin.Client.
//
// The backend authenticates with a cookie session: the client keeps cookies in
// Jar, forwards the XSRF-TOKEN cookie as the X-XSRF-TOKEN header and flips
// Session to logged out whenever a request comes back 401. Pass the same Jar
// and Session across clients to share a login.
type Config struct {
	// APIEndpoint: base URL of the backend (e.g., "https://admin.example.com").
	// gameclient.New trims a trailing slash and adds "https://" if no scheme
	// is present.
	APIEndpoint string
	// APIPrefix: path appended to APIEndpoint for every call. Defaults to "/api".
	APIPrefix string

	// Session: auth state flipped by the 401 interceptor. A fresh logged-out
	// session is created when nil.
	Session *Session
	// Jar: cookie store carrying the server session and CSRF cookie. A fresh
	// in-memory jar is created when nil.
	Jar http.CookieJar

	// HTTPTimeout: per-request timeout. Zero selects the default.
	HTTPTimeout time.Duration
	// RetryMax: retries of 429/5xx responses. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// SkipTLSVerify: disables certificate checks. Only honored when
	// GAMEADMIN_DEV_MODE is "true" or "1".
	SkipTLSVerify bool
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// FetchCSRFOnInit: when true, the client primes the CSRF cookie while
	// being constructed.
	FetchCSRFOnInit bool
}
