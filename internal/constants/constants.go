package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".gamectl"

	// ConfigFileName is the CLI config file inside ConfigDirName.
	ConfigFileName = "config.yml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "GAMECTL"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// NATSConnectTimeout bounds the connection to the toast broker.
	NATSConnectTimeout = 5 * time.Second

	// NATSFlushTimeout bounds the flush after publishing toasts.
	NATSFlushTimeout = 2 * time.Second
)

// Retry and concurrency limits.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// DefaultConcurrencyLimit limits concurrent bulk operations.
	DefaultConcurrencyLimit = 3
)

// API constants.
const (
	// DefaultAPIPrefix is appended to the backend endpoint for every call.
	DefaultAPIPrefix = "/api"

	// CSRFCookieName is the cookie the backend sets with the CSRF token.
	CSRFCookieName = "XSRF-TOKEN"

	// CSRFHeaderName is the header the CSRF token is forwarded in.
	CSRFHeaderName = "X-XSRF-TOKEN"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "gameadmin-go/1.0"

	// DevModeEnvVar enables development-only settings such as skipping TLS checks.
	DevModeEnvVar = "GAMEADMIN_DEV_MODE"
)

// Pagination and display limits.
const (
	// MaxPageSize is the largest page size the CLI accepts.
	MaxPageSize = 100

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 40
)

// Toast constants.
const (
	// DefaultToastSubject is the NATS subject toasts are published on.
	DefaultToastSubject = "gameadmin.toasts"
)

// Validation and limits.
const (
	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2

	// KeyValueParts is the number of parts in a key=value argument.
	KeyValueParts = 2
)

// UI and display constants.
const (
	// CheckMarkSymbol is used to indicate current/active items.
	CheckMarkSymbol = "✓"

	// CrossMarkSymbol is used to indicate failures.
	CrossMarkSymbol = "✗"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// CRUD operation constants.
const (
	// OperationList for list operations.
	OperationList = "list"

	// OperationGet for show operations.
	OperationGet = "get"

	// OperationCreate for create operations.
	OperationCreate = "create"

	// OperationUpdate for update operations.
	OperationUpdate = "update"

	// OperationDelete for delete operations.
	OperationDelete = "delete"

	// OperationRestore for restore operations.
	OperationRestore = "restore"

	// OperationPurge for permanent delete operations.
	OperationPurge = "purge"
)
