package constants

import "errors"

// API and configuration errors.
var (
	ErrNoAPIsConfigured  = errors.New("no APIs configured, use 'gamectl apis add' to add one")
	ErrAPIConfigNotFound = errors.New("API configuration not found")
	ErrSSLOnlyInDev      = errors.New("skipSSL is only allowed in development environments (set GAMEADMIN_DEV_MODE=true)")
)

// Validation errors.
var (
	ErrInvalidKeyValue    = errors.New("expected key=value")
	ErrInvalidID          = errors.New("invalid id, expected a positive integer")
	ErrPayloadRequired    = errors.New("a payload is required, use --file or --set")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidPage        = errors.New("invalid page, expected a positive integer")
	ErrInvalidOutput      = errors.New("invalid output format")
	ErrConflictingPagerOp = errors.New("--next, --prev and --page are mutually exclusive")
	ErrPageSizeWithStep   = errors.New("--per-page restarts at page 1 and cannot be combined with --next or --prev")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrAPIAlreadyExists   = errors.New("API already exists")
	ErrInvalidEndpoint    = errors.New("invalid endpoint")
	ErrNoPreviousPage     = errors.New("already on the first page")
	ErrNoNextPage         = errors.New("already on the last page")
)

// Operation errors.
var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
