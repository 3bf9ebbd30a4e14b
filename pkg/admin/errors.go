package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError represents a non-2xx response from the admin API.
type APIError struct {
	StatusCode int                 `json:"-"                yaml:"status_code"`
	Message    string              `json:"message"          yaml:"message"`
	Errors     map[string][]string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s (status: %d)", message, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d): %s", message, e.StatusCode, joinFieldErrors(e.Errors))
}

// FieldErrors returns the messages reported for a single field.
func (e *APIError) FieldErrors(field string) []string {
	return e.Errors[field]
}

// ValidationError is returned when a request fails local validation before
// it is sent.
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + joinFieldErrors(e.Fields)
}

func joinFieldErrors(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+strings.Join(fields[key], ", "))
	}

	return strings.Join(parts, "; ")
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired            = errors.New("config is required")
	ErrAPIEndpointRequired       = errors.New("API endpoint is required")
	ErrInvalidTimestamp          = errors.New("invalid timestamp")
	ErrNotLoggedIn               = errors.New("not logged in")
	ErrAlreadyLoggedIn           = errors.New("already logged in")
	ErrSessionRequired           = errors.New("session is required")
	ErrNoAPIsConfigured          = errors.New("no APIs configured")
	ErrAPINotFound               = errors.New("API not found")
	ErrAPIAlreadyExists          = errors.New("API already exists")
	ErrCurrentAPINotFound        = errors.New("current API not found in configuration")
	ErrAPINameOrEndpointRequired = errors.New("API name or endpoint is required")
	ErrNoAPIEndpointConfigured   = errors.New("no API endpoint configured")
	ErrUnknownConfigKey          = errors.New("unknown configuration key")
	ErrSkipTLSOnlyInDev          = errors.New("skipTLS is only allowed in development environments")
	ErrInvalidResourceID         = errors.New("invalid resource id")
	ErrUnsupportedOperation      = errors.New("operation not supported by this resource")
)

func statusOf(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsValidation checks if the error carries field validation messages, either
// a 422 from the API or a local ValidationError.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}
	if errors.As(err, &validationErr) {
		return true
	}

	return statusOf(err) == http.StatusUnprocessableEntity
}

// ParseAPIError builds an APIError from a response status and body. Bodies
// that are not JSON are kept as the message.
func ParseAPIError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	if len(data) == 0 {
		return apiErr
	}

	err := json.Unmarshal(data, apiErr)
	if err != nil {
		apiErr.Message = strings.TrimSpace(string(data))
	}

	return apiErr
}
