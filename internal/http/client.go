package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/publicsuffix"
)

// Request is a call against the admin API. Path is relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   *admin.Query
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the shared transport for every resource client. It keeps the
// session cookies in a jar, forwards the CSRF cookie as a header and runs the
// interceptor chain around each call.
type Client struct {
	baseURL      *url.URL
	httpClient   *retryablehttp.Client
	jar          http.CookieJar
	interceptors *admin.InterceptorChain
	logger       admin.Logger
	debug        bool
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry messages.
func WithLogger(logger admin.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		if logger != nil {
			c.httpClient.Logger = &leveledLogger{logger: logger}
		}
	}
}

// WithDebug logs every request and response through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables retries of 429 and 5xx responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithCookieJar replaces the in-memory cookie jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		if jar != nil {
			c.jar = jar
			c.httpClient.HTTPClient.Jar = jar
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithInsecureSkipVerify disables certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		transport := cleanhttp.DefaultPooledTransport()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for local backends
		c.httpClient.HTTPClient.Transport = transport
	}
}

// WithSession revokes session whenever a response comes back 401.
func WithSession(session *admin.Session) Option {
	return func(c *Client) {
		if session != nil {
			c.interceptors.AddResponseInterceptor(admin.UnauthorizedInterceptor(session))
		}
	}
}

// WithInterceptors appends the interceptors of chain.
func WithInterceptors(request []admin.RequestInterceptor, response []admin.ResponseInterceptor) Option {
	return func(c *Client) {
		for _, interceptor := range request {
			c.interceptors.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range response {
			c.interceptors.AddResponseInterceptor(interceptor)
		}
	}
}

// NewClient creates a client for baseURL, e.g. "https://admin.example.com/api".
// Retries are disabled unless WithRetryConfig is given.
func NewClient(baseURL string, opts ...Option) *Client {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		parsed = &url.URL{Path: baseURL}
	}

	// cookiejar.New never fails with non-nil options.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.CheckRetry = retryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient = &http.Client{
		Jar:       jar,
		Timeout:   constants.DefaultHTTPTimeout,
		Transport: cleanhttp.DefaultPooledTransport(),
	}

	client := &Client{
		baseURL:      parsed,
		httpClient:   retryClient,
		jar:          jar,
		interceptors: admin.NewInterceptorChain(),
		userAgent:    constants.DefaultUserAgent,
	}

	client.interceptors.AddRequestInterceptor(client.forwardCSRFToken)

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the URL every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Jar returns the cookie jar holding the session.
func (c *Client) Jar() http.CookieJar {
	return c.jar
}

// Do sends req. For non-2xx responses both the response and an *admin.APIError
// are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte

	if req.Body != nil {
		var err error

		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	intercepted := &admin.Request{
		Method:   req.Method,
		Path:     req.Path,
		RawQuery: req.Query.Encode(),
		Headers:  make(http.Header),
		Body:     body,
	}

	intercepted.Headers.Set("Accept", "application/json")
	intercepted.Headers.Set("X-Requested-With", "XMLHttpRequest")
	intercepted.Headers.Set("User-Agent", c.userAgent)

	if body != nil {
		intercepted.Headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, c.resolve(intercepted), rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header = intercepted.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": httpReq.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"size":   len(respBody),
		})
	}

	var apiErr *admin.APIError
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr = admin.ParseAPIError(resp.StatusCode, respBody)
	}

	interceptedResp := &admin.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
	if apiErr != nil {
		interceptedResp.Error = apiErr
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp)
	if err != nil {
		return resp, err
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query *admin.Query) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put sends a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch sends a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// CSRFToken returns the decoded CSRF token held in the jar, if any.
func (c *Client) CSRFToken() string {
	for _, cookie := range c.jar.Cookies(c.baseURL) {
		if cookie.Name != constants.CSRFCookieName {
			continue
		}

		token, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			return cookie.Value
		}

		return token
	}

	return ""
}

func (c *Client) forwardCSRFToken(ctx context.Context, req *admin.Request) error {
	token := c.CSRFToken()
	if token != "" {
		req.Headers.Set(constants.CSRFHeaderName, token)
	}

	return nil
}

func (c *Client) resolve(req *admin.Request) string {
	resolved := *c.baseURL
	resolved.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(req.Path, "/")
	resolved.RawPath = ""
	resolved.RawQuery = requestTargetSafe(req.RawQuery)

	return resolved.String()
}

// requestTargetSafe percent-encodes the bytes that cannot appear in an HTTP
// request line. Everything else, including '&' and '=', is sent as written.
func requestTargetSafe(rawQuery string) string {
	var builder strings.Builder

	for i := 0; i < len(rawQuery); i++ {
		char := rawQuery[i]
		if char <= ' ' || char >= 0x7f || char == '#' {
			_, _ = fmt.Fprintf(&builder, "%%%02X", char)

			continue
		}

		builder.WriteByte(char)
	}

	return builder.String()
}

func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	if resp.StatusCode >= http.StatusInternalServerError && resp.StatusCode != http.StatusNotImplemented {
		return true, nil
	}

	return false, nil
}

// leveledLogger adapts admin.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger admin.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2) //nolint:mnd // pairs

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

