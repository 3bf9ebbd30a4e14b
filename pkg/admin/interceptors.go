package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// Request represents an HTTP request that can be intercepted.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Response represents an HTTP response that can be intercepted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received, including
// error responses.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors in order.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in order.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// UnauthorizedInterceptor revokes session when the backend answers 401. It
// only touches the flag when it is set and never turns the response into a
// different error: the caller still receives the 401.
func UnauthorizedInterceptor(session *Session) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		if resp.StatusCode == http.StatusUnauthorized && session.IsLoggedIn() {
			session.Revoke()
		}

		return nil
	}
}

// RequestLogInterceptor reports each admin call before it is sent.
func RequestLogInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		fields := map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		}

		if req.RawQuery != "" {
			fields["query"] = req.RawQuery
		}

		if len(req.Body) > 0 {
			fields["bytes"] = len(req.Body)
		}

		logger.Debug("admin request", fields)

		return nil
	}
}

// ResponseLogInterceptor reports the outcome of each admin call. Rejected
// sessions and validation failures are warnings, other API errors are errors.
func ResponseLogInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"status": resp.StatusCode,
		}

		switch {
		case resp.Error == nil:
			logger.Debug("admin response", fields)
		case IsUnauthorized(resp.Error):
			logger.Warn("admin session rejected", fields)
		case IsValidation(resp.Error):
			apiErr := &APIError{}
			if errors.As(resp.Error, &apiErr) {
				fields["fields"] = fieldNames(apiErr.Errors)
			}

			logger.Warn("admin validation failed", fields)
		default:
			fields["error"] = resp.Error.Error()
			logger.Error("admin request failed", fields)
		}

		return nil
	}
}

func fieldNames(fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}
