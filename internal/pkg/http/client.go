package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "apikey"
	// RequestIDHeader carries the request id to upstream services
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 512
)

type requestIDKey struct{}

// ContextWithRequestID returns ctx carrying requestID for outgoing requests
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Config configures a Client
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retry   retry.Config
}

// Client is an HTTP client with API key authentication. Requests sent with
// Do go through a circuit breaker per resource. GETs bypass the breaker and
// follow the retry config only.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	apiKey     string
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	logger     *logger.ZapLogger
}

// HTTPError represents a response with an error status
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Message)
}

// IsServerError reports whether err is a 5xx response or a transport failure
func IsServerError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}

// NewClient creates a new client
func NewClient(cfg Config, l *logger.ZapLogger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	retryable := cfg.Retry.RetryableFunc
	cfg.Retry.RetryableFunc = func(err error) bool {
		return IsServerError(err) && (retryable == nil || retryable(err))
	}

	return &Client{
		httpClient: &nethttp.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		retrier:    retry.New(cfg.Retry, l),
		breakers: circuitbreaker.NewManagerWithConfig(l, func(name string) circuitbreaker.Config {
			c := circuitbreaker.DefaultConfig(name)
			c.IsFailure = IsServerError
			return c
		}),
		logger: l,
	}
}

// Do sends one request for resource and decodes a JSON response into result
func (c *Client) Do(ctx context.Context, resource, method, endpoint string, body interface{}, headers map[string]string, result interface{}) error {
	return c.breakers.Execute(ctx, resource, func(ctx context.Context) error {
		return c.do(ctx, method, endpoint, body, headers, result)
	})
}

// GetJSON performs a GET request, retrying server errors
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodGet, endpoint, nil, nil, result)
	})
}

// BreakerStats returns the state of every circuit breaker by resource
func (c *Client) BreakerStats() map[string]string {
	return c.breakers.Stats()
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, headers map[string]string, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if result == nil || resp.StatusCode == nethttp.StatusNoContent {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
