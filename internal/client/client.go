package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// Client calls the DocuAgent backend over REST.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *Metrics
	tracing    bool

	Documents *DocumentResource
	Risks     *RiskResource
	Stats     *StatsResource
	Settings  *SettingsResource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for per-request debug and failure logs.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTracing wraps the transport with OpenTelemetry instrumentation.
func WithTracing() Option {
	return func(c *Client) { c.tracing = true }
}

// New constructs a backend client. An empty baseURL falls back to DefaultBaseURL.
// No request timeout is applied; callers bound calls through their context.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracing {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc := *c.httpClient
		hc.Transport = otelhttp.NewTransport(base)
		c.httpClient = &hc
	}

	c.Documents = &DocumentResource{c: c}
	c.Risks = &RiskResource{c: c}
	c.Stats = &StatsResource{c: c}
	c.Settings = &SettingsResource{c: c}
	return c
}

// BaseURL returns the backend root every endpoint is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// RequestOptions customise a single call made through Do.
type RequestOptions struct {
	Method string
	Body   io.Reader
	// Header values override the defaults, including Content-Type.
	Header http.Header
	// ErrorMessage replaces the generic message used when the backend supplies no detail.
	ErrorMessage string
	// Route is the endpoint pattern used as the metrics label, e.g. "/documents/{id}".
	Route string
}

// Do issues exactly one request to endpoint and decodes a 2xx JSON body into out.
// When out is nil the body is discarded unread. Any other status yields *APIError;
// transport failures are returned wrapped but not normalized.
func (c *Client) Do(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	route := opts.Route
	if route == "" {
		route, _, _ = strings.Cut(endpoint, "?")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, opts.Body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range opts.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if rid := RequestIDFromContext(ctx); rid != "" && req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, rid)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(method, route, "error", time.Since(start))
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("route", route),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	latency := time.Since(start)
	c.metrics.observe(method, route, strconv.Itoa(resp.StatusCode), latency)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp, opts.ErrorMessage)
		c.logger.Warn("backend returned error",
			zap.String("method", method),
			zap.String("route", route),
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("route", route),
		zap.Int("status", resp.StatusCode),
		zap.Float64("latency", float64(latency.Microseconds())/1000),
	)

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

// itemPath joins a collection prefix and an escaped id.
func itemPath(prefix, id string) string {
	return prefix + url.PathEscape(id)
}

// withLimit appends ?limit=n when n is positive.
func withLimit(path string, limit int) string {
	if limit <= 0 {
		return path
	}
	return path + "?limit=" + strconv.Itoa(limit)
}
