package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrRequestFailed is wrapped by every error caused by a non-2xx response.
var ErrRequestFailed = errors.New("request failed")

// StatusError reports a non-successful HTTP status from the backend.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: request failed (status %d)", e.Method, e.URL, e.StatusCode)
}

// Unwrap lets callers match with errors.Is(err, ErrRequestFailed).
func (e *StatusError) Unwrap() error {
	return ErrRequestFailed
}

// Endpoints holds the request path for each backend operation. A path may
// also be an absolute URL, in which case the client's base URL is ignored.
type Endpoints struct {
	DashboardData  string
	Settings       string
	Categories     string
	DeleteCategory string
	Panel          string
	PanelSet       string
}

// DefaultEndpoints returns the paths served by the bundled backend.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		DashboardData:  "/api/dashboard-data",
		Settings:       "/api/settings",
		Categories:     "/api/categories",
		DeleteCategory: "/api/categories/delete",
		Panel:          "/api/post-panel",
		PanelSet:       "/api/post-panelset",
	}
}

// requestIDHeader carries a per-request correlation id.
const requestIDHeader = "X-Request-ID"

// Client talks to the dashboard backend over HTTP.
type Client struct {
	baseURL    string
	endpoints  Endpoints
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoints overrides the default endpoint paths.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) {
		c.endpoints = e
	}
}

// WithHTTPClient replaces the underlying HTTP client. A nil client keeps
// the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a backend client. An empty baseURL issues requests to
// the endpoint paths as-is, which only works for absolute endpoints.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		endpoints:  DefaultEndpoints(),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSnapshot loads the dashboard state, scoped to guildID when non-empty.
func (c *Client) FetchSnapshot(ctx context.Context, guildID ID) (*Snapshot, error) {
	var query url.Values
	if guildID != "" {
		query = url.Values{"guild_id": {string(guildID)}}
	}
	var snap Snapshot
	if err := c.get(ctx, c.endpoints.DashboardData, query, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveSettings persists guild settings.
func (c *Client) SaveSettings(ctx context.Context, payload SettingsPayload) error {
	return c.post(ctx, c.endpoints.Settings, payload, nil)
}

// CreateCategory adds a ticket category.
func (c *Client) CreateCategory(ctx context.Context, payload CategoryPayload) error {
	return c.post(ctx, c.endpoints.Categories, payload, nil)
}

// DeleteCategory removes a ticket category.
func (c *Client) DeleteCategory(ctx context.Context, payload DeleteCategoryPayload) error {
	return c.post(ctx, c.endpoints.DeleteCategory, payload, nil)
}

// PostPanel asks the bot to post a panel. The settings kind goes to the
// panel endpoint; every other kind goes to the public panelset endpoint.
func (c *Client) PostPanel(ctx context.Context, kind PanelKind, payload PanelPayload) error {
	path := c.endpoints.PanelSet
	if kind == PanelSettings {
		path = c.endpoints.Panel
	}
	return c.post(ctx, path, payload, nil)
}

// resolve joins the base URL and an endpoint path.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.resolve(path)
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload := []byte("{}")
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = b
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("api request failed", "method", req.Method, "url", req.URL.String(), "request_id", requestID, "error", err)
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	slog.Debug("api request",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
