package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// Client makes authenticated raw JSON requests to the Spotify Web API.
//
// Every request carries the caller's bearer token; the client holds no
// credentials of its own. Outbound calls share a token bucket limiter so a
// burst of tool invocations cannot trip upstream rate limits.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewClient creates a Spotify API client. A non-positive rateLimit disables
// local throttling.
func NewClient(baseURL string, httpClient *http.Client, rateLimit float64, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	limit := rate.Inf
	if rateLimit > 0 {
		limit = rate.Limit(rateLimit)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// do performs one authenticated request and decodes the JSON response into an
// open map. A 204 or empty body returns nil without error. Upstream failures
// map onto the shared error taxonomy; response bodies of failed calls are
// logged, never returned.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body any) (map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTimeout, err)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.statusError(resp, method, path)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON from upstream: %v", shared.ErrAPIRequest, err)
	}

	return payload, nil
}

// statusError translates an upstream HTTP failure to a sentinel error. The
// upstream body stays in the logs.
func (c *Client) statusError(resp *http.Response, method, path string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	c.logger.Warn("spotify API error",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"body", string(body),
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: upstream returned %d", shared.ErrAuthFailed, resp.StatusCode)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrNotFound, path)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: retry-after %s", shared.ErrRateLimited, resp.Header.Get("Retry-After"))
	default:
		return fmt.Errorf("%w: status %d on %s %s", shared.ErrAPIRequest, resp.StatusCode, method, path)
	}
}

// Get performs an authenticated GET request.
func (c *Client) Get(ctx context.Context, token, path string, query url.Values) (map[string]any, error) {
	return c.do(ctx, token, http.MethodGet, path, query, nil)
}

// Post performs an authenticated POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, token, path string, query url.Values, body any) (map[string]any, error) {
	return c.do(ctx, token, http.MethodPost, path, query, body)
}

// Put performs an authenticated PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, token, path string, query url.Values, body any) (map[string]any, error) {
	return c.do(ctx, token, http.MethodPut, path, query, body)
}

// Delete performs an authenticated DELETE request with an optional JSON body.
func (c *Client) Delete(ctx context.Context, token, path string, query url.Values, body any) (map[string]any, error) {
	return c.do(ctx, token, http.MethodDelete, path, query, body)
}
