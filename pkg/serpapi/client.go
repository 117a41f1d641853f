package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultBaseURL = "https://serpapi.com/search"
	maxErrorBody   = 4096
)

// ErrMissingAPIKey is returned by Search when no credential is configured
var ErrMissingAPIKey = errors.New("serpapi: api key is not configured")

// NewClient instantiates a SerpApi client. A missing API key is not an error
// here; every Search call fails with ErrMissingAPIKey instead.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Search issues one query against the configured engine
func (c *Client) Search(ctx context.Context, params SearchParams) (*Response, error) {
	if c == nil {
		return nil, fmt.Errorf("serpapi: client is nil")
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	u, err := c.buildSearchURL(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("serpapi: API error (%d): %s", resp.StatusCode, errorMessage(body))
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("serpapi: decode response: %w", err)
	}

	// A 200 carrying an error field (e.g. "no results") is an empty document.
	return &payload, nil
}

func (c *Client) buildSearchURL(params SearchParams) (string, error) {
	if params.Engine == "" {
		return "", fmt.Errorf("serpapi: engine is required")
	}
	if strings.TrimSpace(params.Query) == "" {
		return "", fmt.Errorf("serpapi: query is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("serpapi: parse base url: %w", err)
	}

	values := u.Query()
	values.Set("engine", string(params.Engine))
	values.Set("q", params.Query)
	values.Set("api_key", c.apiKey)

	if params.TBS != "" {
		values.Set("tbs", params.TBS)
	}
	if params.Location != "" {
		values.Set("location", params.Location)
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

// errorMessage prefers the provider's JSON error field over the raw body
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
