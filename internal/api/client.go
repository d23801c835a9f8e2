// Package api implements the HTTP client for the IceCore backend. The
// cache only needs the two catalog read endpoints; everything else the
// backend offers is out of scope here.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Thiagom05/IceCore/internal/catalog"
)

// Ensure Client satisfies the cache's fetcher contract at compile time.
var _ catalog.Fetcher = (*Client)(nil)

const (
	defaultBaseURL   = "http://localhost:8080/api"
	defaultUserAgent = "icecore/0.1"
	requestTimeout   = 10 * time.Second
)

// Client talks to the IceCore backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given base URL. An empty value uses the
// default local backend; a missing scheme defaults to http. Any path prefix
// (for example /api) is preserved.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchProductTypes retrieves the sale formats from /tipos-producto.
func (c *Client) FetchProductTypes(ctx context.Context) ([]catalog.Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []catalog.Product
	if err := c.get(ctx, "tipos-producto", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchActiveFlavors retrieves the available gustos from /gustos/activos.
// The backend already filters out inactive flavors.
func (c *Client) FetchActiveFlavors(ctx context.Context) ([]catalog.Flavor, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []catalog.Flavor
	if err := c.get(ctx, "gustos/activos", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api /%s returned status %d", path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
