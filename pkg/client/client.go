// Package client is a Go client for the item service REST API. It covers
// the item CRUD surface plus the health endpoint, with pluggable
// authentication schemes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithCredentials attaches an authentication scheme to every request.
func WithCredentials(creds Credentials) Option {
	return func(c *Client) { c.creds = creds }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, "/api/v1/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, "/api/v1/items/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) ListItems(ctx context.Context, opts ListOptions) (*ItemPage, error) {
	query := url.Values{}
	if opts.StartPage > 0 {
		query.Set("start_page", strconv.Itoa(opts.StartPage))
	}
	if opts.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(opts.PageSize))
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	path := "/api/v1/items"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page ItemPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPut, "/api/v1/items/"+url.PathEscape(id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/items/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) login(ctx context.Context, username, password string) (*tokenResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var tokens tokenResponse
	if err := c.doOnce(ctx, http.MethodPost, "/auth/login", body, &tokens, nil); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *Client) refreshTokens(ctx context.Context, refreshToken string) (*tokenResponse, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var tokens tokenResponse
	if err := c.doOnce(ctx, http.MethodPost, "/auth/refresh", body, &tokens, nil); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// do executes a request with credentials attached, retrying once if the
// scheme recovers from a 401.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	err := c.doOnce(ctx, method, path, body, out, c.creds)
	if c.creds == nil {
		return err
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		return err
	}
	retry, authErr := c.creds.handleUnauthorized(ctx, c)
	if authErr != nil {
		return authErr
	}
	if !retry {
		return err
	}
	return c.doOnce(ctx, method, path, body, out, c.creds)
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out any, creds Credentials) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds != nil {
		if err := creds.apply(ctx, c, req); err != nil {
			return err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
