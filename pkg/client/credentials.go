package client

import (
	"context"
	"net/http"
	"sync"
)

// Credentials attaches authentication to outgoing requests. Static
// schemes never retry; the password scheme re-authenticates once when the
// server answers 401.
type Credentials interface {
	apply(ctx context.Context, c *Client, req *http.Request) error
	handleUnauthorized(ctx context.Context, c *Client) (retry bool, err error)
}

type bearerToken string

// BearerToken sends a fixed token in the Authorization header.
func BearerToken(token string) Credentials {
	return bearerToken(token)
}

func (t bearerToken) apply(ctx context.Context, c *Client, req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+string(t))
	return nil
}

func (t bearerToken) handleUnauthorized(ctx context.Context, c *Client) (bool, error) {
	return false, nil
}

type apiKey string

// APIKey sends a fixed key in the X-API-Key header.
func APIKey(key string) Credentials {
	return apiKey(key)
}

func (k apiKey) apply(ctx context.Context, c *Client, req *http.Request) error {
	req.Header.Set("X-API-Key", string(k))
	return nil
}

func (k apiKey) handleUnauthorized(ctx context.Context, c *Client) (bool, error) {
	return false, nil
}

type basicAuth struct {
	username string
	password string
}

// BasicAuth sends HTTP basic credentials on every request.
func BasicAuth(username, password string) Credentials {
	return &basicAuth{username: username, password: password}
}

func (b *basicAuth) apply(ctx context.Context, c *Client, req *http.Request) error {
	req.SetBasicAuth(b.username, b.password)
	return nil
}

func (b *basicAuth) handleUnauthorized(ctx context.Context, c *Client) (bool, error) {
	return false, nil
}

type passwordCredentials struct {
	username string
	password string

	mu      sync.Mutex
	access  string
	refresh string
}

// Password logs in against the token endpoint on first use, attaches the
// issued access token, and refreshes it once when a request comes back
// 401. A failed refresh falls back to a fresh login.
func Password(username, password string) Credentials {
	return &passwordCredentials{username: username, password: password}
}

func (p *passwordCredentials) apply(ctx context.Context, c *Client, req *http.Request) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.access == "" {
		if err := p.login(ctx, c); err != nil {
			return err
		}
	}
	req.Header.Set("Authorization", "Bearer "+p.access)
	return nil
}

func (p *passwordCredentials) handleUnauthorized(ctx context.Context, c *Client) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.refresh != "" {
		tokens, err := c.refreshTokens(ctx, p.refresh)
		if err == nil {
			p.access = tokens.AccessToken
			p.refresh = tokens.RefreshToken
			return true, nil
		}
	}
	if err := p.login(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}

func (p *passwordCredentials) login(ctx context.Context, c *Client) error {
	tokens, err := c.login(ctx, p.username, p.password)
	if err != nil {
		return err
	}
	p.access = tokens.AccessToken
	p.refresh = tokens.RefreshToken
	return nil
}
