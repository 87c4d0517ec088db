// Package auth issues and verifies the service's JWT access/refresh token
// pairs and authenticates the configured user set.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/exemplar/itemsvc/internal/serviceerr"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
	TokenType string   `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Roles        []string
}

type Config struct {
	Secret        string
	Algorithm     string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Users         []User
}

type TokenManager struct {
	secret        []byte
	method        jwt.SigningMethod
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	users         map[string]User
}

func NewTokenManager(cfg Config) (*TokenManager, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	users := make(map[string]User, len(cfg.Users))
	for _, u := range cfg.Users {
		users[u.Username] = u
	}

	return &TokenManager{
		secret:        []byte(cfg.Secret),
		method:        method,
		accessExpiry:  cfg.AccessExpiry,
		refreshExpiry: cfg.RefreshExpiry,
		users:         users,
	}, nil
}

// Authenticate checks the username/password pair against the configured
// users and returns a fresh token pair.
func (m *TokenManager) Authenticate(username, password string) (*TokenPair, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, serviceerr.AuthenticationFailed("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serviceerr.AuthenticationFailed("invalid username or password")
	}
	return m.issuePair(user)
}

// Verify parses an access token and returns its claims.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, serviceerr.AuthenticationFailed("not an access token")
	}
	return claims, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (m *TokenManager) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := m.parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, serviceerr.AuthenticationFailed("not a refresh token")
	}
	user, ok := m.users[claims.Username]
	if !ok {
		return nil, serviceerr.AuthenticationFailed("unknown user")
	}
	return m.issuePair(user)
}

func (m *TokenManager) issuePair(user User) (*TokenPair, error) {
	access, err := m.sign(user, TokenTypeAccess, m.accessExpiry)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(user, TokenTypeRefresh, m.refreshExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(m.accessExpiry.Seconds()),
	}, nil
}

func (m *TokenManager) sign(user User, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:  user.Username,
		Roles:     user.Roles,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (m *TokenManager) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != m.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, serviceerr.AuthenticationFailed("invalid or expired token")
	}
	return claims, nil
}

// HashPassword produces a bcrypt hash for seeding configured users.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
