package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/exemplar/itemsvc/internal/auth"
)

const claimsKey contextKey = "auth_claims"

// TokenVerifier is the slice of the token manager the middleware needs.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth requires a bearer access token on every request it wraps. When an
// API key is configured, a matching X-API-Key header is accepted instead;
// the comparison is constant-time.
func Auth(verifier TokenVerifier, apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey != "" {
				if key := r.Header.Get("X-API-Key"); key != "" {
					if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
						next.ServeHTTP(w, r)
						return
					}
					unauthorized(w, "invalid api key")
					return
				}
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, "missing credentials")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"AUTHENTICATION_FAILED","message":"` + message + `"}`))
}
