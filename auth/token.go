package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const defaultExpiryLeeway = 30 * time.Second

// FetchFunc obtains a fresh bearer token, typically from a token endpoint.
type FetchFunc func(ctx context.Context) (string, error)

// TokenSource caches a bearer token and refreshes it ahead of its JWT expiry.
// Tokens that are not JWTs, or JWTs without an exp claim, are cached
// indefinitely. Safe for concurrent use.
type TokenSource struct {
	mu     sync.Mutex
	fetch  FetchFunc
	leeway time.Duration
	token  string
	expiry time.Time
	now    func() time.Time
}

// NewTokenSource creates a token source around fetch.
func NewTokenSource(fetch FetchFunc) *TokenSource {
	return &TokenSource{
		fetch:  fetch,
		leeway: defaultExpiryLeeway,
		now:    time.Now,
	}
}

// Token returns the cached token, fetching a new one when none is cached or
// the cached one expires within the leeway window.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && (ts.expiry.IsZero() || ts.now().Add(ts.leeway).Before(ts.expiry)) {
		return ts.token, nil
	}

	token, err := ts.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("auth: fetch token: %w", err)
	}

	ts.token = token
	ts.expiry = tokenExpiry(token)
	return token, nil
}

// tokenExpiry extracts the exp claim without verifying the signature; the
// source only needs to know when to refresh, not whether to trust the token.
func tokenExpiry(token string) time.Time {
	claims := gojwt.RegisteredClaims{}
	parser := gojwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// BearerFromSource creates an auth config whose token is resolved from ts on
// every request. Fetch failures leave the request unauthenticated; the server
// response then surfaces through the regular error model.
func BearerFromSource(ts *TokenSource) *Config {
	return Custom(func(req *http.Request) {
		token, err := ts.Token(req.Context())
		if err != nil {
			return
		}
		req.Header.Set("Authorization", "Bearer "+token)
	})
}
