package utils

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore holds the bearer token issued by the central server after a
// successful online login. The agent never signs tokens itself; it only
// inspects the expiry claim of the server-issued JWT so it can stop sending
// a token it already knows is stale.
type TokenStore struct {
	mu      sync.RWMutex
	token   string
	expires time.Time
}

// NewTokenStore creates an empty token store
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set stores a server-issued token. An empty token (offline login) clears the
// store. Tokens whose expiry cannot be read are kept without an expiry and
// used until the server rejects them.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expires = time.Time{}
	if token == "" {
		return
	}
	if exp, err := tokenExpiry(token); err == nil && exp != nil {
		s.expires = *exp
	}
}

// Get returns the stored token, or the empty string when no token is held or
// the held token is past its expiry.
func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return ""
	}
	if !s.expires.IsZero() && time.Now().After(s.expires) {
		return ""
	}
	return s.token
}

// Clear drops the stored token
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expires = time.Time{}
}

// tokenExpiry reads the exp claim without verifying the signature; the server
// owns the signing key, the client only needs the timestamp.
func tokenExpiry(token string) (*time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil {
		return nil, nil
	}
	t := claims.ExpiresAt.Time
	return &t, nil
}
