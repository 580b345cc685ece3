package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "maria",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenStoreRoundTrip(t *testing.T) {
	store := NewTokenStore()
	token := signedToken(t, time.Now().Add(time.Hour))

	store.Set(token)
	assert.Equal(t, token, store.Get())
}

func TestTokenStoreDropsExpiredToken(t *testing.T) {
	store := NewTokenStore()
	store.Set(signedToken(t, time.Now().Add(-time.Minute)))

	assert.Empty(t, store.Get())
}

func TestTokenStoreKeepsOpaqueToken(t *testing.T) {
	store := NewTokenStore()
	store.Set("not-a-jwt")

	// Without a readable expiry the token is used until the server rejects it.
	assert.Equal(t, "not-a-jwt", store.Get())
}

func TestTokenStoreClear(t *testing.T) {
	store := NewTokenStore()
	store.Set(signedToken(t, time.Now().Add(time.Hour)))
	store.Clear()

	assert.Empty(t, store.Get())
}

func TestTokenStoreEmptySetClears(t *testing.T) {
	store := NewTokenStore()
	store.Set(signedToken(t, time.Now().Add(time.Hour)))
	store.Set("")

	assert.Empty(t, store.Get())
}
