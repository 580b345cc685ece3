package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/pkg/apperror"
	"github.com/softcrates/fieldsync/pkg/utils"
)

func TestClientSendsBearerToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]entity.Client{})
	}))
	defer server.Close()

	tokens := utils.NewTokenStore()
	tokens.Set("opaque-token")
	client := NewClient(server.URL, time.Second, tokens)

	_, err := client.FetchClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token", auth)
}

func TestClientOmitsHeaderWithoutToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]entity.Client{})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, utils.NewTokenStore())

	_, err := client.FetchClients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClientWrapsStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, utils.NewTokenStore())

	_, err := client.FetchClients(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsRemote(err))

	remoteErr, ok := err.(*apperror.RemoteError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.Status)
}

func TestClientWrapsTransportErrors(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, utils.NewTokenStore())

	_, err := client.FetchClients(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsRemote(err))
}

func TestLoginStoresIssuedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "maria", req.Username)
		json.NewEncoder(w).Encode(LoginResponse{Token: "issued", Username: req.Username})
	}))
	defer server.Close()

	tokens := utils.NewTokenStore()
	client := NewClient(server.URL, time.Second, tokens)

	resp, err := client.Login(context.Background(), "maria", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "issued", resp.Token)
	assert.Equal(t, "issued", tokens.Get())
}
