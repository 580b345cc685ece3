package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/softcrates/fieldsync/pkg/apperror"
	"github.com/softcrates/fieldsync/pkg/utils"
)

// Client talks to the backend API. Every call goes over the network and can
// fail at any time; callers treat failures as a signal to fall back to local
// data, so errors are always wrapped as remote errors rather than surfaced
// raw.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *utils.TokenStore
}

// NewClient creates a new remote API client
func NewClient(baseURL string, timeout time.Duration, tokens *utils.TokenStore) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		tokens:     tokens,
	}
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperror.NewRemoteError(op, err)
	}
	return c.do(op, req, out)
}

func (c *Client) post(ctx context.Context, op, path string, body any, headers map[string]string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperror.NewRemoteError(op, fmt.Errorf("failed to encode request body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return apperror.NewRemoteError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.NewRemoteError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return apperror.NewRemoteStatusError(op, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.NewRemoteError(op, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
