package remote

import (
	"context"
)

// LoginRequest is the credential payload sent to the backend
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued by the backend
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Login authenticates against the backend and stores the issued token for
// subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.post(ctx, "login", "/auth/login", LoginRequest{Username: username, Password: password}, nil, &resp)
	if err != nil {
		return nil, err
	}
	c.tokens.Set(resp.Token)
	return &resp, nil
}
