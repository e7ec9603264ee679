package apiclient

import (
	"context"
	"net/http"

	"github.com/giftharmony/giftharmony/internal/api"
	"github.com/giftharmony/giftharmony/internal/domain"
)

// Register creates a new account. The returned token is not stored
// automatically; call SetToken when the caller decides to log the user in.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	if err := api.Validate(&req); err != nil {
		return nil, err
	}
	var resp api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	if err := api.Validate(&req); err != nil {
		return nil, err
	}
	var resp api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the profile behind the current session token.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
