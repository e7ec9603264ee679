// Package api holds the request and response DTOs exchanged with the
// GiftHarmony backend.
package api

import "github.com/giftharmony/giftharmony/internal/domain"

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// AuthResponse is returned by both register and login. The token is an
// opaque bearer credential; hand it to session.Manager, never inspect it.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
