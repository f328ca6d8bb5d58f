// Package service wraps the store-admin HTTP API with typed, per-entity
// operations. Every method is one fresh round trip: no retries, no
// caching, no request deduplication, and no client-state mutation.
package service

import (
	"context"

	"github.com/robertroman/store-admin-console/internal/api"
	"github.com/robertroman/store-admin-console/internal/model"
)

// AuthService defines authentication operations.
type AuthService interface {
	// Login exchanges credentials for a bearer token and user identity.
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
}

type AuthServiceImpl struct {
	api *api.Client
}

// NewAuthService constructs AuthService over the shared API client.
func NewAuthService(c *api.Client) *AuthServiceImpl {
	return &AuthServiceImpl{api: c}
}

// Login posts credentials; the token in the response becomes the session.
func (s *AuthServiceImpl) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	var out model.AuthResponse
	if err := s.api.Post(ctx, "/auth/login", req, &out); err != nil {
		return model.AuthResponse{}, err
	}
	return out, nil
}
