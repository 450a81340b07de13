package api

import (
	"context"
	"net/url"

	"github.com/lakeforum/lakecli/internal/client/models"
)

// AuthService issues and refreshes session credentials.
type AuthService struct {
	t *Transport
}

// LoginByPassword exchanges a username and password for a session token.
func (s *AuthService) LoginByPassword(ctx context.Context, user, password string) (*models.TokenData, error) {
	q := url.Values{}
	q.Set("user", user)
	q.Set("password", password)

	var data models.TokenData
	if err := s.t.Get(ctx, "auth/passwd", q, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// LoginByToken validates an existing token and returns a fresh one.
func (s *AuthService) LoginByToken(ctx context.Context, token string) (*models.TokenData, error) {
	q := url.Values{}
	q.Set("token", token)

	var data models.TokenData
	if err := s.t.Get(ctx, "auth/token", q, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
