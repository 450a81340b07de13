// Package session owns the client's authentication state: the credential
// token, its durable copy, and the cached user profile.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/lakeforum/lakecli/internal/client/credstore"
	"github.com/lakeforum/lakecli/internal/client/models"
	"github.com/lakeforum/lakecli/internal/logging"
)

// ErrNoToken reports a login response that carried no token.
var ErrNoToken = errors.New("登录失败，未获取到 token")

// authAPI is the slice of the auth service the session needs.
type authAPI interface {
	LoginByPassword(ctx context.Context, user, password string) (*models.TokenData, error)
}

// userAPI is the slice of the user service the session needs.
type userAPI interface {
	Info(ctx context.Context) (*models.UserData, error)
}

// Session tracks whether the client is logged in and caches the user
// profile. A non-empty token means logged in; the token is never verified
// client-side. The profile is best effort: fetching it can fail without
// affecting the session state.
type Session struct {
	auth  authAPI
	user  userAPI
	creds credstore.Store
	log   logging.Logger

	mu      sync.Mutex
	token   string
	profile *models.User
}

func New(auth authAPI, user userAPI, creds credstore.Store, log logging.Logger) *Session {
	return &Session{auth: auth, user: user, creds: creds, log: log}
}

// Restore reads the persisted credential at startup and, when one exists,
// resumes the session and fetches the profile best effort.
func (s *Session) Restore(ctx context.Context) {
	token, err := s.creds.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted credential", "err", err)
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.fetchProfile(ctx)
}

// Login authenticates, persists the new token and fetches the profile.
// A profile fetch failure is logged, not returned; the session is
// authenticated either way.
func (s *Session) Login(ctx context.Context, user, password string) error {
	data, err := s.auth.LoginByPassword(ctx, user, password)
	if err != nil {
		return err
	}
	if data.Token == "" {
		return ErrNoToken
	}

	if err := s.creds.Save(ctx, data.Token); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = data.Token
	s.mu.Unlock()

	s.fetchProfile(ctx)
	return nil
}

// Logout drops the in-memory session and the persisted credential.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.mu.Unlock()

	return s.creds.Clear(ctx)
}

// HandleAuthFailure returns the session to the anonymous state. It is wired
// as the transport's auth-failure hook; the transport has already cleared
// the persisted credential by the time it fires.
func (s *Session) HandleAuthFailure() {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.mu.Unlock()
}

func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Profile returns the cached profile, or nil when unknown.
func (s *Session) Profile() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// RefreshProfile re-fetches the profile on demand, best effort.
func (s *Session) RefreshProfile(ctx context.Context) {
	s.fetchProfile(ctx)
}

func (s *Session) fetchProfile(ctx context.Context) {
	data, err := s.user.Info(ctx)
	if err != nil {
		s.log.Warn(ctx, "获取用户信息失败", "err", err)
		return
	}

	s.mu.Lock()
	s.profile = data.User
	s.mu.Unlock()
}
