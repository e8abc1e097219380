// Package auth owns the client session: who is signed in and with
// which token. Sign-in state changes are announced to subscribers so
// the sync engine can react to a fresh principal.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	apiclient "github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/pkg/api"
)

// ErrNotAuthenticated is returned when no valid session exists
var ErrNotAuthenticated = errors.New("not authenticated")

// Service handles register/login/logout and stores the session
type Service struct {
	api    apiclient.ClientAPI
	store  storage.AuthStorage
	logger *slog.Logger

	mu      sync.Mutex
	subs    map[int]func(signedIn bool)
	nextSub int
}

// NewService creates a new auth service
func NewService(api apiclient.ClientAPI, store storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		api:    api,
		store:  store,
		logger: logger,
		subs:   make(map[int]func(bool)),
	}
}

// Register creates a new account and signs in
func (s *Service) Register(ctx context.Context, username, password string) (*storage.AuthData, error) {
	_, err := s.api.Register(ctx, api.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.Login(ctx, username, password)
}

// Login authenticates against the server and stores the session
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	resp, err := s.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	auth := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Unix() + resp.ExpiresIn,
	}
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("signed in", "username", username, "user_id", resp.UserID)
	s.notify(true)

	return auth, nil
}

// Logout removes the stored session
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("signed out")
	s.notify(false)
	return nil
}

// Session returns the current session.
// Returns ErrNotAuthenticated when signed out or expired.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	if time.Now().Unix() >= auth.ExpiresAt {
		return nil, fmt.Errorf("%w: token expired, please login again", ErrNotAuthenticated)
	}

	return auth, nil
}

// Token returns the access token of the current session
func (s *Service) Token(ctx context.Context) (string, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	return auth.AccessToken, nil
}

// OnChange registers a handler invoked on sign-in and sign-out.
// Returns an unsubscribe function.
func (s *Service) OnChange(handler func(signedIn bool)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = handler
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) notify(signedIn bool) {
	s.mu.Lock()
	handlers := make([]func(bool), 0, len(s.subs))
	for _, h := range s.subs {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(signedIn)
	}
}
