package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/client/storage/boltdb"
	"github.com/iudanet/habitsync/pkg/api"
)

func newTestService(t *testing.T, mock *apiclient.ClientAPIMock) *Service {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(mock, store, logger)
}

func TestLogin_StoresSessionAndNotifies(t *testing.T) {
	ctx := context.Background()
	mock := &apiclient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "tok", UserID: "u-1", ExpiresIn: 3600}, nil
		},
	}
	svc := newTestService(t, mock)

	var signedIn []bool
	svc.OnChange(func(s bool) { signedIn = append(signedIn, s) })

	auth, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", auth.UserID)
	assert.Equal(t, []bool{true}, signedIn)

	token, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	session, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())
}

func TestLogin_ServerRejects(t *testing.T) {
	mock := &apiclient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return nil, errors.New("server error (401): invalid credentials")
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	_, err = svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	mock := &apiclient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "tok", UserID: "u-1", ExpiresIn: 3600}, nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	var events []bool
	svc.OnChange(func(s bool) { events = append(events, s) })

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, []bool{false}, events)

	_, err = svc.Token(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Logging out twice is fine
	assert.NoError(t, svc.Logout(ctx))
}

func TestSession_Expired(t *testing.T) {
	ctx := context.Background()
	mock := &apiclient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "tok", UserID: "u-1", ExpiresIn: -10}, nil
		},
	}
	svc := newTestService(t, mock)

	_, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = svc.Session(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
