package router_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/server/jwt"
	"github.com/iudanet/habitsync/internal/server/router"
	"github.com/iudanet/habitsync/internal/server/storage/sqlite"
	"github.com/iudanet/habitsync/pkg/api"
)

// The suite drives the real route tree through the client API package,
// the same path the sync engine uses in production.

func newTestServer(t *testing.T) (*httptest.Server, *apiclient.Client) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	mux := router.New(router.Deps{
		Logger:  logger,
		Users:   store,
		Habits:  store,
		Tokens:  jwt.NewService("test-secret", time.Hour),
		Version: "test",
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, apiclient.NewClient(srv.URL)
}

func signUp(t *testing.T, client *apiclient.Client, username string) string {
	t.Helper()

	ctx := context.Background()
	_, err := client.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	token, err := client.Login(ctx, api.LoginRequest{
		Username: username,
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)

	return token.AccessToken
}

func TestRegisterAndLogin(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	resp, err := client.Register(ctx, api.RegisterRequest{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UserID)

	// Duplicate username
	_, err = client.Register(ctx, api.RegisterRequest{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already taken")

	// Wrong password
	_, err = client.Login(ctx, api.LoginRequest{
		Username: "alice",
		Password: "wrong password here",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Weak password rejected up front
	_, err = client.Register(ctx, api.RegisterRequest{
		Username: "bob",
		Password: "short",
	})
	assert.Error(t, err)

	token, err := client.Login(ctx, api.LoginRequest{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, token.UserID)
	assert.Positive(t, token.ExpiresIn)
}

func TestHabitCRUD(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()
	token := signUp(t, client, "alice")

	created, err := client.CreateHabit(ctx, token, api.HabitRequest{
		Name:      "Run",
		Color:     "#ff0000",
		UpdatedAt: 1000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(1000), created.UpdatedAt)

	habits, err := client.ListHabits(ctx, token)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Run", habits[0].Name)

	// Newer update wins
	updated, err := client.UpdateHabit(ctx, token, created.ID, api.HabitRequest{
		Name:      "Run 5k",
		UpdatedAt: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", updated.Name)

	// Stale update is not an error; the response carries the winner
	winner, err := client.UpdateHabit(ctx, token, created.ID, api.HabitRequest{
		Name:      "Old name",
		UpdatedAt: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", winner.Name)
	assert.Equal(t, int64(2000), winner.UpdatedAt)

	// Delete is idempotent
	require.NoError(t, client.DeleteHabit(ctx, token, created.ID))
	require.NoError(t, client.DeleteHabit(ctx, token, created.ID))

	habits, err = client.ListHabits(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, habits)

	// Updating a deleted habit is a real error
	_, err = client.UpdateHabit(ctx, token, created.ID, api.HabitRequest{
		Name:      "Ghost",
		UpdatedAt: 3000,
	})
	assert.Error(t, err)
}

func TestLogs(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()
	token := signUp(t, client, "alice")

	habit, err := client.CreateHabit(ctx, token, api.HabitRequest{
		Name:      "Read",
		UpdatedAt: 1000,
	})
	require.NoError(t, err)

	log, err := client.CreateLog(ctx, token, habit.ID, api.HabitLogRequest{Date: "2026-08-29"})
	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)

	// Same (habit, date) again returns the existing mark, not an error
	dup, err := client.CreateLog(ctx, token, habit.ID, api.HabitLogRequest{Date: "2026-08-29"})
	require.NoError(t, err)
	assert.Equal(t, log.ID, dup.ID)

	logs, err := client.ListLogs(ctx, token)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, habit.ID, logs[0].HabitID)

	// Bad date format
	_, err = client.CreateLog(ctx, token, habit.ID, api.HabitLogRequest{Date: "29.08.2026"})
	assert.Error(t, err)

	// Missing habit
	_, err = client.CreateLog(ctx, token, "missing", api.HabitLogRequest{Date: "2026-08-29"})
	assert.Error(t, err)

	// Idempotent delete
	require.NoError(t, client.DeleteLog(ctx, token, habit.ID, "2026-08-29"))
	require.NoError(t, client.DeleteLog(ctx, token, habit.ID, "2026-08-29"))

	logs, err = client.ListLogs(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestUserIsolation(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	aliceToken := signUp(t, client, "alice")
	bobToken := signUp(t, client, "bob")

	habit, err := client.CreateHabit(ctx, aliceToken, api.HabitRequest{
		Name:      "Secret routine",
		UpdatedAt: 1000,
	})
	require.NoError(t, err)

	habits, err := client.ListHabits(ctx, bobToken)
	require.NoError(t, err)
	assert.Empty(t, habits)

	// Another user's habit behaves like a missing one
	_, err = client.UpdateHabit(ctx, bobToken, habit.ID, api.HabitRequest{
		Name:      "Hijacked",
		UpdatedAt: 9000,
	})
	assert.Error(t, err)

	_, err = client.CreateLog(ctx, bobToken, habit.ID, api.HabitLogRequest{Date: "2026-08-29"})
	assert.Error(t, err)
}

func TestAuthRequired(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	_, err := client.ListHabits(ctx, "")
	assert.Error(t, err)

	_, err = client.ListHabits(ctx, "garbage-token")
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	head, err := http.Head(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer head.Body.Close()
	assert.Equal(t, http.StatusOK, head.StatusCode)
}
