package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newTestUser(t *testing.T, s *Storage, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$fakehashfortesting",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func newTestHabit(t *testing.T, s *Storage, userID, name string, updatedAt int64) *storage.Habit {
	t.Helper()

	habit := &storage.Habit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
	require.NoError(t, s.CreateHabit(context.Background(), habit))
	return habit
}

func TestStorage_Users(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser(t, s, "alice")

	byName, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, user.PasswordHash, byName.PasswordHash)
	assert.Equal(t, user.CreatedAt.Unix(), byName.CreatedAt.Unix())

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Duplicate username
	err = s.CreateUser(ctx, &models.User{
		ID:           uuid.New().String(),
		Username:     "alice",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestStorage_Habits(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	alice := newTestUser(t, s, "alice")
	bob := newTestUser(t, s, "bob")

	habit := newTestHabit(t, s, alice.ID, "Run", 1000)
	newTestHabit(t, s, bob.ID, "Swim", 2000)

	got, err := s.GetHabit(ctx, alice.ID, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run", got.Name)

	// Ownership scoping: someone else's id behaves like a missing one
	_, err = s.GetHabit(ctx, bob.ID, habit.ID)
	assert.ErrorIs(t, err, storage.ErrHabitNotFound)

	habits, err := s.ListHabits(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, habit.ID, habits[0].ID)

	habit.Name = "Run 5k"
	habit.UpdatedAt = 2000
	require.NoError(t, s.UpdateHabit(ctx, habit))

	got, err = s.GetHabit(ctx, alice.ID, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run 5k", got.Name)
	assert.Equal(t, int64(2000), got.UpdatedAt)

	err = s.UpdateHabit(ctx, &storage.Habit{ID: "missing", UserID: alice.ID})
	assert.ErrorIs(t, err, storage.ErrHabitNotFound)

	require.NoError(t, s.DeleteHabit(ctx, alice.ID, habit.ID))
	assert.ErrorIs(t, s.DeleteHabit(ctx, alice.ID, habit.ID), storage.ErrHabitNotFound)
}

func TestStorage_Logs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	alice := newTestUser(t, s, "alice")
	habit := newTestHabit(t, s, alice.ID, "Read", 1000)

	log := &storage.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		UserID:    alice.ID,
		Date:      "2026-08-29",
		CreatedAt: 1000,
	}
	require.NoError(t, s.CreateLog(ctx, log))

	// One mark per day
	dup := &storage.HabitLog{
		ID:      uuid.New().String(),
		HabitID: habit.ID,
		UserID:  alice.ID,
		Date:    "2026-08-29",
	}
	assert.ErrorIs(t, s.CreateLog(ctx, dup), storage.ErrDuplicateLog)

	// Log for a missing habit
	orphan := &storage.HabitLog{
		ID:      uuid.New().String(),
		HabitID: "missing",
		UserID:  alice.ID,
		Date:    "2026-08-29",
	}
	assert.ErrorIs(t, s.CreateLog(ctx, orphan), storage.ErrHabitNotFound)

	got, err := s.GetLogByDate(ctx, alice.ID, habit.ID, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, log.ID, got.ID)

	logs, err := s.ListLogs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	require.NoError(t, s.DeleteLog(ctx, alice.ID, habit.ID, "2026-08-29"))
	assert.ErrorIs(t, s.DeleteLog(ctx, alice.ID, habit.ID, "2026-08-29"), storage.ErrLogNotFound)
}

func TestStorage_DeleteHabitCascadesLogs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	alice := newTestUser(t, s, "alice")
	habit := newTestHabit(t, s, alice.ID, "Read", 1000)

	for _, date := range []string{"2026-08-27", "2026-08-28"} {
		require.NoError(t, s.CreateLog(ctx, &storage.HabitLog{
			ID:      uuid.New().String(),
			HabitID: habit.ID,
			UserID:  alice.ID,
			Date:    date,
		}))
	}

	require.NoError(t, s.DeleteHabit(ctx, alice.ID, habit.ID))

	logs, err := s.ListLogs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
