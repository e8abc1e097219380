package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/models"
)

// newTestStorage creates a temporary storage for tests
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// newTestHabit creates a test habit
func newTestHabit(name string) *models.Habit {
	now := time.Now().UnixMilli()
	return &models.Habit{
		Name:      name,
		Color:     "#00aa55",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	habit, err := store.CreateHabit(ctx, newTestHabit("read"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Simulated restart: mutation and its queue entry must both survive
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	got, err := store.GetHabit(ctx, habit.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "read", got.Name)

	ops, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.ActionCreate, ops[0].Action)
	assert.Equal(t, models.TargetHabit, ops[0].Target)
}

func TestStorage_QueueChangeNotification(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	fired := 0
	store.SetOnQueueChange(func() { fired++ })

	_, err := store.CreateHabit(ctx, newTestHabit("run"))
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	// Reads must not fire the callback
	_, err = store.ListHabits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	store := &Storage{}

	_, err := store.CreateHabit(ctx, newTestHabit("x"))
	assert.Error(t, err)

	_, err = store.Pending(ctx)
	assert.Error(t, err)
}
