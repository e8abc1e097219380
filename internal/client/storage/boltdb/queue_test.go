package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
)

func TestQueue_FIFOOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	a, err := store.CreateHabit(ctx, newTestHabit("a"))
	require.NoError(t, err)
	b, err := store.CreateHabit(ctx, newTestHabit("b"))
	require.NoError(t, err)

	a.Name = "a2"
	require.NoError(t, store.UpdateHabit(ctx, a))

	ops, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	// Enqueue order, never reordered
	assert.Equal(t, models.ActionCreate, ops[0].Action)
	assert.Equal(t, models.ActionCreate, ops[1].Action)
	assert.Equal(t, models.ActionUpdate, ops[2].Action)
	assert.Less(t, ops[0].ID, ops[1].ID)
	assert.Less(t, ops[1].ID, ops[2].ID)
	_ = b
}

func TestQueue_AckRemovesEntry(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.CreateHabit(ctx, newTestHabit("a"))
	require.NoError(t, err)

	ops, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	require.NoError(t, store.Ack(ctx, ops[0].ID))

	count, err := store.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.ErrorIs(t, store.Ack(ctx, ops[0].ID), storage.ErrOperationNotFound)
}

func TestQueue_NackIncrementsRetry(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.CreateHabit(ctx, newTestHabit("a"))
	require.NoError(t, err)

	ops, err := store.Pending(ctx)
	require.NoError(t, err)
	id := ops[0].ID

	require.NoError(t, store.Nack(ctx, id))
	require.NoError(t, store.Nack(ctx, id))

	ops, err = store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 2, ops[0].RetryCount)
	assert.Equal(t, id, ops[0].ID)
}

func TestQueue_PurgeExhausted(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.CreateHabit(ctx, newTestHabit("a"))
	require.NoError(t, err)
	_, err = store.CreateHabit(ctx, newTestHabit("b"))
	require.NoError(t, err)

	ops, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	// Exhaust the first entry past the retry budget
	for i := 0; i < 6; i++ {
		require.NoError(t, store.Nack(ctx, ops[0].ID))
	}

	purged, err := store.PurgeExhausted(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	remaining, err := store.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, ops[1].ID, remaining[0].ID)

	// At the boundary nothing is eligible
	purged, err = store.PurgeExhausted(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, purged)
}
