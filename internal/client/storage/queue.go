package storage

import (
	"context"

	"github.com/iudanet/habitsync/internal/models"
)

// QueueStorage defines the durable operation queue contract.
// Entries are appended by the mutation methods of HabitStorage inside
// the same transaction as the data write; there is no standalone
// enqueue. Entries leave the queue only through Ack or PurgeExhausted.
type QueueStorage interface {
	// Pending returns all queued operations in enqueue (FIFO) order
	Pending(ctx context.Context) ([]*models.Operation, error)

	// Ack deletes a successfully pushed operation
	Ack(ctx context.Context, id uint64) error

	// Nack increments the retry counter of a failed operation
	Nack(ctx context.Context, id uint64) error

	// PendingCount returns the current number of queued operations
	PendingCount(ctx context.Context) (int, error)

	// PurgeExhausted deletes operations whose retry count exceeds
	// maxRetries and returns how many were dropped. Dropping a queued
	// mutation is a data-loss event, so this is never called
	// automatically.
	PurgeExhausted(ctx context.Context, maxRetries int) (int, error)
}
