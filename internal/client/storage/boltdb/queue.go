package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
)

// enqueueOp appends an operation to the queue inside the caller's
// transaction. The queue sequence number doubles as the FIFO key:
// bolt iterates big-endian keys in insertion order.
func enqueueOp(tx *bbolt.Tx, action, target string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal operation payload: %w", err)
	}

	bucket := tx.Bucket(bucketQueue)
	id, err := bucket.NextSequence()
	if err != nil {
		return fmt.Errorf("failed to assign operation id: %w", err)
	}

	op := models.Operation{
		ID:         id,
		Action:     action,
		Target:     target,
		Payload:    raw,
		EnqueuedAt: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(&op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}
	if err := bucket.Put(u64key(id), data); err != nil {
		return fmt.Errorf("failed to enqueue operation: %w", err)
	}

	return nil
}

// Pending returns all queued operations in enqueue (FIFO) order
func (s *Storage) Pending(ctx context.Context) ([]*models.Operation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	return ops, nil
}

// Ack deletes a successfully pushed operation
func (s *Storage) Ack(ctx context.Context, id uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket.Get(u64key(id)) == nil {
			return storage.ErrOperationNotFound
		}
		if err := bucket.Delete(u64key(id)); err != nil {
			return fmt.Errorf("failed to ack operation: %w", err)
		}
		return nil
	})
}

// Nack increments the retry counter of a failed operation.
// This is the only mutation a queued entry ever sees.
func (s *Storage) Nack(ctx context.Context, id uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)

		data := bucket.Get(u64key(id))
		if data == nil {
			return storage.ErrOperationNotFound
		}

		var op models.Operation
		if err := json.Unmarshal(data, &op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}
		op.RetryCount++

		updated, err := json.Marshal(&op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}
		if err := bucket.Put(u64key(id), updated); err != nil {
			return fmt.Errorf("failed to nack operation: %w", err)
		}
		return nil
	})
}

// PendingCount returns the current number of queued operations
func (s *Storage) PendingCount(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketQueue).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count queue: %w", err)
	}

	return count, nil
}

// PurgeExhausted deletes operations retried more than maxRetries times
// and returns how many were dropped. Never called automatically:
// dropping a queued mutation loses data and must be intentional.
func (s *Storage) PurgeExhausted(ctx context.Context, maxRetries int) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	purged := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)

		var keys [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			if op.RetryCount > maxRetries {
				keys = append(keys, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to purge operation: %w", err)
			}
			purged++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return purged, nil
}
