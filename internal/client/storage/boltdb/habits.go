package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
)

// CreateHabit assigns a local identity, stores the habit and appends a
// create operation to the queue in the same transaction
func (s *Storage) CreateHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	stored := habit.Clone()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHabits)

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign local id: %w", err)
		}
		stored.LocalID = id

		data, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal habit: %w", err)
		}
		if err := bucket.Put(u64key(id), data); err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}

		return enqueueOp(tx, models.ActionCreate, models.TargetHabit, models.HabitOp{LocalID: id})
	})
	if err != nil {
		return nil, fmt.Errorf("create habit transaction failed: %w", err)
	}

	s.queueChanged()
	return stored, nil
}

// UpdateHabit stores the habit and appends an update operation to the
// queue in the same transaction
func (s *Storage) UpdateHabit(ctx context.Context, habit *models.Habit) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHabits)

		if bucket.Get(u64key(habit.LocalID)) == nil {
			return storage.ErrHabitNotFound
		}

		data, err := json.Marshal(habit)
		if err != nil {
			return fmt.Errorf("failed to marshal habit: %w", err)
		}
		if err := bucket.Put(u64key(habit.LocalID), data); err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}

		return enqueueOp(tx, models.ActionUpdate, models.TargetHabit, models.HabitOp{LocalID: habit.LocalID})
	})
	if err != nil {
		return err
	}

	s.queueChanged()
	return nil
}

// DeleteHabit removes the habit and cascades to its logs in one
// transaction. One delete operation is enqueued for the habit and for
// each log that is already known remotely; records the server never
// saw queue nothing.
func (s *Storage) DeleteHabit(ctx context.Context, localID uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHabits)

		data := bucket.Get(u64key(localID))
		if data == nil {
			return storage.ErrHabitNotFound
		}
		var habit models.Habit
		if err := json.Unmarshal(data, &habit); err != nil {
			return fmt.Errorf("failed to unmarshal habit: %w", err)
		}

		logs, err := deleteLogsForHabit(tx, localID)
		if err != nil {
			return err
		}
		for _, log := range logs {
			if !log.Synced {
				continue
			}
			op := models.LogDeleteOp{
				HabitLocalID:  localID,
				HabitRemoteID: habit.RemoteID,
				Date:          log.Date,
			}
			if err := enqueueOp(tx, models.ActionDelete, models.TargetLog, op); err != nil {
				return err
			}
		}

		if err := bucket.Delete(u64key(localID)); err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}

		if habit.RemoteID == "" {
			// Never pushed: nothing to delete remotely. The stale
			// create entry in the queue acks as a no-op.
			return nil
		}
		return enqueueOp(tx, models.ActionDelete, models.TargetHabit, models.HabitDeleteOp{
			LocalID:  localID,
			RemoteID: habit.RemoteID,
		})
	})
	if err != nil {
		return err
	}

	s.queueChanged()
	return nil
}

// GetHabit returns the habit by local identity
func (s *Storage) GetHabit(ctx context.Context, localID uint64) (*models.Habit, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var habit *models.Habit

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketHabits).Get(u64key(localID))
		if data == nil {
			return storage.ErrHabitNotFound
		}

		habit = &models.Habit{}
		if err := json.Unmarshal(data, habit); err != nil {
			return fmt.Errorf("failed to unmarshal habit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return habit, nil
}

// GetHabitByRemoteID returns the habit with the given remote identity
func (s *Storage) GetHabitByRemoteID(ctx context.Context, remoteID string) (*models.Habit, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	if remoteID == "" {
		return nil, storage.ErrHabitNotFound
	}

	var habit *models.Habit

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketHabits).ForEach(func(k, v []byte) error {
			var h models.Habit
			if err := json.Unmarshal(v, &h); err != nil {
				return fmt.Errorf("failed to unmarshal habit: %w", err)
			}
			if h.RemoteID == remoteID {
				habit = &h
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if habit == nil {
		return nil, storage.ErrHabitNotFound
	}
	return habit, nil
}

// ListHabits returns all habits in local-id order
func (s *Storage) ListHabits(ctx context.Context) ([]*models.Habit, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var habits []*models.Habit

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketHabits).ForEach(func(k, v []byte) error {
			var h models.Habit
			if err := json.Unmarshal(v, &h); err != nil {
				return fmt.Errorf("failed to unmarshal habit: %w", err)
			}
			habits = append(habits, &h)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	return habits, nil
}

// PutHabit writes the habit as-is, bypassing the queue. A zero LocalID
// means a pull-phase materialization: a fresh local identity is
// assigned and written back onto the given habit.
func (s *Storage) PutHabit(ctx context.Context, habit *models.Habit) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHabits)

		if habit.LocalID == 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to assign local id: %w", err)
			}
			habit.LocalID = id
		}

		data, err := json.Marshal(habit)
		if err != nil {
			return fmt.Errorf("failed to marshal habit: %w", err)
		}
		if err := bucket.Put(u64key(habit.LocalID), data); err != nil {
			return fmt.Errorf("failed to save habit: %w", err)
		}
		return nil
	})
}

// RemoveHabit deletes the habit and cascades to its logs, bypassing
// the queue. Used by the pull phase for remote deletions.
func (s *Storage) RemoveHabit(ctx context.Context, localID uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHabits)
		if bucket.Get(u64key(localID)) == nil {
			return storage.ErrHabitNotFound
		}
		if _, err := deleteLogsForHabit(tx, localID); err != nil {
			return err
		}
		if err := bucket.Delete(u64key(localID)); err != nil {
			return fmt.Errorf("failed to delete habit: %w", err)
		}
		return nil
	})
}

// deleteLogsForHabit removes every log keyed under the habit and
// returns them for queue bookkeeping
func deleteLogsForHabit(tx *bbolt.Tx, habitLocalID uint64) ([]*models.HabitLog, error) {
	bucket := tx.Bucket(bucketLogs)
	prefix := logPrefix(habitLocalID)

	var logs []*models.HabitLog
	var keys [][]byte

	c := bucket.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		var log models.HabitLog
		if err := json.Unmarshal(v, &log); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log: %w", err)
		}
		logs = append(logs, &log)
		keys = append(keys, append([]byte(nil), k...))
	}

	for _, k := range keys {
		if err := bucket.Delete(k); err != nil {
			return nil, fmt.Errorf("failed to delete log: %w", err)
		}
	}

	return logs, nil
}
