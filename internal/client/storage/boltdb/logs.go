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

// logPrefix returns the key prefix for all logs of one habit
func logPrefix(habitLocalID uint64) []byte {
	return append(u64key(habitLocalID), '/')
}

// logKey builds the natural key (habit, date) for a completion log
func logKey(habitLocalID uint64, date string) []byte {
	return append(logPrefix(habitLocalID), date...)
}

// CreateLog stores a completion log and appends a create operation to
// the queue in the same transaction. The parent habit must exist and
// (habit, date) must be unique.
func (s *Storage) CreateLog(ctx context.Context, log *models.HabitLog) (*models.HabitLog, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	stored := log.Clone()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketHabits).Get(u64key(log.HabitLocalID)) == nil {
			return storage.ErrHabitNotFound
		}

		bucket := tx.Bucket(bucketLogs)
		key := logKey(log.HabitLocalID, log.Date)
		if bucket.Get(key) != nil {
			return storage.ErrDuplicateLog
		}

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign local id: %w", err)
		}
		stored.LocalID = id
		stored.Synced = false

		data, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal log: %w", err)
		}
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save log: %w", err)
		}

		return enqueueOp(tx, models.ActionCreate, models.TargetLog, models.LogOp{
			HabitLocalID: log.HabitLocalID,
			Date:         log.Date,
		})
	})
	if err != nil {
		return nil, err
	}

	s.queueChanged()
	return stored, nil
}

// DeleteLog removes a completion log. A delete operation is enqueued
// only when the log is already known remotely; a mark the server never
// saw just disappears together with its stale create entry.
func (s *Storage) DeleteLog(ctx context.Context, habitLocalID uint64, date string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	enqueued := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLogs)
		key := logKey(habitLocalID, date)

		data := bucket.Get(key)
		if data == nil {
			return storage.ErrLogNotFound
		}
		var log models.HabitLog
		if err := json.Unmarshal(data, &log); err != nil {
			return fmt.Errorf("failed to unmarshal log: %w", err)
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete log: %w", err)
		}

		if !log.Synced {
			return nil
		}

		var habitRemoteID string
		if hd := tx.Bucket(bucketHabits).Get(u64key(habitLocalID)); hd != nil {
			var habit models.Habit
			if err := json.Unmarshal(hd, &habit); err != nil {
				return fmt.Errorf("failed to unmarshal habit: %w", err)
			}
			habitRemoteID = habit.RemoteID
		}

		enqueued = true
		return enqueueOp(tx, models.ActionDelete, models.TargetLog, models.LogDeleteOp{
			HabitLocalID:  habitLocalID,
			HabitRemoteID: habitRemoteID,
			Date:          date,
		})
	})
	if err != nil {
		return err
	}

	if enqueued {
		s.queueChanged()
	}
	return nil
}

// GetLog returns the log for (habit, date)
func (s *Storage) GetLog(ctx context.Context, habitLocalID uint64, date string) (*models.HabitLog, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var log *models.HabitLog

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketLogs).Get(logKey(habitLocalID, date))
		if data == nil {
			return storage.ErrLogNotFound
		}

		log = &models.HabitLog{}
		if err := json.Unmarshal(data, log); err != nil {
			return fmt.Errorf("failed to unmarshal log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return log, nil
}

// ListLogs returns all completion logs
func (s *Storage) ListLogs(ctx context.Context) ([]*models.HabitLog, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var logs []*models.HabitLog

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLogs).ForEach(func(k, v []byte) error {
			var log models.HabitLog
			if err := json.Unmarshal(v, &log); err != nil {
				return fmt.Errorf("failed to unmarshal log: %w", err)
			}
			logs = append(logs, &log)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	return logs, nil
}

// ListLogsByHabit returns all logs for one habit, ordered by date
func (s *Storage) ListLogsByHabit(ctx context.Context, habitLocalID uint64) ([]*models.HabitLog, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var logs []*models.HabitLog

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLogs)
		prefix := logPrefix(habitLocalID)

		c := bucket.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var log models.HabitLog
			if err := json.Unmarshal(v, &log); err != nil {
				return fmt.Errorf("failed to unmarshal log: %w", err)
			}
			logs = append(logs, &log)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	return logs, nil
}

// PutLog writes the log as-is, bypassing the queue. A zero LocalID
// means a pull-phase materialization.
func (s *Storage) PutLog(ctx context.Context, log *models.HabitLog) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLogs)

		if log.LocalID == 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to assign local id: %w", err)
			}
			log.LocalID = id
		}

		data, err := json.Marshal(log)
		if err != nil {
			return fmt.Errorf("failed to marshal log: %w", err)
		}
		if err := bucket.Put(logKey(log.HabitLocalID, log.Date), data); err != nil {
			return fmt.Errorf("failed to save log: %w", err)
		}
		return nil
	})
}
