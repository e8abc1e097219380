package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketAuth   = []byte("auth")
	bucketHabits = []byte("habits")
	bucketLogs   = []byte("logs")
	bucketQueue  = []byte("queue")
)

// Storage is the BoltDB-backed local store. It owns all durable client
// state: habits, completion logs, the pending operation queue and the
// session. Mutation methods commit the data write and the queue append
// in a single bolt transaction.
type Storage struct {
	db *bbolt.DB

	notifyMu      sync.Mutex
	onQueueChange func()
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SetOnQueueChange registers a callback invoked after every committed
// transaction that appended to the operation queue. The sync engine
// uses it as its debounced trigger.
func (s *Storage) SetOnQueueChange(fn func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.onQueueChange = fn
}

// queueChanged fires the registered callback, if any.
// Called only after a successful commit.
func (s *Storage) queueChanged() {
	s.notifyMu.Lock()
	fn := s.onQueueChange
	s.notifyMu.Unlock()

	if fn != nil {
		fn()
	}
}

// initBuckets creates the required buckets if they do not exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketHabits, bucketLogs, bucketQueue} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// u64key encodes an identity as a big-endian key so that bolt's
// key order matches numeric order
func u64key(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
