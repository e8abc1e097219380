package storage

import (
	"context"

	"github.com/iudanet/habitsync/internal/models"
)

// HabitStorage defines the local store contract for habits and their
// completion logs. Every user-facing mutation (Create/Update/Delete)
// commits the data write and the matching queue entry in one
// transaction: a crash between the two must never occur. The Put/Remove
// variants are for the pull phase and bypass the queue entirely.
type HabitStorage interface {
	// CreateHabit assigns a local identity, stores the habit and
	// enqueues a create operation. Returns the stored habit.
	CreateHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error)

	// UpdateHabit stores the habit and enqueues an update operation.
	// Returns ErrHabitNotFound for unknown local identities.
	UpdateHabit(ctx context.Context, habit *models.Habit) error

	// DeleteHabit removes the habit and all its logs in one
	// transaction, enqueueing one delete per remote-known record.
	DeleteHabit(ctx context.Context, localID uint64) error

	// GetHabit returns the habit by local identity
	GetHabit(ctx context.Context, localID uint64) (*models.Habit, error)

	// GetHabitByRemoteID returns the habit with the given remote
	// identity, or ErrHabitNotFound
	GetHabitByRemoteID(ctx context.Context, remoteID string) (*models.Habit, error)

	// ListHabits returns all habits
	ListHabits(ctx context.Context) ([]*models.Habit, error)

	// PutHabit writes the habit as-is without touching the queue.
	// Used by the pull phase to apply remote state and identity fixups.
	PutHabit(ctx context.Context, habit *models.Habit) error

	// RemoveHabit deletes the habit and cascades to its logs without
	// touching the queue. Used by the pull phase for remote deletions.
	RemoveHabit(ctx context.Context, localID uint64) error

	// CreateLog stores a completion log and enqueues a create
	// operation. Returns ErrDuplicateLog if (habit, date) exists.
	CreateLog(ctx context.Context, log *models.HabitLog) (*models.HabitLog, error)

	// DeleteLog removes a completion log, enqueueing a delete
	// operation when the log is known remotely
	DeleteLog(ctx context.Context, habitLocalID uint64, date string) error

	// GetLog returns the log for (habit, date)
	GetLog(ctx context.Context, habitLocalID uint64, date string) (*models.HabitLog, error)

	// ListLogs returns all completion logs
	ListLogs(ctx context.Context) ([]*models.HabitLog, error)

	// ListLogsByHabit returns all logs for one habit, ordered by date
	ListLogsByHabit(ctx context.Context, habitLocalID uint64) ([]*models.HabitLog, error)

	// PutLog writes the log as-is without touching the queue.
	// Used by the pull phase.
	PutLog(ctx context.Context, log *models.HabitLog) error
}
