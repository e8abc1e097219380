package storage

import "context"

// Habit is the server-side habit record. Timestamps are unix
// milliseconds as reported by the owning client; the server never
// invents its own UpdatedAt, it only keeps the newest one it has seen.
type Habit struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Color       string
	CreatedAt   int64
	UpdatedAt   int64
}

// HabitLog is a server-side completion mark, unique per (habit, date)
type HabitLog struct {
	ID        string
	HabitID   string
	UserID    string
	Date      string
	CreatedAt int64
}

// HabitStorage defines interface for habit and log persistence.
// Every read and write is scoped to a user: a habit id from another
// account behaves exactly like a missing one.
type HabitStorage interface {
	// CreateHabit inserts a new habit
	CreateHabit(ctx context.Context, habit *Habit) error

	// GetHabit returns one habit.
	// Returns ErrHabitNotFound if absent or owned by someone else.
	GetHabit(ctx context.Context, userID, habitID string) (*Habit, error)

	// ListHabits returns all habits of a user
	ListHabits(ctx context.Context, userID string) ([]*Habit, error)

	// UpdateHabit overwrites a habit's fields.
	// Returns ErrHabitNotFound if absent.
	UpdateHabit(ctx context.Context, habit *Habit) error

	// DeleteHabit removes a habit and all its logs.
	// Returns ErrHabitNotFound if absent.
	DeleteHabit(ctx context.Context, userID, habitID string) error

	// CreateLog inserts a completion mark.
	// Returns ErrDuplicateLog for a second mark on the same date and
	// ErrHabitNotFound when the habit is missing.
	CreateLog(ctx context.Context, log *HabitLog) error

	// GetLogByDate returns the completion mark for (habit, date).
	// Returns ErrLogNotFound if absent.
	GetLogByDate(ctx context.Context, userID, habitID, date string) (*HabitLog, error)

	// ListLogs returns all completion marks of a user
	ListLogs(ctx context.Context, userID string) ([]*HabitLog, error)

	// DeleteLog removes a completion mark.
	// Returns ErrLogNotFound if absent.
	DeleteLog(ctx context.Context, userID, habitID, date string) error
}
