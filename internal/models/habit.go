package models

import "time"

// DateLayout is the canonical format for completion log dates
const DateLayout = "2006-01-02"

// Habit is a top-level user-owned record.
// LocalID is assigned by the local store and never changes.
// RemoteID is empty until the first successful push and is set at most
// once after that; only a full-record pull replacement may rewrite it.
type Habit struct {
	RemoteID    string `json:"remote_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	LocalID     uint64 `json:"local_id"`
	CreatedAt   int64  `json:"created_at"` // unix milliseconds, local clock
	UpdatedAt   int64  `json:"updated_at"` // unix milliseconds, local clock
}

// Clone returns a deep copy of the habit
func (h *Habit) Clone() *Habit {
	c := *h
	return &c
}

// Touch updates UpdatedAt to the current local clock
func (h *Habit) Touch() {
	h.UpdatedAt = time.Now().UnixMilli()
}

// HabitLog is a completion mark for a habit on a given date.
// It belongs to exactly one habit via HabitLocalID and is unique per
// (HabitLocalID, Date). Logs are idempotent marks, not editable
// documents: sync resolves them by existence, not by timestamp.
type HabitLog struct {
	RemoteID     string `json:"remote_id,omitempty"`
	Date         string `json:"date"` // YYYY-MM-DD
	LocalID      uint64 `json:"local_id"`
	HabitLocalID uint64 `json:"habit_local_id"`
	CreatedAt    int64  `json:"created_at"` // unix milliseconds, local clock
	Synced       bool   `json:"synced"`
}

// Clone returns a deep copy of the log
func (l *HabitLog) Clone() *HabitLog {
	c := *l
	return &c
}
