package models

import "encoding/json"

// Operation actions
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Operation targets
const (
	TargetHabit = "habit"
	TargetLog   = "log"
)

// Operation is one durable queue entry describing a pending local
// mutation. Entries are ordered by enqueue time (FIFO) and are never
// mutated except to increment RetryCount or to be deleted outright.
type Operation struct {
	Action     string          `json:"action"`
	Target     string          `json:"target"`
	Payload    json.RawMessage `json:"payload"`
	ID         uint64          `json:"id"`
	EnqueuedAt int64           `json:"enqueued_at"` // unix milliseconds
	RetryCount int             `json:"retry_count"`
}

// HabitOp is the payload for habit create/update operations.
// It references the habit by local identity; the push phase reads the
// current record from the store, so repeated edits collapse naturally.
type HabitOp struct {
	LocalID uint64 `json:"local_id"`
}

// HabitDeleteOp is the payload for habit delete operations.
// RemoteID is captured at enqueue time because the local record is
// already gone when the entry is pushed.
type HabitDeleteOp struct {
	RemoteID string `json:"remote_id"`
	LocalID  uint64 `json:"local_id"`
}

// LogOp is the payload for log create operations. The parent's remote
// identity is resolved at push time, after any queued habit create for
// the same parent has been pushed.
type LogOp struct {
	Date         string `json:"date"`
	HabitLocalID uint64 `json:"habit_local_id"`
}

// LogDeleteOp is the payload for log delete operations
type LogDeleteOp struct {
	HabitRemoteID string `json:"habit_remote_id"`
	Date          string `json:"date"`
	HabitLocalID  uint64 `json:"habit_local_id"`
}
