package api

// Habit is the wire representation of a habit.
// ID and UpdatedAt are authoritative on the server side; UpdatedAt is
// unix milliseconds and is what the client-side conflict resolver
// compares against.
type Habit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// HabitRequest is the payload for creating or updating a habit.
// UpdatedAt carries the client-side modification time (unix milliseconds);
// the server keeps the newer of the stored and submitted version.
type HabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	UpdatedAt   int64  `json:"updated_at"`
}

// HabitLog is the wire representation of a completion log.
// Date is formatted YYYY-MM-DD; (HabitID, Date) is unique per user.
type HabitLog struct {
	ID        string `json:"id"`
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	CreatedAt int64  `json:"created_at"`
}

// HabitLogRequest is the payload for logging a completion
type HabitLogRequest struct {
	Date string `json:"date"`
}
