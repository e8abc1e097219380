package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrHabitNotFound indicates that the habit was not found
	ErrHabitNotFound = errors.New("habit not found")

	// ErrLogNotFound indicates that the completion log was not found
	ErrLogNotFound = errors.New("habit log not found")

	// ErrDuplicateLog indicates a second log for the same (habit, date)
	ErrDuplicateLog = errors.New("habit log already exists for this date")

	// ErrOperationNotFound indicates that the queue entry was not found
	ErrOperationNotFound = errors.New("queue operation not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
