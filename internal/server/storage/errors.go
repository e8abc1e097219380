package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrHabitNotFound indicates that the habit does not exist or
	// belongs to another user
	ErrHabitNotFound = errors.New("habit not found")

	// ErrLogNotFound indicates that the completion log does not exist
	ErrLogNotFound = errors.New("log not found")

	// ErrDuplicateLog indicates a second completion for the same
	// (habit, date)
	ErrDuplicateLog = errors.New("log already exists for this date")
)
