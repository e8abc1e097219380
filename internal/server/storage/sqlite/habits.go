package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/habitsync/internal/server/storage"
)

func timeFromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// CreateHabit inserts a new habit
func (s *Storage) CreateHabit(ctx context.Context, habit *storage.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, name, description, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		habit.ID,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Color,
		habit.CreatedAt,
		habit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	return nil
}

// GetHabit returns one habit scoped to its owner
func (s *Storage) GetHabit(ctx context.Context, userID, habitID string) (*storage.Habit, error) {
	query := `
		SELECT id, user_id, name, description, color, created_at, updated_at
		FROM habits
		WHERE id = ? AND user_id = ?
	`

	habit := &storage.Habit{}
	err := s.db.QueryRowContext(ctx, query, habitID, userID).Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Name,
		&habit.Description,
		&habit.Color,
		&habit.CreatedAt,
		&habit.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

// ListHabits returns all habits of a user
func (s *Storage) ListHabits(ctx context.Context, userID string) ([]*storage.Habit, error) {
	query := `
		SELECT id, user_id, name, description, color, created_at, updated_at
		FROM habits
		WHERE user_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*storage.Habit
	for rows.Next() {
		habit := &storage.Habit{}
		if err := rows.Scan(
			&habit.ID,
			&habit.UserID,
			&habit.Name,
			&habit.Description,
			&habit.Color,
			&habit.CreatedAt,
			&habit.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

// UpdateHabit overwrites a habit's fields
func (s *Storage) UpdateHabit(ctx context.Context, habit *storage.Habit) error {
	query := `
		UPDATE habits
		SET name = ?, description = ?, color = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		habit.Name,
		habit.Description,
		habit.Color,
		habit.UpdatedAt,
		habit.ID,
		habit.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrHabitNotFound
	}

	return nil
}

// DeleteHabit removes a habit; logs go with it via ON DELETE CASCADE
func (s *Storage) DeleteHabit(ctx context.Context, userID, habitID string) error {
	query := `DELETE FROM habits WHERE id = ? AND user_id = ?`

	res, err := s.db.ExecContext(ctx, query, habitID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrHabitNotFound
	}

	return nil
}
