package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/habitsync/internal/server/storage"
)

// CreateLog inserts a completion mark
func (s *Storage) CreateLog(ctx context.Context, log *storage.HabitLog) error {
	if _, err := s.GetHabit(ctx, log.UserID, log.HabitID); err != nil {
		return err
	}

	query := `
		INSERT INTO habit_logs (id, habit_id, user_id, date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		log.ID,
		log.HabitID,
		log.UserID,
		log.Date,
		log.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrDuplicateLog
		}
		return fmt.Errorf("failed to insert log: %w", err)
	}

	return nil
}

// GetLogByDate returns the completion mark for (habit, date)
func (s *Storage) GetLogByDate(ctx context.Context, userID, habitID, date string) (*storage.HabitLog, error) {
	query := `
		SELECT id, habit_id, user_id, date, created_at
		FROM habit_logs
		WHERE habit_id = ? AND user_id = ? AND date = ?
	`

	log := &storage.HabitLog{}
	err := s.db.QueryRowContext(ctx, query, habitID, userID, date).Scan(
		&log.ID,
		&log.HabitID,
		&log.UserID,
		&log.Date,
		&log.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	return log, nil
}

// ListLogs returns all completion marks of a user
func (s *Storage) ListLogs(ctx context.Context, userID string) ([]*storage.HabitLog, error) {
	query := `
		SELECT id, habit_id, user_id, date, created_at
		FROM habit_logs
		WHERE user_id = ?
		ORDER BY habit_id, date
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var logs []*storage.HabitLog
	for rows.Next() {
		log := &storage.HabitLog{}
		if err := rows.Scan(
			&log.ID,
			&log.HabitID,
			&log.UserID,
			&log.Date,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logs: %w", err)
	}

	return logs, nil
}

// DeleteLog removes a completion mark
func (s *Storage) DeleteLog(ctx context.Context, userID, habitID, date string) error {
	query := `DELETE FROM habit_logs WHERE habit_id = ? AND user_id = ? AND date = ?`

	res, err := s.db.ExecContext(ctx, query, habitID, userID, date)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrLogNotFound
	}

	return nil
}
