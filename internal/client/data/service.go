// Package data is the habit-facing service layer: it validates input,
// stamps timestamps and delegates persistence to the local store. All
// mutations land in the store's operation queue as a side effect, so
// callers never talk to the network.
package data

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/validation"
)

// HabitStats is derived from a habit's completion history
type HabitStats struct {
	Total         int
	CurrentStreak int
	LongestStreak int
	DoneToday     bool
}

// Service defines the client-side habit operations
type Service interface {
	AddHabit(ctx context.Context, name, description, color string) (*models.Habit, error)
	GetHabit(ctx context.Context, localID uint64) (*models.Habit, error)
	ListHabits(ctx context.Context) ([]*models.Habit, error)
	UpdateHabit(ctx context.Context, localID uint64, name, description, color string) (*models.Habit, error)
	DeleteHabit(ctx context.Context, localID uint64) error

	// MarkDone records a completion for the given date, today when
	// date is empty
	MarkDone(ctx context.Context, localID uint64, date string) (*models.HabitLog, error)

	// UnmarkDone removes a completion mark
	UnmarkDone(ctx context.Context, localID uint64, date string) error

	// History returns a habit's completion logs in date order
	History(ctx context.Context, localID uint64) ([]*models.HabitLog, error)

	// Stats computes streaks over a habit's completion history
	Stats(ctx context.Context, localID uint64) (*HabitStats, error)
}

type service struct {
	store storage.HabitStorage
	now   func() time.Time
}

// NewService creates a new habit service
func NewService(store storage.HabitStorage) Service {
	return &service{
		store: store,
		now:   time.Now,
	}
}

// AddHabit validates and persists a new habit
func (s *service) AddHabit(ctx context.Context, name, description, color string) (*models.Habit, error) {
	if err := validation.ValidateHabitName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateColor(color); err != nil {
		return nil, err
	}

	now := s.now().UnixMilli()
	habit := &models.Habit{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.store.CreateHabit(ctx, habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return created, nil
}

// GetHabit returns one habit by its local id
func (s *service) GetHabit(ctx context.Context, localID uint64) (*models.Habit, error) {
	return s.store.GetHabit(ctx, localID)
}

// ListHabits returns all habits
func (s *service) ListHabits(ctx context.Context) ([]*models.Habit, error) {
	return s.store.ListHabits(ctx)
}

// UpdateHabit applies new field values and bumps the habit's clock
func (s *service) UpdateHabit(ctx context.Context, localID uint64, name, description, color string) (*models.Habit, error) {
	if err := validation.ValidateHabitName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateColor(color); err != nil {
		return nil, err
	}

	habit, err := s.store.GetHabit(ctx, localID)
	if err != nil {
		return nil, err
	}

	habit.Name = strings.TrimSpace(name)
	habit.Description = strings.TrimSpace(description)
	habit.Color = color
	habit.UpdatedAt = s.now().UnixMilli()

	if err := s.store.UpdateHabit(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}
	return habit, nil
}

// DeleteHabit removes a habit and all its logs
func (s *service) DeleteHabit(ctx context.Context, localID uint64) error {
	return s.store.DeleteHabit(ctx, localID)
}

// MarkDone records a completion for the given date
func (s *service) MarkDone(ctx context.Context, localID uint64, date string) (*models.HabitLog, error) {
	date, err := s.normalizeDate(date)
	if err != nil {
		return nil, err
	}

	log := &models.HabitLog{
		HabitLocalID: localID,
		Date:         date,
		CreatedAt:    s.now().UnixMilli(),
	}

	created, err := s.store.CreateLog(ctx, log)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UnmarkDone removes a completion mark
func (s *service) UnmarkDone(ctx context.Context, localID uint64, date string) error {
	date, err := s.normalizeDate(date)
	if err != nil {
		return err
	}
	return s.store.DeleteLog(ctx, localID, date)
}

// History returns a habit's completion logs in date order
func (s *service) History(ctx context.Context, localID uint64) ([]*models.HabitLog, error) {
	if _, err := s.store.GetHabit(ctx, localID); err != nil {
		return nil, err
	}
	return s.store.ListLogsByHabit(ctx, localID)
}

// Stats computes completion statistics for a habit
func (s *service) Stats(ctx context.Context, localID uint64) (*HabitStats, error) {
	logs, err := s.History(ctx, localID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(logs))
	for _, log := range logs {
		dates = append(dates, log.Date)
	}

	today := s.now().Format(models.DateLayout)
	current, longest := Streaks(dates, today)

	stats := &HabitStats{
		Total:         len(dates),
		CurrentStreak: current,
		LongestStreak: longest,
	}
	for _, d := range dates {
		if d == today {
			stats.DoneToday = true
			break
		}
	}
	return stats, nil
}

func (s *service) normalizeDate(date string) (string, error) {
	if date == "" {
		return s.now().Format(models.DateLayout), nil
	}
	if err := validation.ValidateDate(date); err != nil {
		return "", err
	}
	return date, nil
}

// Streaks computes the current and longest runs of consecutive days
// over a set of completion dates. Dates may arrive in any order and
// may contain duplicates. The current streak counts back from today,
// or from yesterday when today is not yet marked: an unfinished today
// does not break the run.
func Streaks(dates []string, today string) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	seen := make(map[string]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse(models.DateLayout, d)
		if err != nil || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0, 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	anchor, err := time.Parse(models.DateLayout, today)
	if err != nil {
		return 0, longest
	}
	if !seen[anchor.Format(models.DateLayout)] {
		anchor = anchor.AddDate(0, 0, -1)
	}
	for seen[anchor.Format(models.DateLayout)] {
		current++
		anchor = anchor.AddDate(0, 0, -1)
	}

	return current, longest
}

