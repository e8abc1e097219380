package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/habitsync/internal/client/storage"
)

func (c *Cli) runDone(ctx context.Context, args []string) error {
	id, err := parseHabitID(args)
	if err != nil {
		return err
	}

	log, err := c.habits.MarkDone(ctx, id, optionalDate(args))
	if errors.Is(err, storage.ErrDuplicateLog) {
		c.io.Println("Already marked done for that date.")
		return nil
	}
	if err != nil {
		return err
	}

	stats, err := c.habits.Stats(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	c.io.Printf("✓ Done for %s\n", log.Date)
	c.io.Printf("Current streak: %d day(s)\n", stats.CurrentStreak)
	return nil
}

func (c *Cli) runUndone(ctx context.Context, args []string) error {
	id, err := parseHabitID(args)
	if err != nil {
		return err
	}

	if err := c.habits.UnmarkDone(ctx, id, optionalDate(args)); err != nil {
		return err
	}

	c.io.Println("✓ Completion mark removed")
	return nil
}

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	id, err := parseHabitID(args)
	if err != nil {
		return err
	}

	habit, err := c.habits.GetHabit(ctx, id)
	if err != nil {
		return err
	}

	logs, err := c.habits.History(ctx, id)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		c.io.Printf("No completions for %q yet.\n", habit.Name)
		return nil
	}

	c.io.Printf("%q: %d completion(s)\n", habit.Name, len(logs))
	for _, log := range logs {
		synced := ""
		if !log.Synced {
			synced = "  (not synced)"
		}
		c.io.Printf("  %s%s\n", log.Date, synced)
	}

	return nil
}
