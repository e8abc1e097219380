package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	habits, err := c.habits.ListHabits(ctx)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}

	if len(habits) == 0 {
		c.io.Println("No habits yet. Start with: habitsync add <name>")
		return nil
	}

	c.io.Printf("Tracking %d habit(s):\n", len(habits))
	c.io.Println()

	for _, habit := range habits {
		stats, err := c.habits.Stats(ctx, habit.LocalID)
		if err != nil {
			return fmt.Errorf("failed to compute stats for %q: %w", habit.Name, err)
		}

		mark := " "
		if stats.DoneToday {
			mark = "✓"
		}
		c.io.Printf("%s %3d  %s\n", mark, habit.LocalID, habit.Name)
		if habit.Description != "" {
			c.io.Printf("       %s\n", habit.Description)
		}
		c.io.Printf("       streak %d, best %d, total %d\n",
			stats.CurrentStreak, stats.LongestStreak, stats.Total)
	}

	return nil
}
