package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := parseHabitID(args)
	if err != nil {
		return err
	}

	habit, err := c.habits.GetHabit(ctx, id)
	if err != nil {
		return err
	}

	answer, err := c.io.ReadInput(
		fmt.Sprintf("Delete %q and all its history? [y/N]: ", habit.Name))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.habits.DeleteHabit(ctx, id); err != nil {
		return err
	}

	c.io.Printf("✓ Stopped tracking %q\n", habit.Name)
	return nil
}
