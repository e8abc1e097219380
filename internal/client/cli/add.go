package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	description := fs.String("d", "", "habit description")
	color := fs.String("c", "", "habit color, #rrggbb")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("usage: habitsync add [-d description] [-c #rrggbb] <name>")
	}

	name := strings.Join(fs.Args(), " ")
	if name == "" {
		return fmt.Errorf("usage: habitsync add [-d description] [-c #rrggbb] <name>")
	}

	habit, err := c.habits.AddHabit(ctx, name, *description, *color)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Tracking %q (id %d)\n", habit.Name, habit.LocalID)
	c.io.Printf("Mark it done with: habitsync done %d\n", habit.LocalID)
	return nil
}
