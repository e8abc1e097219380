package cli

import (
	"context"
	"fmt"
	"strings"

	syncer "github.com/iudanet/habitsync/internal/client/sync"
)

// runPurge drops queued changes that have exhausted their retry
// budget. This is the only path that discards a queued change, and it
// always asks first: sync itself keeps failing entries forever.
func (c *Cli) runPurge(ctx context.Context) error {
	ops, err := c.queue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	stuck := 0
	for _, op := range ops {
		if op.RetryCount > syncer.DefaultMaxRetries {
			stuck++
		}
	}
	if stuck == 0 {
		c.io.Println("Nothing to purge.")
		return nil
	}

	answer, err := c.io.ReadInput(
		fmt.Sprintf("Discard %d change(s) that keep failing to sync? [y/N]: ", stuck))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	purged, err := c.queue.PurgeExhausted(ctx, syncer.DefaultMaxRetries)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Discarded %d change(s)\n", purged)
	return nil
}
