package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/habitsync/internal/models"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Syncing...")

	if !c.monitor.Probe(ctx) {
		pending, err := c.queue.PendingCount(ctx)
		if err != nil {
			return fmt.Errorf("failed to read queue: %w", err)
		}
		c.io.Printf("Server unreachable; %d change(s) stay queued.\n", pending)
		return nil
	}

	c.engine.Sync(ctx)

	state := c.engine.State()
	switch state.Status {
	case models.SyncStatusIdle:
		if state.LastError != "" {
			return fmt.Errorf("sync declined: %s", state.LastError)
		}
		c.io.Println("✓ Synchronized with server")
	case models.SyncStatusError:
		return fmt.Errorf("sync failed: %s", state.LastError)
	default:
		c.io.Printf("Sync state: %s\n", describe(state.Status))
	}

	if state.PendingCount > 0 {
		c.io.Printf("%d change(s) still pending.\n", state.PendingCount)
	}
	return nil
}

// runWatch keeps the process alive, probing connectivity on a fixed
// cadence. Syncs themselves stay event-driven: queue changes and
// connectivity transitions trigger them through the engine bindings,
// the ticker only feeds the monitor.
func (c *Cli) runWatch(ctx context.Context, interval time.Duration) error {
	unbind := c.engine.Bind()
	defer unbind()

	unsubscribe := c.engine.OnChange(func(state models.SyncState) {
		c.io.Printf("[%s] %s, %d pending\n",
			time.Now().Format(time.TimeOnly), describe(state.Status), state.PendingCount)
	})
	defer unsubscribe()

	c.io.Printf("Watching for changes, probing every %s. Ctrl+C to stop.\n", interval)

	if c.monitor.Probe(ctx) {
		c.engine.Sync(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.io.Println("Stopped.")
			return nil
		case <-ticker.C:
			c.monitor.Probe(ctx)
		}
	}
}
