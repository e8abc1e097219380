package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/habitsync/internal/client/auth"
	"github.com/iudanet/habitsync/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.auth.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Account:      not signed in ('habitsync login')")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		expires := time.Unix(session.ExpiresAt, 0)
		c.io.Printf("Account:      %s (token expires %s)\n",
			session.Username, expires.Format(time.RFC3339))
	}

	if c.monitor.Probe(ctx) {
		c.io.Println("Connectivity: online")
	} else {
		c.io.Println("Connectivity: offline")
	}

	pending, err := c.queue.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	state := c.engine.State()
	c.io.Printf("Sync:         %s\n", state.Status)
	if state.LastError != "" {
		c.io.Printf("Last error:   %s\n", state.LastError)
	}
	if state.LastSyncAt > 0 {
		c.io.Printf("Last sync:    %s\n",
			time.UnixMilli(state.LastSyncAt).Format(time.RFC3339))
	}

	if pending > 0 {
		c.io.Printf("Pending:      %d change(s) waiting to be pushed\n", pending)
	} else {
		c.io.Println("Pending:      nothing, all changes pushed")
	}

	return nil
}

func describe(status models.SyncStatus) string {
	switch status {
	case models.SyncStatusSyncing:
		return "sync in progress"
	case models.SyncStatusError:
		return "last sync failed"
	case models.SyncStatusOffline:
		return "waiting for connectivity"
	default:
		return "idle"
	}
}
