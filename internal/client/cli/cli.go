// Package cli implements the habitsync command set. Commands are thin:
// they parse arguments, call the services and print. All habit
// mutations are local-only; the network is touched by sync and watch
// (and by login/register).
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/habitsync/internal/client/auth"
	"github.com/iudanet/habitsync/internal/client/connectivity"
	"github.com/iudanet/habitsync/internal/client/data"
	"github.com/iudanet/habitsync/internal/client/iocli"
	"github.com/iudanet/habitsync/internal/client/storage"
	syncer "github.com/iudanet/habitsync/internal/client/sync"
)

// DefaultWatchInterval is the probe cadence of the watch command
const DefaultWatchInterval = 30 * time.Second

type Cli struct {
	io      iocli.IO
	auth    *auth.Service
	habits  data.Service
	engine  *syncer.Engine
	monitor *connectivity.Monitor
	queue   storage.QueueStorage
}

func New(
	io iocli.IO,
	authService *auth.Service,
	habits data.Service,
	engine *syncer.Engine,
	monitor *connectivity.Monitor,
	queue storage.QueueStorage,
) *Cli {
	return &Cli{
		io:      io,
		auth:    authService,
		habits:  habits,
		engine:  engine,
		monitor: monitor,
		queue:   queue,
	}
}

// Run dispatches one command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx)
	case "done":
		return c.runDone(ctx, args)
	case "undone":
		return c.runUndone(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	case "rm":
		return c.runDelete(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "purge":
		return c.runPurge(ctx)
	case "watch":
		return c.runWatch(ctx, DefaultWatchInterval)
	case "help", "":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command reference
func (c *Cli) PrintUsage() {
	c.io.Println(`Usage: habitsync <command> [arguments]

Commands:
  register              create an account and sign in
  login                 sign in on this device
  logout                sign out and drop the local session
  add <name>            track a new habit (flags before the name:
                        -d description, -c #rrggbb)
  list                  show habits with streaks
  done <id> [date]      mark a habit completed (date defaults to today)
  undone <id> [date]    remove a completion mark
  history <id>          show a habit's completion dates
  rm <id>               stop tracking a habit and delete its history
  status                session, connectivity and sync state
  sync                  push local changes and pull remote state now
  purge                 discard queued changes that keep failing to sync
  watch                 stay running, probe connectivity and sync

All habit commands work offline; changes are queued and pushed on the
next sync.`)
}
