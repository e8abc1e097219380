// Package sync orchestrates reconciliation between the local store and
// the remote API: it drains the durable operation queue (push), then
// fetches authoritative remote state and merges it locally (pull).
// At most one sync pass runs at a time; extra triggers coalesce.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	apiclient "github.com/iudanet/habitsync/internal/client/api"
	"github.com/iudanet/habitsync/internal/client/connectivity"
	"github.com/iudanet/habitsync/internal/client/storage"
	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/internal/resolve"
	"github.com/iudanet/habitsync/pkg/api"
)

// Defaults
const (
	// DefaultDebounce coalesces bursts of local edits into one pass
	DefaultDebounce = 300 * time.Millisecond

	// DefaultMaxRetries is the retry budget an explicit purge uses to
	// decide that an entry is stuck. Sync itself never drops entries.
	DefaultMaxRetries = 5
)

// TokenSource yields the access token of the current principal.
// Implemented by auth.Service.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Engine is the sync state machine. It holds no durable state of its
// own: SyncState is a volatile cache of the last attempt, safe to
// lose on restart.
type Engine struct {
	api     apiclient.ClientAPI
	habits  storage.HabitStorage
	queue   storage.QueueStorage
	monitor *connectivity.Monitor
	tokens  TokenSource
	logger  *slog.Logger

	syncing atomic.Bool

	stateMu sync.RWMutex
	state   models.SyncState
	subs    map[int]func(models.SyncState)
	nextSub int

	timerMu  sync.Mutex
	timer    *time.Timer
	debounce time.Duration
}

// Option configures an Engine
type Option func(*Engine)

// WithDebounce overrides the queue-trigger debounce interval
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) { e.debounce = d }
}

// New creates a sync engine
func New(
	api apiclient.ClientAPI,
	habits storage.HabitStorage,
	queue storage.QueueStorage,
	monitor *connectivity.Monitor,
	tokens TokenSource,
	logger *slog.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		api:      api,
		habits:   habits,
		queue:    queue,
		monitor:  monitor,
		tokens:   tokens,
		logger:   logger,
		debounce: DefaultDebounce,
		subs:     make(map[int]func(models.SyncState)),
		state:    models.SyncState{Status: models.SyncStatusIdle},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a snapshot of the sync state
func (e *Engine) State() models.SyncState {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.state
}

// OnChange registers a handler invoked synchronously on every state
// change. Returns an unsubscribe function.
func (e *Engine) OnChange(handler func(models.SyncState)) func() {
	e.stateMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = handler
	e.stateMu.Unlock()

	return func() {
		e.stateMu.Lock()
		delete(e.subs, id)
		e.stateMu.Unlock()
	}
}

// Reset clears the sync state back to idle
func (e *Engine) Reset() {
	e.mutateState(func(s *models.SyncState) {
		*s = models.SyncState{Status: models.SyncStatusIdle}
	})
}

// Bind subscribes the engine to connectivity transitions: going
// offline parks the state machine in the offline side-state, coming
// back online kicks off a pass. Returns an unsubscribe function.
func (e *Engine) Bind() func() {
	return e.monitor.OnChange(func(state models.ConnectionState) {
		if state.Online {
			e.Sync(context.Background())
			return
		}
		e.mutateState(func(s *models.SyncState) {
			s.Status = models.SyncStatusOffline
			s.LastError = "offline"
		})
	})
}

// QueueChanged is the debounced queue trigger: each call resets the
// timer so a burst of rapid local edits becomes one network round
// trip.
func (e *Engine) QueueChanged() {
	e.timerMu.Lock()
	defer e.timerMu.Unlock()

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.Sync(context.Background())
	})
}

// Close stops any pending debounced trigger
func (e *Engine) Close() {
	e.timerMu.Lock()
	defer e.timerMu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Sync runs one push+pull pass. Returns false without side effects
// when a pass is already in flight, and false after recording the
// reason when offline or signed out. Per-entry push failures are
// absorbed (retry counter, next entry); only pass-level failures move
// the machine to the error state. PendingCount is refreshed from the
// queue at the end no matter how the pass went.
func (e *Engine) Sync(ctx context.Context) bool {
	if !e.syncing.CompareAndSwap(false, true) {
		e.logger.Debug("sync already in progress, coalescing")
		return false
	}
	defer e.syncing.Store(false)
	defer e.refreshPendingCount(ctx)

	if !e.monitor.Online() {
		e.mutateState(func(s *models.SyncState) {
			s.Status = models.SyncStatusOffline
			s.LastError = "offline"
		})
		return false
	}

	token, err := e.tokens.Token(ctx)
	if err != nil {
		e.logger.Info("sync declined", "reason", err)
		e.mutateState(func(s *models.SyncState) {
			s.Status = models.SyncStatusIdle
			s.LastError = "not authenticated"
		})
		return false
	}

	e.mutateState(func(s *models.SyncState) {
		s.Status = models.SyncStatusSyncing
	})
	e.logger.Info("sync started")

	err = e.push(ctx, token)
	if err == nil {
		err = e.pull(ctx, token)
	}

	if err != nil {
		e.logger.Error("sync failed", "error", err)
		e.mutateState(func(s *models.SyncState) {
			s.Status = models.SyncStatusError
			s.LastError = err.Error()
		})
		return true
	}

	e.mutateState(func(s *models.SyncState) {
		s.Status = models.SyncStatusIdle
		s.LastError = ""
		s.LastSyncAt = time.Now().UnixMilli()
	})
	e.logger.Info("sync completed")
	return true
}

// push drains the queue in FIFO order. A failing entry is nacked and
// the loop moves on: one bad entry never blocks the rest. Only a
// failure to read the queue itself aborts the phase.
func (e *Engine) push(ctx context.Context, token string) error {
	ops, err := e.queue.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	for _, op := range ops {
		if err := e.pushOp(ctx, token, op); err != nil {
			e.logger.Warn("push entry failed",
				"op_id", op.ID,
				"action", op.Action,
				"target", op.Target,
				"retry_count", op.RetryCount,
				"error", err)
			if nackErr := e.queue.Nack(ctx, op.ID); nackErr != nil {
				e.logger.Error("failed to nack entry", "op_id", op.ID, "error", nackErr)
			}
			continue
		}

		if ackErr := e.queue.Ack(ctx, op.ID); ackErr != nil {
			e.logger.Error("failed to ack entry", "op_id", op.ID, "error", ackErr)
		}
	}

	return nil
}

// pushOp translates one queue entry into a remote call.
// A nil return means the entry is done and may be acked, including
// no-op outcomes like pushing a create for a record deleted locally
// in the meantime.
func (e *Engine) pushOp(ctx context.Context, token string, op *models.Operation) error {
	switch {
	case op.Target == models.TargetHabit && op.Action == models.ActionCreate:
		return e.pushHabitCreate(ctx, token, op)
	case op.Target == models.TargetHabit && op.Action == models.ActionUpdate:
		return e.pushHabitUpdate(ctx, token, op)
	case op.Target == models.TargetHabit && op.Action == models.ActionDelete:
		return e.pushHabitDelete(ctx, token, op)
	case op.Target == models.TargetLog && op.Action == models.ActionCreate:
		return e.pushLogCreate(ctx, token, op)
	case op.Target == models.TargetLog && op.Action == models.ActionDelete:
		return e.pushLogDelete(ctx, token, op)
	default:
		return fmt.Errorf("unknown operation %s/%s", op.Target, op.Action)
	}
}

func (e *Engine) pushHabitCreate(ctx context.Context, token string, op *models.Operation) error {
	var payload models.HabitOp
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("bad payload: %w", err)
	}

	habit, err := e.habits.GetHabit(ctx, payload.LocalID)
	if errors.Is(err, storage.ErrHabitNotFound) {
		// Deleted locally before it was ever pushed
		return nil
	}
	if err != nil {
		return err
	}
	if habit.RemoteID != "" {
		// Already created on a previous pass that crashed before ack
		return nil
	}

	created, err := e.api.CreateHabit(ctx, token, api.HabitRequest{
		Name:        habit.Name,
		Description: habit.Description,
		Color:       habit.Color,
		UpdatedAt:   habit.UpdatedAt,
	})
	if err != nil {
		return err
	}

	// First-sync identity fixup, bypassing the queue
	habit.RemoteID = created.ID
	if err := e.habits.PutHabit(ctx, habit); err != nil {
		return fmt.Errorf("failed to store remote id: %w", err)
	}
	return nil
}

func (e *Engine) pushHabitUpdate(ctx context.Context, token string, op *models.Operation) error {
	var payload models.HabitOp
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("bad payload: %w", err)
	}

	habit, err := e.habits.GetHabit(ctx, payload.LocalID)
	if errors.Is(err, storage.ErrHabitNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if habit.RemoteID == "" {
		// The matching create sits earlier in the queue and has not
		// succeeded yet
		return fmt.Errorf("habit %d has no remote identity yet", habit.LocalID)
	}

	_, err = e.api.UpdateHabit(ctx, token, habit.RemoteID, api.HabitRequest{
		Name:        habit.Name,
		Description: habit.Description,
		Color:       habit.Color,
		UpdatedAt:   habit.UpdatedAt,
	})
	return err
}

func (e *Engine) pushHabitDelete(ctx context.Context, token string, op *models.Operation) error {
	var payload models.HabitDeleteOp
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("bad payload: %w", err)
	}
	if payload.RemoteID == "" {
		return nil
	}
	return e.api.DeleteHabit(ctx, token, payload.RemoteID)
}

func (e *Engine) pushLogCreate(ctx context.Context, token string, op *models.Operation) error {
	var payload models.LogOp
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("bad payload: %w", err)
	}

	log, err := e.habits.GetLog(ctx, payload.HabitLocalID, payload.Date)
	if errors.Is(err, storage.ErrLogNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if log.Synced {
		return nil
	}

	habit, err := e.habits.GetHabit(ctx, payload.HabitLocalID)
	if errors.Is(err, storage.ErrHabitNotFound) {
		// Parent deleted locally; its cascade already queued the
		// remote cleanup
		return nil
	}
	if err != nil {
		return err
	}
	if habit.RemoteID == "" {
		return fmt.Errorf("habit %d has no remote identity yet", habit.LocalID)
	}

	created, err := e.api.CreateLog(ctx, token, habit.RemoteID, api.HabitLogRequest{Date: payload.Date})
	if err != nil {
		return err
	}

	log.RemoteID = created.ID
	log.Synced = true
	if err := e.habits.PutLog(ctx, log); err != nil {
		return fmt.Errorf("failed to mark log synced: %w", err)
	}
	return nil
}

func (e *Engine) pushLogDelete(ctx context.Context, token string, op *models.Operation) error {
	var payload models.LogDeleteOp
	if err := json.Unmarshal(op.Payload, &payload); err != nil {
		return fmt.Errorf("bad payload: %w", err)
	}
	if payload.HabitRemoteID == "" {
		return nil
	}
	return e.api.DeleteLog(ctx, token, payload.HabitRemoteID, payload.Date)
}

// pull fetches the full remote state and merges it into the local
// store: LWW for habits, existence for logs, cascade for remote
// deletions. Any failure here aborts the remaining pull steps but
// keeps whatever the push phase already achieved.
func (e *Engine) pull(ctx context.Context, token string) error {
	remoteHabits, err := e.api.ListHabits(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch remote habits: %w", err)
	}

	localHabits, err := e.habits.ListHabits(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local habits: %w", err)
	}

	pendingDeletes, err := e.pendingHabitDeletes(ctx)
	if err != nil {
		return err
	}

	byRemote := make(map[string]*models.Habit, len(localHabits))
	for _, h := range localHabits {
		if h.RemoteID != "" {
			byRemote[h.RemoteID] = h
		}
	}

	for _, r := range remoteHabits {
		local, ok := byRemote[r.ID]
		if !ok {
			materialized := resolve.Materialize(r)
			if err := e.habits.PutHabit(ctx, materialized); err != nil {
				return fmt.Errorf("failed to materialize habit: %w", err)
			}
			byRemote[r.ID] = materialized
			e.logger.Debug("habit materialized from remote", "remote_id", r.ID)
			continue
		}

		res, merged := resolve.Habit(local, r)
		if *merged != *local {
			if err := e.habits.PutHabit(ctx, merged); err != nil {
				return fmt.Errorf("failed to apply merge: %w", err)
			}
			e.logger.Debug("habit conflict resolved",
				"remote_id", r.ID,
				"winner", res.String())
		}
		byRemote[r.ID] = merged
	}

	// Remote deletions cascade locally, logs included
	for _, gone := range resolve.MissingRemotely(localHabits, remoteHabits, pendingDeletes) {
		if err := e.habits.RemoveHabit(ctx, gone.LocalID); err != nil && !errors.Is(err, storage.ErrHabitNotFound) {
			return fmt.Errorf("failed to apply remote deletion: %w", err)
		}
		delete(byRemote, gone.RemoteID)
		e.logger.Info("habit deleted remotely, removed locally", "remote_id", gone.RemoteID)
	}

	remoteLogs, err := e.api.ListLogs(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch remote logs: %w", err)
	}

	localLogs, err := e.habits.ListLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local logs: %w", err)
	}

	plan := resolve.Logs(localLogs, remoteLogs, byRemote)
	for _, log := range plan.Create {
		if err := e.habits.PutLog(ctx, log); err != nil {
			return fmt.Errorf("failed to materialize log: %w", err)
		}
	}
	for _, log := range plan.Reconcile {
		if err := e.habits.PutLog(ctx, log); err != nil {
			return fmt.Errorf("failed to reconcile log: %w", err)
		}
	}

	return nil
}

// pendingHabitDeletes collects remote ids with a queued local delete,
// so the pull phase does not mistake our own deletions for remote ones
func (e *Engine) pendingHabitDeletes(ctx context.Context) (map[string]bool, error) {
	ops, err := e.queue.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	pending := make(map[string]bool)
	for _, op := range ops {
		if op.Target != models.TargetHabit || op.Action != models.ActionDelete {
			continue
		}
		var payload models.HabitDeleteOp
		if err := json.Unmarshal(op.Payload, &payload); err != nil {
			continue
		}
		if payload.RemoteID != "" {
			pending[payload.RemoteID] = true
		}
	}
	return pending, nil
}

// refreshPendingCount re-reads the queue size so PendingCount never
// drifts from ground truth
func (e *Engine) refreshPendingCount(ctx context.Context) {
	count, err := e.queue.PendingCount(ctx)
	if err != nil {
		e.logger.Warn("failed to refresh pending count", "error", err)
		return
	}

	e.mutateState(func(s *models.SyncState) {
		s.PendingCount = count
	})
}

// mutateState applies fn under the lock and notifies subscribers with
// the resulting snapshot
func (e *Engine) mutateState(fn func(*models.SyncState)) {
	e.stateMu.Lock()
	fn(&e.state)
	state := e.state
	handlers := make([]func(models.SyncState), 0, len(e.subs))
	for _, h := range e.subs {
		handlers = append(handlers, h)
	}
	e.stateMu.Unlock()

	for _, h := range handlers {
		h(state)
	}
}
