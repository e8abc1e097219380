// Package connectivity tracks whether the remote server is reachable.
// State transitions come from the host platform (or an explicit probe);
// subscribers are notified synchronously on every transition.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/habitsync/internal/models"
)

// DefaultProbeTimeout bounds how long a reachability probe may block
const DefaultProbeTimeout = 5 * time.Second

// Monitor holds the process-wide connection state.
// Only the monitor itself mutates it.
type Monitor struct {
	httpClient *http.Client
	logger     *slog.Logger
	subs       map[int]func(models.ConnectionState)
	probeURL   string
	timeout    time.Duration

	mu      sync.RWMutex
	state   models.ConnectionState
	nextSub int
}

// Option configures a Monitor
type Option func(*Monitor)

// WithProbeTimeout overrides the default probe timeout
func WithProbeTimeout(d time.Duration) Option {
	return func(m *Monitor) { m.timeout = d }
}

// WithHTTPClient overrides the probe HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(m *Monitor) { m.httpClient = c }
}

// WithInitialState sets the starting state as reported by the host
// platform. Default is online.
func WithInitialState(online bool) Option {
	return func(m *Monitor) { m.state.Online = online }
}

// New creates a monitor probing the given URL
func New(probeURL string, logger *slog.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		probeURL:   probeURL,
		logger:     logger,
		timeout:    DefaultProbeTimeout,
		httpClient: &http.Client{},
		subs:       make(map[int]func(models.ConnectionState)),
		state:      models.ConnectionState{Online: true},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Online reports the current connectivity flag
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Online
}

// State returns a snapshot of the connection state
func (m *Monitor) State() models.ConnectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// OnChange registers a handler invoked synchronously on every
// online/offline transition. Returns an unsubscribe function.
func (m *Monitor) OnChange(handler func(models.ConnectionState)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = handler
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// SetOnline records a platform-reported connectivity change.
// Re-confirming the current state refreshes its timestamp but
// notifies nobody.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	now := time.Now().UnixMilli()
	if online {
		m.state.LastOnlineAt = now
	} else {
		m.state.LastOfflineAt = now
	}
	if m.state.Online == online {
		m.mu.Unlock()
		return
	}

	m.state.Online = online
	state := m.state

	handlers := make([]func(models.ConnectionState), 0, len(m.subs))
	for _, h := range m.subs {
		handlers = append(handlers, h)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed", "online", online)

	for _, h := range handlers {
		m.notify(h, state)
	}
}

// notify invokes one handler, isolating its panics from the monitor
// and from the other subscribers
func (m *Monitor) notify(handler func(models.ConnectionState), state models.ConnectionState) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("connectivity subscriber panicked", "panic", r)
		}
	}()
	handler(state)
}

// Probe performs one lightweight round trip to verify actual
// reachability: an OS-level online flag can be a captive portal with
// no real route to the server. Any response, whatever the status,
// counts as reachable; a transport error or timeout does not. The
// result is recorded as the new connection state.
func (m *Monitor) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	online := false

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.probeURL, nil)
	if err != nil {
		m.logger.Error("failed to build probe request", "error", err)
	} else {
		resp, err := m.httpClient.Do(req)
		if err != nil {
			m.logger.Debug("probe failed", "error", err)
		} else {
			_ = resp.Body.Close()
			online = true
		}
	}

	m.SetOnline(online)
	return online
}
