package connectivity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetOnline_NotifiesOnTransitionsOnly(t *testing.T) {
	m := New("http://localhost:0", testLogger())

	var got []bool
	unsub := m.OnChange(func(s models.ConnectionState) {
		got = append(got, s.Online)
	})
	defer unsub()

	m.SetOnline(true) // already online: nobody notified
	m.SetOnline(false)
	m.SetOnline(false) // re-confirmation: nobody notified
	m.SetOnline(true)

	assert.Equal(t, []bool{false, true}, got)

	state := m.State()
	assert.True(t, state.Online)
	assert.NotZero(t, state.LastOnlineAt)
	assert.NotZero(t, state.LastOfflineAt)
}

func TestSetOnline_ReconfirmationRefreshesTimestamp(t *testing.T) {
	m := New("http://localhost:0", testLogger())

	notified := 0
	unsub := m.OnChange(func(models.ConnectionState) { notified++ })
	defer unsub()

	m.SetOnline(false)
	first := m.State().LastOfflineAt
	require.NotZero(t, first)

	// A failed probe while already offline still records when we
	// last saw the server unreachable
	time.Sleep(2 * time.Millisecond)
	m.SetOnline(false)

	assert.GreaterOrEqual(t, m.State().LastOfflineAt, first+1)
	assert.Equal(t, 1, notified)
}

func TestOnChange_Unsubscribe(t *testing.T) {
	m := New("http://localhost:0", testLogger())

	calls := 0
	unsub := m.OnChange(func(models.ConnectionState) { calls++ })

	m.SetOnline(false)
	unsub()
	m.SetOnline(true)

	assert.Equal(t, 1, calls)
}

func TestOnChange_PanickingSubscriberIsIsolated(t *testing.T) {
	m := New("http://localhost:0", testLogger())

	m.OnChange(func(models.ConnectionState) { panic("boom") })
	survived := false
	m.OnChange(func(models.ConnectionState) { survived = true })

	assert.NotPanics(t, func() { m.SetOnline(false) })
	assert.True(t, survived)
	assert.False(t, m.Online())
}

func TestProbe_ReachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New(srv.URL, testLogger(), WithInitialState(false))

	require.True(t, m.Probe(context.Background()))
	assert.True(t, m.Online())
	assert.NotZero(t, m.State().LastOnlineAt)
}

func TestProbe_UnreachableServerGoesOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	m := New(srv.URL, testLogger())

	require.False(t, m.Probe(context.Background()))
	assert.False(t, m.Online())
	assert.NotZero(t, m.State().LastOfflineAt)
}

func TestProbe_TimeoutBounded(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	m := New(srv.URL, testLogger(), WithProbeTimeout(50*time.Millisecond))

	start := time.Now()
	online := m.Probe(context.Background())
	elapsed := time.Since(start)

	assert.False(t, online)
	assert.Less(t, elapsed, time.Second)
}
