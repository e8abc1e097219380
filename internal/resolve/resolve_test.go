package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/pkg/api"
)

func TestHabit_LastWriteWins(t *testing.T) {
	tests := []struct {
		name      string
		localTS   int64
		remoteTS  int64
		want      Resolution
		wantName  string
		wantColor string
	}{
		{
			name:     "strictly newer local wins",
			localTS:  2000,
			remoteTS: 1000,
			want:     ResolutionLocal,
			wantName: "local name",
		},
		{
			name:     "strictly newer remote wins",
			localTS:  1000,
			remoteTS: 2000,
			want:     ResolutionRemote,
			wantName: "remote name",
		},
		{
			name:     "equal timestamps resolve to remote",
			localTS:  1500,
			remoteTS: 1500,
			want:     ResolutionRemote,
			wantName: "remote name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := &models.Habit{
				LocalID:   7,
				Name:      "local name",
				Color:     "#111111",
				UpdatedAt: tt.localTS,
			}
			remote := api.Habit{
				ID:        "r-1",
				Name:      "remote name",
				Color:     "#222222",
				UpdatedAt: tt.remoteTS,
			}

			res, merged := Habit(local, remote)
			assert.Equal(t, tt.want, res)
			assert.Equal(t, tt.wantName, merged.Name)

			// Merge never rewrites identity fields
			assert.Equal(t, uint64(7), merged.LocalID)
			assert.Equal(t, "r-1", merged.RemoteID)
		})
	}
}

func TestHabit_FirstSyncIdentityFixup(t *testing.T) {
	local := &models.Habit{LocalID: 3, Name: "run", UpdatedAt: 5000}
	remote := api.Habit{ID: "r-9", Name: "run", UpdatedAt: 4000}

	res, merged := Habit(local, remote)
	require.Equal(t, ResolutionLocal, res)
	assert.Equal(t, "r-9", merged.RemoteID)
	assert.Equal(t, int64(5000), merged.UpdatedAt)
}

func TestHabit_Deterministic(t *testing.T) {
	local := &models.Habit{LocalID: 1, Name: "a", UpdatedAt: 100}
	remote := api.Habit{ID: "r", Name: "b", UpdatedAt: 200}

	res1, m1 := Habit(local, remote)
	res2, m2 := Habit(local, remote)
	assert.Equal(t, res1, res2)
	assert.Equal(t, m1, m2)
}

func TestLogs_ExistenceMerge(t *testing.T) {
	parent := &models.Habit{LocalID: 4, RemoteID: "rh-1"}
	habits := map[string]*models.Habit{"rh-1": parent}

	local := []*models.HabitLog{
		{HabitLocalID: 4, Date: "2026-08-01", RemoteID: "rl-1", Synced: true}, // both sides
		{HabitLocalID: 4, Date: "2026-08-02"},                                 // local only
		{HabitLocalID: 4, Date: "2026-08-03"},                                 // both, not yet synced
	}
	remote := []api.HabitLog{
		{ID: "rl-1", HabitID: "rh-1", Date: "2026-08-01"},
		{ID: "rl-3", HabitID: "rh-1", Date: "2026-08-03"},
		{ID: "rl-4", HabitID: "rh-1", Date: "2026-08-04"}, // remote only
		{ID: "rl-5", HabitID: "rh-unknown", Date: "2026-08-04"},
	}

	plan := Logs(local, remote, habits)

	// Remote-only materializes locally
	require.Len(t, plan.Create, 1)
	assert.Equal(t, "2026-08-04", plan.Create[0].Date)
	assert.Equal(t, uint64(4), plan.Create[0].HabitLocalID)
	assert.True(t, plan.Create[0].Synced)

	// Both-sides-unsynced gets its remote identity fixed up
	require.Len(t, plan.Reconcile, 1)
	assert.Equal(t, "2026-08-03", plan.Reconcile[0].Date)
	assert.Equal(t, "rl-3", plan.Reconcile[0].RemoteID)
	assert.True(t, plan.Reconcile[0].Synced)
}

func TestLogs_IdempotentPlan(t *testing.T) {
	parent := &models.Habit{LocalID: 4, RemoteID: "rh-1"}
	habits := map[string]*models.Habit{"rh-1": parent}

	remote := []api.HabitLog{{ID: "rl-1", HabitID: "rh-1", Date: "2026-08-01"}}
	local := []*models.HabitLog{{HabitLocalID: 4, Date: "2026-08-01", RemoteID: "rl-1", Synced: true}}

	// Unchanged remote data plans no further writes
	plan := Logs(local, remote, habits)
	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Reconcile)
}

func TestMissingRemotely(t *testing.T) {
	local := []*models.Habit{
		{LocalID: 1, RemoteID: "a"},
		{LocalID: 2, RemoteID: "b"},
		{LocalID: 3, RemoteID: "c"},
		{LocalID: 4}, // never pushed, invisible to deletion detection
	}
	remote := []api.Habit{{ID: "a"}}
	pendingDeletes := map[string]bool{"c": true}

	missing := MissingRemotely(local, remote, pendingDeletes)
	require.Len(t, missing, 1)
	assert.Equal(t, uint64(2), missing[0].LocalID)
}
