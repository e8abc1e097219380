// Package resolve holds the pure conflict-resolution rules used by the
// pull phase. Habits resolve by last-write-wins on timestamps; logs
// are idempotent marks and resolve by existence.
package resolve

import (
	"github.com/iudanet/habitsync/internal/models"
	"github.com/iudanet/habitsync/pkg/api"
)

// Resolution says which side of a habit conflict won
type Resolution int

// Possible resolutions
const (
	ResolutionRemote Resolution = iota
	ResolutionLocal
)

func (r Resolution) String() string {
	if r == ResolutionLocal {
		return "local"
	}
	return "remote"
}

// Habit applies last-write-wins between a local habit and its remote
// counterpart. A strictly newer local timestamp wins and the merged
// record is the local fields with the remote identity copied over
// (first-sync fixup). Otherwise remote wins and the merged record
// replaces every editable field, keeping the local identity fixed.
// Equal timestamps resolve to remote: the server is the tiebreak
// authority.
func Habit(local *models.Habit, remote api.Habit) (Resolution, *models.Habit) {
	if local.UpdatedAt > remote.UpdatedAt {
		merged := local.Clone()
		merged.RemoteID = remote.ID
		return ResolutionLocal, merged
	}

	merged := local.Clone()
	merged.RemoteID = remote.ID
	merged.Name = remote.Name
	merged.Description = remote.Description
	merged.Color = remote.Color
	merged.UpdatedAt = remote.UpdatedAt
	return ResolutionRemote, merged
}

// Materialize converts a remote habit the local store has never seen
// into a local record. The store assigns the local identity on write.
func Materialize(remote api.Habit) *models.Habit {
	return &models.Habit{
		RemoteID:    remote.ID,
		Name:        remote.Name,
		Description: remote.Description,
		Color:       remote.Color,
		CreatedAt:   remote.CreatedAt,
		UpdatedAt:   remote.UpdatedAt,
	}
}

// LogMerge is the pull-phase plan for completion logs.
// Create holds remote-only logs to materialize locally; Reconcile
// holds local logs that exist remotely but still lack their remote
// identity. Local-only logs are left alone for the push phase.
type LogMerge struct {
	Create    []*models.HabitLog
	Reconcile []*models.HabitLog
}

// Logs plans the existence-based merge of completion logs.
// habitsByRemoteID maps remote habit identities to local habits;
// remote logs whose parent is unknown locally are skipped (the parent
// is either being deleted or will materialize on a later pass).
func Logs(local []*models.HabitLog, remote []api.HabitLog, habitsByRemoteID map[string]*models.Habit) LogMerge {
	type key struct {
		habitLocalID uint64
		date         string
	}

	index := make(map[key]*models.HabitLog, len(local))
	for _, l := range local {
		index[key{l.HabitLocalID, l.Date}] = l
	}

	var plan LogMerge
	for _, r := range remote {
		parent, ok := habitsByRemoteID[r.HabitID]
		if !ok {
			continue
		}

		existing, ok := index[key{parent.LocalID, r.Date}]
		if !ok {
			plan.Create = append(plan.Create, &models.HabitLog{
				RemoteID:     r.ID,
				Date:         r.Date,
				HabitLocalID: parent.LocalID,
				CreatedAt:    r.CreatedAt,
				Synced:       true,
			})
			continue
		}

		if !existing.Synced || existing.RemoteID == "" {
			fixed := existing.Clone()
			fixed.RemoteID = r.ID
			fixed.Synced = true
			plan.Reconcile = append(plan.Reconcile, fixed)
		}
	}

	return plan
}

// MissingRemotely returns local habits that were pushed before but are
// absent from a fresh full remote listing: they were deleted remotely
// and must be cascade-deleted locally. Habits with a pending queued
// delete are skipped (the absence is our own doing, not news).
func MissingRemotely(local []*models.Habit, remote []api.Habit, pendingDeletes map[string]bool) []*models.Habit {
	remoteIDs := make(map[string]bool, len(remote))
	for _, r := range remote {
		remoteIDs[r.ID] = true
	}

	var missing []*models.Habit
	for _, h := range local {
		if h.RemoteID == "" || remoteIDs[h.RemoteID] || pendingDeletes[h.RemoteID] {
			continue
		}
		missing = append(missing, h)
	}

	return missing
}
