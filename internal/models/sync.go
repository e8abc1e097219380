package models

// SyncStatus is the sync engine state machine status
type SyncStatus string

// Sync engine states
const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusError   SyncStatus = "error"
	SyncStatusOffline SyncStatus = "offline"
)

// SyncState is a volatile snapshot of the last sync attempt.
// Single instance per process, safe to lose on restart.
type SyncState struct {
	Status       SyncStatus `json:"status"`
	LastError    string     `json:"last_error,omitempty"`
	LastSyncAt   int64      `json:"last_sync_at"` // unix milliseconds
	PendingCount int        `json:"pending_count"`
}

// ConnectionState tracks online/offline transitions.
// Updated only by the connectivity monitor.
type ConnectionState struct {
	Online        bool  `json:"online"`
	LastOnlineAt  int64 `json:"last_online_at"`  // unix milliseconds
	LastOfflineAt int64 `json:"last_offline_at"` // unix milliseconds
}
