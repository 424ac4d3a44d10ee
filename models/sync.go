package models

import "time"

// SyncMetadata tracks per-device synchronization state. One instance exists
// per install; the sync engine mutates it after every successful remote
// operation.
type SyncMetadata struct {
	// LastSyncAt is the time of the last successful remote operation,
	// persisted as epoch milliseconds.
	LastSyncAt int64 `json:"last_sync_timestamp"`

	// EncryptionEnabled reports whether records written by this device
	// are encrypted with the current scheme.
	EncryptionEnabled bool `json:"encryption_enabled"`

	// MigrationCompleted guards the one-time plaintext-to-encrypted
	// migration scan so it does not repeat on every load.
	MigrationCompleted bool `json:"migration_completed"`

	// CloudBackupEnabled controls whether mutating operations schedule a
	// debounced full backup.
	CloudBackupEnabled bool `json:"cloud_backup_enabled"`
}

// BackupSnapshot is an immutable point-in-time export of one owner's records.
// Each upload fully replaces the previous snapshot on the remote backend
// (last-writer-wins, single snapshot per owner). Records inside a snapshot
// are always stored encrypted.
type BackupSnapshot struct {
	OwnerScopeHash    string            `json:"owner_scope_hash"`
	Records           []Record          `json:"records"`
	TotalCount        int               `json:"total_count"`
	EncryptionVersion EncryptionVersion `json:"encryption_version"`
	CreatedAt         time.Time         `json:"created_at"`
}

// RemoteFilter narrows remote queries to one owner. ScopeHash is the normal
// path; OwnerID exists for backward-reads of documents written before scope
// hashing and must never be set on writes.
type RemoteFilter struct {
	ScopeHash string `json:"scope_hash,omitempty"`
	OwnerID   string `json:"owner_id,omitempty"`
}
