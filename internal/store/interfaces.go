package store

import (
	"context"

	"github.com/credvault/credvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalCache is the durable client-side record cache. Records are stored as a
// single JSON blob alongside scalar sync metadata; every mutation replaces
// the blob atomically.
type LocalCache interface {
	// Load returns all cached records decrypted for presentation. Records
	// whose ciphertext cannot be decrypted are returned locked with their
	// sensitive fields blanked. The first Load after the legacy scheme ran a
	// one-time re-encryption pass over plaintext records.
	Load(ctx context.Context) ([]models.Record, error)

	// LoadRaw returns all cached records exactly as stored, ciphertext
	// included.
	LoadRaw(ctx context.Context) ([]models.Record, error)

	// Save replaces the whole cached record set.
	Save(ctx context.Context, records []models.Record) error

	// Upsert inserts or replaces a single record, matched by id or document
	// ref.
	Upsert(ctx context.Context, record models.Record) error

	// Remove deletes a single record, matched by id or document ref.
	// Returns [ErrRecordNotFound] when no record matches.
	Remove(ctx context.Context, ref string) error

	// Clear wipes all cached records and sync metadata.
	Clear(ctx context.Context) error

	// Metadata returns the scalar sync metadata. Missing keys yield zero
	// values.
	Metadata(ctx context.Context) (models.SyncMetadata, error)

	// SetMetadata replaces the scalar sync metadata.
	SetMetadata(ctx context.Context, meta models.SyncMetadata) error
}

// RecordCipher is the slice of the record codec the cache needs for the
// migration pass and for decrypting loads. Implemented by the service layer.
type RecordCipher interface {
	EncryptRecord(ctx context.Context, record models.Record) (models.Record, error)
	DecryptRecord(ctx context.Context, record models.Record) (models.Record, error)
	NeedsEncryption(record models.Record) bool
	Ready() bool
}
