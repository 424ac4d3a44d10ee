package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/models"
)

// Names of the kv rows backing the cache. All records live in one JSON array
// under recordsKey; the remaining keys hold scalar sync metadata.
const (
	recordsKey            = "saved_records"
	lastSyncKey           = "last_sync_timestamp"
	encryptionEnabledKey  = "encryption_enabled"
	migrationCompletedKey = "migration_completed"
	cloudBackupEnabledKey = "cloud_backup_enabled"
)

type recordCache struct {
	*DB
	cipher RecordCipher
	logger *logger.Logger
}

func NewRecordCache(db *DB, cipher RecordCipher, logger *logger.Logger) LocalCache {
	return &recordCache{
		DB:     db,
		cipher: cipher,
		logger: logger,
	}
}

func (c *recordCache) Load(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	records, err := c.LoadRaw(ctx)
	if err != nil {
		return nil, err
	}

	records, err = c.migrateIfNeeded(ctx, records)
	if err != nil {
		return nil, err
	}

	out := make([]models.Record, 0, len(records))
	for _, record := range records {
		decrypted, decErr := c.cipher.DecryptRecord(ctx, record)
		if decErr != nil {
			log.Warn().
				Str("func", "recordCache.Load").
				Str("id", record.ID).
				Msg("record could not be decrypted, returning locked")
			record.Locked = true
			out = append(out, record)
			continue
		}
		out = append(out, decrypted)
	}

	return out, nil
}

func (c *recordCache) LoadRaw(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	raw, err := c.getValue(ctx, recordsKey)
	if err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return []models.Record{}, nil
		}
		return nil, err
	}

	var records []models.Record
	if err = json.Unmarshal([]byte(raw), &records); err != nil {
		log.Err(err).
			Str("func", "recordCache.LoadRaw").
			Msg("failed to decode cached records blob")
		return nil, fmt.Errorf("failed to decode cached records: %w", err)
	}

	return records, nil
}

func (c *recordCache) Save(ctx context.Context, records []models.Record) error {
	log := logger.FromContext(ctx)

	if records == nil {
		records = []models.Record{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		log.Err(err).
			Str("func", "recordCache.Save").
			Msg("failed to encode records blob")
		return fmt.Errorf("failed to encode records: %w", err)
	}

	return c.setValues(ctx, map[string]string{recordsKey: string(payload)})
}

func (c *recordCache) Upsert(ctx context.Context, record models.Record) error {
	records, err := c.LoadRaw(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if matches(records[i], record.ID) || (record.DocumentRef != "" && matches(records[i], record.DocumentRef)) {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return c.Save(ctx, records)
}

func (c *recordCache) Remove(ctx context.Context, ref string) error {
	log := logger.FromContext(ctx)

	records, err := c.LoadRaw(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, record := range records {
		if matches(record, ref) {
			found = true
			continue
		}
		kept = append(kept, record)
	}

	if !found {
		log.Warn().
			Str("func", "recordCache.Remove").
			Str("ref", ref).
			Msg("no cached record matched for removal")
		return fmt.Errorf("remove %q: %w", ref, ErrRecordNotFound)
	}

	return c.Save(ctx, kept)
}

func (c *recordCache) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteAllValues)
	if err != nil {
		log.Err(err).
			Str("func", "recordCache.Clear").
			Msg("failed to wipe cache")
		return fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return nil
}

func (c *recordCache) Metadata(ctx context.Context) (models.SyncMetadata, error) {
	var meta models.SyncMetadata

	lastSync, err := c.getValue(ctx, lastSyncKey)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		return models.SyncMetadata{}, err
	}
	if lastSync != "" {
		ms, parseErr := strconv.ParseInt(lastSync, 10, 64)
		if parseErr != nil {
			return models.SyncMetadata{}, fmt.Errorf("failed to parse %s: %w", lastSyncKey, parseErr)
		}
		meta.LastSyncAt = ms
	}

	for _, kv := range []struct {
		key string
		dst *bool
	}{
		{encryptionEnabledKey, &meta.EncryptionEnabled},
		{migrationCompletedKey, &meta.MigrationCompleted},
		{cloudBackupEnabledKey, &meta.CloudBackupEnabled},
	} {
		key, dst := kv.key, kv.dst
		raw, getErr := c.getValue(ctx, key)
		if getErr != nil {
			if errors.Is(getErr, ErrValueNotFound) {
				continue
			}
			return models.SyncMetadata{}, getErr
		}
		val, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return models.SyncMetadata{}, fmt.Errorf("failed to parse %s: %w", key, parseErr)
		}
		*dst = val
	}

	return meta, nil
}

func (c *recordCache) SetMetadata(ctx context.Context, meta models.SyncMetadata) error {
	return c.setValues(ctx, map[string]string{
		lastSyncKey:           strconv.FormatInt(meta.LastSyncAt, 10),
		encryptionEnabledKey:  strconv.FormatBool(meta.EncryptionEnabled),
		migrationCompletedKey: strconv.FormatBool(meta.MigrationCompleted),
		cloudBackupEnabledKey: strconv.FormatBool(meta.CloudBackupEnabled),
	})
}

// migrateIfNeeded runs the one-time re-encryption pass over records written
// by the legacy plaintext/XOR scheme. A record that fails re-encryption is
// left as stored and marked locked; the pass still completes.
func (c *recordCache) migrateIfNeeded(ctx context.Context, records []models.Record) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	meta, err := c.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	if meta.MigrationCompleted {
		return records, nil
	}

	needsPass := false
	for _, record := range records {
		if c.cipher.NeedsEncryption(record) {
			needsPass = true
			break
		}
	}

	if needsPass {
		// no active key means the pass cannot run; retry on a later Load
		if !c.cipher.Ready() {
			log.Debug().
				Str("func", "recordCache.migrateIfNeeded").
				Msg("plaintext records present but no active key, deferring migration")
			return records, nil
		}

		migrated := 0
		skipped := 0
		for i := range records {
			if !c.cipher.NeedsEncryption(records[i]) {
				continue
			}
			encrypted, encErr := c.cipher.EncryptRecord(ctx, records[i])
			if encErr != nil {
				log.Warn().
					Str("func", "recordCache.migrateIfNeeded").
					Str("id", records[i].ID).
					Msg("record failed re-encryption, leaving locked")
				records[i].Locked = true
				skipped++
				continue
			}
			records[i] = encrypted
			migrated++
		}

		if err = c.Save(ctx, records); err != nil {
			return nil, err
		}
		log.Info().
			Str("func", "recordCache.migrateIfNeeded").
			Int("migrated", migrated).
			Int("skipped", skipped).
			Msg("legacy records re-encrypted")
	}

	meta.MigrationCompleted = true
	meta.EncryptionEnabled = true
	if err = c.SetMetadata(ctx, meta); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *recordCache) getValue(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	row := c.DB.QueryRowContext(ctx, getValue, name)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrValueNotFound, name)
		}
		log.Err(err).
			Str("func", "recordCache.getValue").
			Str("name", name).
			Msg("failed to scan kv row")
		return "", fmt.Errorf("%w: %s", ErrScanningRow, err)
	}

	return value, nil
}

// setValues writes all pairs inside a single transaction so the blob and its
// metadata never diverge mid-write.
func (c *recordCache) setValues(ctx context.Context, values map[string]string) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "recordCache.setValues").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %s", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for name, value := range values {
		if _, err = tx.ExecContext(ctx, upsertValue, name, value); err != nil {
			log.Err(err).
				Str("func", "recordCache.setValues").
				Str("name", name).
				Msg("failed to upsert kv row")
			return fmt.Errorf("%w: %s", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "recordCache.setValues").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %s", ErrCommitingTransaction, err)
	}

	return nil
}

func matches(record models.Record, ref string) bool {
	if ref == "" {
		return false
	}
	return record.ID == ref || record.DocumentRef == ref
}
