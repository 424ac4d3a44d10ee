package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/credvault/credvault/internal/adapter"
	"github.com/credvault/credvault/internal/crypto"
	"github.com/credvault/credvault/internal/keystore"
	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/internal/store"
	"github.com/credvault/credvault/internal/utils"
	"github.com/credvault/credvault/models"
)

// liveCollection is the remote collection holding the working record set, as
// opposed to the replace-on-write backup snapshots.
const liveCollection = "credentials"

// BackupScheduler debounces full backups so a burst of edits collapses into
// one remote write. Implemented by workers.Debouncer.
type BackupScheduler interface {
	Schedule(fn func())
}

//go:generate mockgen -source=sync_engine.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the sync engine: every vault operation the client exposes
// goes through here.
type VaultService interface {
	// StartSession installs the bearer token handed over by the
	// authentication provider and derives the owner scope from it.
	StartSession(ctx context.Context, token string) (models.Session, error)

	// EndSession drops the session and erases the persisted key material.
	EndSession(ctx context.Context) error

	// Session returns the current session; the zero value when none is
	// active.
	Session() models.Session

	// Save encrypts and stores a new record, remote first, then the local
	// mirror. A remote failure aborts the whole operation.
	Save(ctx context.Context, record models.Record) (models.Record, error)

	// Update re-encrypts and replaces an existing record, resolved by
	// local id or document ref.
	Update(ctx context.Context, record models.Record) (models.Record, error)

	// Load returns all records decrypted, preferring the remote store as
	// source of truth and degrading to the local cache when offline.
	Load(ctx context.Context) ([]models.Record, error)

	// Delete removes a record by local id or document ref, remote first.
	// Local removal is skipped, not rolled back, when the remote delete
	// fails.
	Delete(ctx context.Context, ref string) error

	// Backup uploads a full snapshot of the cached record set after
	// proving every field is encrypted. Fails closed: an unprovable field
	// aborts the upload entirely.
	Backup(ctx context.Context) error

	// Restore repopulates an empty local cache from the remote live set,
	// falling back to the latest backup snapshot. Legacy-scheme records
	// are re-encrypted with the current scheme on the way in.
	Restore(ctx context.Context) ([]models.Record, error)

	// SetCloudBackup toggles the debounced backup after mutations.
	SetCloudBackup(ctx context.Context, enabled bool) error

	// EmergencyReset wipes the local cache, the key material, and the
	// session. Destructive; requires confirmed == true.
	EmergencyReset(ctx context.Context, confirmed bool) error

	// Search returns decrypted records whose title, account or website
	// contains the query, case-insensitively. An empty query returns all.
	Search(ctx context.Context, query string) ([]models.Record, error)

	// RecordsByCategory returns decrypted records in the given category.
	RecordsByCategory(ctx context.Context, category string) ([]models.Record, error)

	// CategoryStats counts records per category.
	CategoryStats(ctx context.Context) (map[string]int, error)

	// ExportJSON renders the decrypted vault as indented JSON.
	ExportJSON(ctx context.Context) ([]byte, error)

	// ImportJSON re-encrypts and saves records from an ExportJSON payload,
	// returning how many were imported.
	ImportJSON(ctx context.Context, data []byte) (int, error)
}

type syncEngine struct {
	remote    adapter.RemoteStore
	cache     store.LocalCache
	codec     RecordCodec
	keys      crypto.KeyService
	scheduler BackupScheduler
	logger    *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

func NewSyncEngine(
	remote adapter.RemoteStore,
	cache store.LocalCache,
	codec RecordCodec,
	keys crypto.KeyService,
	scheduler BackupScheduler,
	logger *logger.Logger,
) VaultService {
	return &syncEngine{
		remote:    remote,
		cache:     cache,
		codec:     codec,
		keys:      keys,
		scheduler: scheduler,
		logger:    logger,
	}
}

func (e *syncEngine) StartSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	e.remote.SetToken(token)
	session, err := e.remote.Session()
	if err != nil {
		e.remote.SetToken("")
		return models.Session{}, fmt.Errorf("%w: %s", ErrNotAuthenticated, err)
	}

	e.mu.Lock()
	e.session = session
	e.mu.Unlock()
	e.codec.SetOwner(session.AccountID)

	log.Info().
		Str("func", "syncEngine.StartSession").
		Str("account_id", session.AccountID).
		Msg("session established")

	return session, nil
}

func (e *syncEngine) EndSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	e.session = models.Session{}
	e.mu.Unlock()
	e.remote.SetToken("")
	e.codec.SetOwner("")

	if err := e.keys.Clear(); err != nil && !errors.Is(err, keystore.ErrSecretNotFound) {
		return fmt.Errorf("clear key material on logout: %w", err)
	}

	log.Info().Str("func", "syncEngine.EndSession").Msg("session ended")
	return nil
}

func (e *syncEngine) Session() models.Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session
}

func (e *syncEngine) sessionActive() bool {
	session := e.Session()
	return session.Active()
}

func (e *syncEngine) Save(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if err := e.requireSessionAndKey(); err != nil {
		return models.Record{}, err
	}

	now := time.Now().UTC()
	if record.ID == "" {
		record.ID = utils.NewID()
	}
	if record.DocumentRef == "" {
		record.DocumentRef = utils.NewID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	record.Category = models.NormalizeCategory(record.Category)

	encrypted, err := e.codec.EncryptRecord(ctx, record)
	if err != nil {
		return models.Record{}, err
	}

	if err = e.remote.Put(ctx, liveCollection, encrypted.DocumentRef, encrypted); err != nil {
		log.Err(err).
			Str("func", "syncEngine.Save").
			Str("id", encrypted.ID).
			Msg("remote write failed, nothing mirrored locally")
		return models.Record{}, mapRemoteWriteError(err)
	}

	if err = e.cache.Upsert(ctx, encrypted); err != nil {
		return models.Record{}, fmt.Errorf("mirror saved record locally: %w", err)
	}

	e.touchMetadata(ctx)
	e.scheduleBackup(ctx)

	log.Info().
		Str("func", "syncEngine.Save").
		Str("id", encrypted.ID).
		Msg("record saved")

	return encrypted, nil
}

func (e *syncEngine) Update(ctx context.Context, record models.Record) (models.Record, error) {
	if err := e.requireSessionAndKey(); err != nil {
		return models.Record{}, err
	}

	existing, err := e.findCached(ctx, firstRef(record.ID, record.DocumentRef))
	if err != nil {
		return models.Record{}, err
	}

	record.ID = existing.ID
	record.DocumentRef = existing.DocumentRef
	record.CreatedAt = existing.CreatedAt
	return e.Save(ctx, record)
}

func (e *syncEngine) Load(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if e.sessionActive() {
		records, err := e.remote.Get(ctx, liveCollection, models.RemoteFilter{ScopeHash: e.codec.ScopeHash()})
		if err == nil {
			if saveErr := e.cache.Save(ctx, records); saveErr != nil {
				log.Err(saveErr).
					Str("func", "syncEngine.Load").
					Msg("failed to refresh local cache from remote")
			} else {
				e.touchMetadata(ctx)
			}
			return e.decryptAll(ctx, records), nil
		}
		log.Warn().
			Str("func", "syncEngine.Load").
			Msg("remote read failed, serving local cache")
	}

	return e.cache.Load(ctx)
}

func (e *syncEngine) Delete(ctx context.Context, ref string) error {
	log := logger.FromContext(ctx)

	if !e.sessionActive() {
		return ErrNotAuthenticated
	}

	record, err := e.findCached(ctx, ref)
	if err != nil {
		return err
	}

	docID := firstRef(record.DocumentRef, record.ID)
	if err = e.remote.Delete(ctx, liveCollection, docID); err != nil {
		// a document the remote no longer has counts as deleted
		if !errors.Is(err, adapter.ErrNotFound) {
			log.Err(err).
				Str("func", "syncEngine.Delete").
				Str("document_ref", docID).
				Msg("remote delete failed, keeping local copy")
			return mapRemoteWriteError(err)
		}
	}

	if err = e.cache.Remove(ctx, record.ID); err != nil {
		return fmt.Errorf("remove record locally: %w", err)
	}

	e.touchMetadata(ctx)
	e.scheduleBackup(ctx)

	log.Info().
		Str("func", "syncEngine.Delete").
		Str("id", record.ID).
		Msg("record deleted")

	return nil
}

func (e *syncEngine) Backup(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if !e.sessionActive() {
		return ErrNotAuthenticated
	}

	records, err := e.cache.LoadRaw(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return ErrNothingToBackup
	}

	reencrypted := 0
	for i := range records {
		if e.codec.FullyEncrypted(records[i]) {
			continue
		}
		if !e.keys.HasKey() {
			return fmt.Errorf("%w: plaintext field with no active key", ErrEncryptionVerificationFailed)
		}
		fixed, encErr := e.codec.EncryptRecord(ctx, records[i])
		if encErr != nil {
			return fmt.Errorf("%w: %s", ErrEncryptionVerificationFailed, encErr)
		}
		records[i] = fixed
		reencrypted++
	}

	// final gate, nothing leaves unproven
	for _, record := range records {
		if !e.codec.FullyEncrypted(record) {
			log.Error().
				Str("func", "syncEngine.Backup").
				Str("id", record.ID).
				Msg("record still unprovable after re-encryption, aborting backup")
			return fmt.Errorf("%w: record %s", ErrEncryptionVerificationFailed, record.ID)
		}
	}

	if reencrypted > 0 {
		if err = e.cache.Save(ctx, records); err != nil {
			return fmt.Errorf("persist re-encrypted records: %w", err)
		}
		log.Info().
			Str("func", "syncEngine.Backup").
			Int("count", reencrypted).
			Msg("straggler records re-encrypted before backup")
	}

	snapshot := models.BackupSnapshot{
		OwnerScopeHash:    e.codec.ScopeHash(),
		Records:           records,
		TotalCount:        len(records),
		EncryptionVersion: models.EncryptionVersionCurrent,
		CreatedAt:         time.Now().UTC(),
	}

	if err = e.remote.PutSnapshot(ctx, snapshot.OwnerScopeHash, snapshot); err != nil {
		return mapRemoteWriteError(err)
	}

	e.touchMetadata(ctx)

	log.Info().
		Str("func", "syncEngine.Backup").
		Int("count", snapshot.TotalCount).
		Msg("backup snapshot uploaded")

	return nil
}

func (e *syncEngine) Restore(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	session := e.Session()
	if !session.Active() {
		return nil, ErrNotAuthenticated
	}
	if !e.keys.HasKey() {
		return nil, ErrKeyUnavailable
	}

	records, err := e.remote.Get(ctx, liveCollection, models.RemoteFilter{ScopeHash: e.codec.ScopeHash()})
	if err != nil {
		return nil, mapRemoteReadError(err)
	}

	if len(records) == 0 {
		// documents written before scope hashing carry the raw owner id
		legacy, legacyErr := e.remote.Get(ctx, liveCollection, models.RemoteFilter{OwnerID: session.AccountID})
		if legacyErr == nil {
			records = legacy
		}
	}

	if len(records) == 0 {
		snapshot, snapErr := e.remote.GetSnapshot(ctx, e.codec.ScopeHash())
		switch {
		case snapErr == nil:
			records = snapshot.Records
		case errors.Is(snapErr, adapter.ErrNotFound):
			// nothing ever backed up, restore ends empty
		default:
			return nil, mapRemoteReadError(snapErr)
		}
	}

	migrated := 0
	skipped := 0
	for i := range records {
		if records[i].IsEncrypted && records[i].EncryptionVersion == models.EncryptionVersionCurrent {
			continue
		}
		fixed, migErr := e.codec.MigrateRecord(ctx, records[i])
		if migErr != nil {
			log.Warn().
				Str("func", "syncEngine.Restore").
				Str("id", records[i].ID).
				Msg("record failed re-encryption during restore, leaving locked")
			records[i].Locked = true
			skipped++
			continue
		}
		records[i] = fixed
		migrated++
	}

	if err = e.cache.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("persist restored records: %w", err)
	}

	meta, metaErr := e.cache.Metadata(ctx)
	if metaErr == nil {
		meta.LastSyncAt = time.Now().UnixMilli()
		meta.EncryptionEnabled = true
		meta.MigrationCompleted = true
		if err = e.cache.SetMetadata(ctx, meta); err != nil {
			return nil, fmt.Errorf("persist sync metadata: %w", err)
		}
	}

	log.Info().
		Str("func", "syncEngine.Restore").
		Int("count", len(records)).
		Int("migrated", migrated).
		Int("skipped", skipped).
		Msg("vault restored")

	return e.decryptAll(ctx, records), nil
}

func (e *syncEngine) SetCloudBackup(ctx context.Context, enabled bool) error {
	meta, err := e.cache.Metadata(ctx)
	if err != nil {
		return err
	}
	meta.CloudBackupEnabled = enabled
	return e.cache.SetMetadata(ctx, meta)
}

func (e *syncEngine) EmergencyReset(ctx context.Context, confirmed bool) error {
	log := logger.FromContext(ctx)

	if !confirmed {
		return ErrResetNotConfirmed
	}

	if err := e.cache.Clear(ctx); err != nil {
		return fmt.Errorf("wipe local cache: %w", err)
	}

	if err := e.keys.Clear(); err != nil && !errors.Is(err, keystore.ErrSecretNotFound) {
		return fmt.Errorf("wipe key material: %w", err)
	}

	e.mu.Lock()
	e.session = models.Session{}
	e.mu.Unlock()
	e.remote.SetToken("")
	e.codec.SetOwner("")

	log.Warn().Str("func", "syncEngine.EmergencyReset").Msg("vault wiped")
	return nil
}

func (e *syncEngine) Search(ctx context.Context, query string) ([]models.Record, error) {
	records, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records, nil
	}

	matched := make([]models.Record, 0, len(records))
	for _, record := range records {
		haystack := strings.ToLower(record.Title + "\x00" + record.AccountID + "\x00" + record.Website)
		if strings.Contains(haystack, query) {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

func (e *syncEngine) RecordsByCategory(ctx context.Context, category string) ([]models.Record, error) {
	records, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}

	category = models.NormalizeCategory(category)
	matched := make([]models.Record, 0, len(records))
	for _, record := range records {
		if models.NormalizeCategory(record.Category) == category {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

func (e *syncEngine) CategoryStats(ctx context.Context) (map[string]int, error) {
	records, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int)
	for _, record := range records {
		stats[models.NormalizeCategory(record.Category)]++
	}

	return stats, nil
}

func (e *syncEngine) ExportJSON(ctx context.Context) ([]byte, error) {
	records, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode vault export: %w", err)
	}

	return data, nil
}

func (e *syncEngine) ImportJSON(ctx context.Context, data []byte) (int, error) {
	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("decode vault import: %w", err)
	}

	imported := 0
	for _, record := range records {
		record.IsEncrypted = false
		record.Locked = false
		record.EncryptionVersion = models.EncryptionVersionUntagged
		if _, err := e.Save(ctx, record); err != nil {
			return imported, fmt.Errorf("import record %q: %w", record.Title, err)
		}
		imported++
	}

	return imported, nil
}

func (e *syncEngine) requireSessionAndKey() error {
	if !e.sessionActive() {
		return ErrNotAuthenticated
	}
	if !e.keys.HasKey() {
		return ErrKeyUnavailable
	}
	return nil
}

func (e *syncEngine) findCached(ctx context.Context, ref string) (models.Record, error) {
	if ref == "" {
		return models.Record{}, ErrRecordNotFound
	}

	records, err := e.cache.LoadRaw(ctx)
	if err != nil {
		return models.Record{}, err
	}

	for _, record := range records {
		if record.ID == ref || record.DocumentRef == ref {
			return record, nil
		}
	}

	return models.Record{}, fmt.Errorf("%q: %w", ref, ErrRecordNotFound)
}

func (e *syncEngine) decryptAll(ctx context.Context, records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, record := range records {
		decrypted, err := e.codec.DecryptRecord(ctx, record)
		if err != nil {
			record.Locked = true
			out = append(out, record)
			continue
		}
		out = append(out, decrypted)
	}
	return out
}

func (e *syncEngine) touchMetadata(ctx context.Context) {
	log := logger.FromContext(ctx)

	meta, err := e.cache.Metadata(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncEngine.touchMetadata").Msg("failed to read sync metadata")
		return
	}
	meta.LastSyncAt = time.Now().UnixMilli()
	meta.EncryptionEnabled = true
	if err = e.cache.SetMetadata(ctx, meta); err != nil {
		log.Err(err).Str("func", "syncEngine.touchMetadata").Msg("failed to persist sync metadata")
	}
}

func (e *syncEngine) scheduleBackup(ctx context.Context) {
	log := logger.FromContext(ctx)

	if e.scheduler == nil {
		return
	}
	meta, err := e.cache.Metadata(ctx)
	if err != nil || !meta.CloudBackupEnabled {
		return
	}

	e.scheduler.Schedule(func() {
		backupCtx := e.logger.WithContext(context.Background())
		if err := e.Backup(backupCtx); err != nil && !errors.Is(err, ErrNothingToBackup) {
			e.logger.Err(err).
				Str("func", "syncEngine.scheduleBackup").
				Msg("debounced backup failed")
		}
	})

	log.Debug().Str("func", "syncEngine.scheduleBackup").Msg("backup scheduled")
}

func firstRef(refs ...string) string {
	for _, ref := range refs {
		if ref != "" {
			return ref
		}
	}
	return ""
}
