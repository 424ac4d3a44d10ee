package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/credvault/credvault/internal/crypto"
	"github.com/credvault/credvault/internal/logger"
	"github.com/credvault/credvault/internal/utils"
	"github.com/credvault/credvault/models"
)

// Placeholders substituted for encrypted fields that cannot be read. A locked
// record is recoverable by re-authenticating; a failed field is not, short of
// restoring from backup.
const (
	LockedPlaceholder        = "[LOCKED]"
	DecryptFailedPlaceholder = "[DECRYPTION FAILED]"
)

//go:generate mockgen -source=record_codec.go -destination=../mock/record_codec_mock.go -package=mock

// RecordCodec lifts the field-level cipher to whole records. It is the only
// component that decides which fields are transformed, and it implements the
// cache's RecordCipher contract.
type RecordCodec interface {
	// SetOwner fixes the account identity whose scope hash is stamped on
	// every record encrypted from now on.
	SetOwner(accountID string)

	// ScopeHash returns the hash stamped by SetOwner, empty before any
	// session was established.
	ScopeHash() string

	// EncryptRecord encrypts every non-empty encryptable field that is not
	// already ciphertext. Empty fields and existing envelopes pass through,
	// so the operation is idempotent.
	EncryptRecord(ctx context.Context, record models.Record) (models.Record, error)

	// DecryptRecord reverses EncryptRecord for presentation. Without an
	// active key every encrypted field becomes [LockedPlaceholder] and the
	// record is flagged locked; a single undecryptable field becomes
	// [DecryptFailedPlaceholder] without failing the rest.
	DecryptRecord(ctx context.Context, record models.Record) (models.Record, error)

	// MigrateRecord rewrites a record carrying a legacy or untagged scheme
	// into the current one: fallback-decrypt, then encrypt fresh.
	MigrateRecord(ctx context.Context, record models.Record) (models.Record, error)

	// NeedsEncryption reports whether the record still carries plaintext
	// that the migration pass must pick up.
	NeedsEncryption(record models.Record) bool

	// FullyEncrypted reports whether every non-empty encryptable field of
	// the record classifies as ciphertext. This is the backup-gate check.
	FullyEncrypted(record models.Record) bool

	// Ready reports whether an active key is available.
	Ready() bool
}

type recordCodec struct {
	keys   crypto.KeyService
	cipher crypto.Codec
	logger *logger.Logger

	mu        sync.RWMutex
	scopeHash string
}

func NewRecordCodec(keys crypto.KeyService, cipher crypto.Codec, logger *logger.Logger) RecordCodec {
	return &recordCodec{
		keys:   keys,
		cipher: cipher,
		logger: logger,
	}
}

func (r *recordCodec) SetOwner(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if accountID == "" {
		r.scopeHash = ""
		return
	}
	r.scopeHash = utils.ScopeHash(accountID)
}

func (r *recordCodec) ScopeHash() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scopeHash
}

func (r *recordCodec) Ready() bool {
	return r.keys.HasKey()
}

func (r *recordCodec) NeedsEncryption(record models.Record) bool {
	if record.IsEncrypted {
		return false
	}
	return !r.FullyEncrypted(record)
}

func (r *recordCodec) FullyEncrypted(record models.Record) bool {
	for _, field := range record.EncryptableFields() {
		if *field != "" && !r.cipher.LooksEncrypted(*field) {
			return false
		}
	}
	return true
}

func (r *recordCodec) EncryptRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	material := r.keys.Active()
	if material == nil {
		return models.Record{}, fmt.Errorf("encrypt record %s: %w", record.ID, ErrKeyUnavailable)
	}

	transformed := 0
	for _, field := range record.EncryptableFields() {
		if *field == "" || r.cipher.LooksEncrypted(*field) {
			continue
		}
		envelope, err := r.cipher.Encrypt(material, *field)
		if err != nil {
			log.Err(err).
				Str("func", "recordCodec.EncryptRecord").
				Str("id", record.ID).
				Msg("field encryption failed")
			return models.Record{}, fmt.Errorf("encrypt record %s: %w", record.ID, err)
		}
		*field = envelope
		transformed++
	}

	record.IsEncrypted = true
	record.EncryptionVersion = models.EncryptionVersionCurrent
	record.Locked = false
	if hash := r.ScopeHash(); hash != "" {
		record.ScopeHash = hash
	}

	if transformed > 0 {
		log.Debug().
			Str("func", "recordCodec.EncryptRecord").
			Str("id", record.ID).
			Int("fields", transformed).
			Msg("record fields encrypted")
	}

	return record, nil
}

func (r *recordCodec) DecryptRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if !record.IsEncrypted {
		return record, nil
	}

	material := r.keys.Active()
	if material == nil {
		for _, field := range record.EncryptableFields() {
			if *field != "" {
				*field = LockedPlaceholder
			}
		}
		record.Locked = true
		return record, nil
	}

	failed := 0
	for _, field := range record.EncryptableFields() {
		if *field == "" {
			continue
		}
		plaintext, err := r.cipher.Decrypt(material, *field)
		if err != nil {
			*field = DecryptFailedPlaceholder
			failed++
			continue
		}
		*field = plaintext
	}

	if failed > 0 {
		log.Warn().
			Str("func", "recordCodec.DecryptRecord").
			Str("id", record.ID).
			Int("fields", failed).
			Msg("some fields could not be decrypted")
	}

	record.IsEncrypted = false
	record.Locked = false
	return record, nil
}

func (r *recordCodec) MigrateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	decrypted, err := r.DecryptRecord(ctx, record)
	if err != nil {
		return models.Record{}, err
	}
	if decrypted.Locked {
		return models.Record{}, fmt.Errorf("migrate record %s: %w", record.ID, ErrKeyUnavailable)
	}
	for _, field := range decrypted.EncryptableFields() {
		if *field == DecryptFailedPlaceholder {
			return models.Record{}, fmt.Errorf("migrate record %s: undecryptable field", record.ID)
		}
	}

	return r.EncryptRecord(ctx, decrypted)
}
