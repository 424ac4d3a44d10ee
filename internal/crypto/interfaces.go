package crypto

import "github.com/credvault/credvault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyService derives, holds, and persists the session's symmetric key
// material. Exactly one material is active at a time; all methods are safe
// for concurrent use.
type KeyService interface {
	// DeriveFromCredential runs the slow iterated derivation over the
	// user's credential plus the fixed application salt and returns fresh
	// key material. Deterministic: the same credential yields byte-equal
	// material on any device. Fails only on an empty credential.
	DeriveFromCredential(credential string) (*models.KeyMaterial, error)

	// Unlock derives material from credential, makes it the active
	// session material, and persists it to the secret store so the vault
	// can be reopened after a restart without re-prompting.
	Unlock(credential string) error

	// Restore loads previously persisted material into the session.
	// Absence is not an error: it returns (false, nil) and the vault
	// stays locked.
	Restore() (bool, error)

	// Clear erases the active material and the persisted copy. Used on
	// logout. Returns an error when nothing was stored, so callers can
	// tell an effective erase from a no-op.
	Clear() error

	// HasKey reports whether decrypt attempts are currently safe to try.
	HasKey() bool

	// Active returns the session material, or nil when the vault is
	// locked.
	Active() *models.KeyMaterial
}

// Codec performs stateless field-level encryption. Implementations must be
// safe for concurrent use.
type Codec interface {
	// Encrypt turns plaintext into a printable cipher envelope using the
	// given material. The empty string passes through unchanged.
	Encrypt(material *models.KeyMaterial, plaintext string) (string, error)

	// Decrypt reverses Encrypt. It first attempts the given material and,
	// on failure, the compiled-in legacy key; the legacy path exists only
	// so pre-derivation data can be read during migration. Returns an
	// error wrapping ErrDecryptionFailed when neither scheme applies.
	Decrypt(material *models.KeyMaterial, envelope string) (string, error)

	// LooksEncrypted classifies value structurally. It never returns
	// false for an envelope produced by Encrypt; it may rarely return
	// true for short plaintext that happens to match the envelope shape.
	LooksEncrypted(value string) bool

	// LooksLegacyEncrypted reports whether value matches the legacy
	// scheme's envelope shape. Needed only for reading untagged records
	// written before version tagging.
	LooksLegacyEncrypted(value string) bool
}
