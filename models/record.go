package models

import "time"

// Record represents a single vault entry.
// It is the primary persistence model for all sensitive user data.
// When IsEncrypted is true, every non-empty encryptable field holds either
// a cipher envelope or an explicit placeholder, never raw plaintext.
type Record struct {
	// ID is the client-generated identifier of the record.
	ID string `json:"id"`

	// DocumentRef is the identity of the record on the remote backend.
	// Empty until the record has been written remotely at least once.
	DocumentRef string `json:"document_ref,omitempty"`

	// Title is the human-readable display name of the entry.
	// Title is stored encrypted.
	Title string `json:"title"`

	// AccountID is the login identifier the secret belongs to.
	// AccountID is stored encrypted.
	AccountID string `json:"account_id"`

	// Secret holds the credential value itself.
	// Secret is stored encrypted and is opaque to every storage layer.
	Secret string `json:"secret"`

	// Website is the resource the credential applies to.
	// Website is stored encrypted.
	Website string `json:"website,omitempty"`

	// Category groups records for filtering and statistics.
	// Category is stored encrypted.
	Category string `json:"category,omitempty"`

	// Notes contains optional free-text annotations.
	// Notes are stored encrypted.
	Notes string `json:"notes,omitempty"`

	// StrengthLabel is a caller-supplied label describing the secret's
	// strength. It is display data and is not computed by this engine.
	StrengthLabel string `json:"strength_label,omitempty"`

	// ScopeHash is a one-way hash of the owner identifier, used by the
	// remote backend to group records without storing the identifier in
	// clear text.
	ScopeHash string `json:"scope_hash,omitempty"`

	// IsEncrypted reports whether the encryptable fields hold cipher
	// envelopes rather than plaintext.
	IsEncrypted bool `json:"is_encrypted"`

	// Locked is set when the record's fields could not be decrypted
	// because no active key was available. A locked record is a
	// recoverable state, not corrupted data.
	Locked bool `json:"locked,omitempty"`

	// EncryptionVersion tags the scheme the encryptable fields were
	// written with. Zero means the record predates version tagging and
	// must be classified structurally.
	EncryptionVersion EncryptionVersion `json:"encryption_version,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// EncryptionVersion identifies the cipher scheme a record was written with.
type EncryptionVersion int

const (
	// EncryptionVersionUntagged marks records written before version
	// tagging existed. Their scheme must be detected structurally.
	EncryptionVersionUntagged EncryptionVersion = 0

	// EncryptionVersionLegacy is the pre-key-derivation reversible
	// transform. Retained for one-time migration reads only.
	EncryptionVersionLegacy EncryptionVersion = 1

	// EncryptionVersionCurrent is the active credential-derived scheme.
	EncryptionVersionCurrent EncryptionVersion = 2
)

// EncryptableFields returns pointers to the record fields that are subject
// to encryption, in a stable order. Field-wise codecs iterate this set so
// that adding a field is a one-line change.
func (r *Record) EncryptableFields() []*string {
	return []*string{&r.Secret, &r.AccountID, &r.Title, &r.Website, &r.Notes, &r.Category}
}
