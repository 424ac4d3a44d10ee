package models

import "time"

// KeyMaterial holds the active symmetric key and initialization vector for
// the session. Exactly one KeyMaterial is active per logged-in session; it is
// re-derived deterministically from the user's credential, so the same
// credential yields the same key on any device.
type KeyMaterial struct {
	// Key is the 32-byte symmetric key.
	Key []byte `json:"key"`

	// IV is the 16-byte initialization vector shared by all records
	// encrypted during the session.
	IV []byte `json:"iv"`

	// SourceCredentialHash is an opaque digest of the credential the
	// material was derived from. Used to detect credential changes, never
	// to recover the credential.
	SourceCredentialHash string `json:"source_credential_hash"`

	// DerivedAt records when the derivation ran.
	DerivedAt time.Time `json:"derived_at"`
}

// Valid reports whether the material carries a usable key and IV.
func (m *KeyMaterial) Valid() bool {
	return m != nil && len(m.Key) == 32 && len(m.IV) == 16
}
