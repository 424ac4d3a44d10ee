package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/99designs/keyring"

	"github.com/credvault/credvault/internal/keystore"
	"github.com/credvault/credvault/models"
)

func newTestKeyService() KeyService {
	return NewKeyService(keystore.NewWithKeyring(keyring.NewArrayKeyring(nil)))
}

func TestDeriveFromCredential_Deterministic(t *testing.T) {
	svc := newTestKeyService()

	m1, err := svc.DeriveFromCredential("master-passphrase")
	if err != nil {
		t.Fatalf("DeriveFromCredential error: %v", err)
	}
	m2, err := svc.DeriveFromCredential("master-passphrase")
	if err != nil {
		t.Fatalf("DeriveFromCredential error: %v", err)
	}

	if len(m1.Key) != 32 {
		t.Fatalf("key length = %d, want 32", len(m1.Key))
	}
	if len(m1.IV) != 16 {
		t.Fatalf("iv length = %d, want 16", len(m1.IV))
	}
	if !bytes.Equal(m1.Key, m2.Key) || !bytes.Equal(m1.IV, m2.IV) {
		t.Fatalf("same credential produced different material")
	}
}

func TestDeriveFromCredential_DifferentCredentials(t *testing.T) {
	svc := newTestKeyService()

	m1, err := svc.DeriveFromCredential("passphrase-one")
	if err != nil {
		t.Fatalf("DeriveFromCredential error: %v", err)
	}
	m2, err := svc.DeriveFromCredential("passphrase-two")
	if err != nil {
		t.Fatalf("DeriveFromCredential error: %v", err)
	}

	if bytes.Equal(m1.Key, m2.Key) {
		t.Fatalf("different credentials produced identical keys")
	}
	if m1.SourceCredentialHash == m2.SourceCredentialHash {
		t.Fatalf("different credentials produced identical credential hashes")
	}
}

func TestDeriveFromCredential_EmptyCredential(t *testing.T) {
	svc := newTestKeyService()

	if _, err := svc.DeriveFromCredential(""); err == nil {
		t.Fatal("expected error for empty credential")
	}
}

func TestUnlockRestore_AcrossInstances(t *testing.T) {
	store := keystore.NewWithKeyring(keyring.NewArrayKeyring(nil))

	first := NewKeyService(store)
	if err := first.Unlock("master-passphrase"); err != nil {
		t.Fatalf("Unlock error: %v", err)
	}
	if !first.HasKey() {
		t.Fatal("HasKey = false after Unlock")
	}

	// A fresh service over the same secret store simulates an app restart.
	second := NewKeyService(store)
	if second.HasKey() {
		t.Fatal("fresh service should start locked")
	}

	ok, err := second.Restore()
	if err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if !ok {
		t.Fatal("Restore = false, want persisted material found")
	}
	if !bytes.Equal(first.Active().Key, second.Active().Key) {
		t.Fatalf("restored key differs from unlocked key")
	}
}

func TestRestore_NothingPersisted(t *testing.T) {
	svc := newTestKeyService()

	ok, err := svc.Restore()
	if err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if ok {
		t.Fatal("Restore = true with empty secret store")
	}
	if svc.HasKey() {
		t.Fatal("HasKey = true after failed restore")
	}
}

func TestClear_ErasesAndReportsEmpty(t *testing.T) {
	svc := newTestKeyService()

	if err := svc.Unlock("master-passphrase"); err != nil {
		t.Fatalf("Unlock error: %v", err)
	}
	if err := svc.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if svc.HasKey() {
		t.Fatal("HasKey = true after Clear")
	}

	// Clearing an already-empty store must not silently succeed.
	if err := svc.Clear(); err == nil {
		t.Fatal("second Clear should report that nothing was stored")
	} else if !errors.Is(err, keystore.ErrSecretNotFound) {
		t.Fatalf("second Clear error = %v, want ErrSecretNotFound", err)
	}
}

func TestActive_NilWhileLocked(t *testing.T) {
	svc := newTestKeyService()

	if m := svc.Active(); m != nil {
		t.Fatalf("Active = %v, want nil while locked", m)
	}

	var nilMaterial *models.KeyMaterial
	if nilMaterial.Valid() {
		t.Fatal("nil material must not report valid")
	}
}
