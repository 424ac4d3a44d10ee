// Package keystore wraps the operating system's secret storage behind a
// minimal scoped key/value contract. The OS layer is trusted to encrypt
// secrets at rest; this package does not re-implement that guarantee.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"
)

// ErrSecretNotFound is returned by Read and Delete when no secret is stored
// under the requested key. Callers should match it with errors.Is.
var ErrSecretNotFound = errors.New("secret not found")

// SecretStore is the scoped key/value contract for persisting session key
// material across process restarts.
type SecretStore interface {
	// Write stores secret under key, overwriting any previous value.
	Write(key string, secret []byte) error

	// Read returns the secret stored under key, or ErrSecretNotFound.
	Read(key string) ([]byte, error)

	// Delete removes the secret stored under key. Returns
	// ErrSecretNotFound when nothing was stored, so callers can tell an
	// effective erase from a no-op.
	Delete(key string) error
}

type keyringStore struct {
	ring keyring.Keyring
}

// Open connects to the platform keychain under serviceName. When no native
// backend is available (headless hosts, CI), it falls back to keyring's
// encrypted file backend rooted in the user's config directory.
func Open(serviceName string) (SecretStore, error) {
	fileDir := serviceName
	if cfgDir, err := os.UserConfigDir(); err == nil {
		fileDir = filepath.Join(cfgDir, serviceName, "keyring")
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:              serviceName,
		FileDir:                  fileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(serviceName),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring %q: %w", serviceName, err)
	}

	return &keyringStore{ring: ring}, nil
}

// NewWithKeyring wraps an existing keyring.Keyring. Used by tests with
// keyring.NewArrayKeyring and by callers that need custom backend selection.
func NewWithKeyring(ring keyring.Keyring) SecretStore {
	return &keyringStore{ring: ring}
}

func (s *keyringStore) Write(key string, secret []byte) error {
	err := s.ring.Set(keyring.Item{Key: key, Data: secret})
	if err != nil {
		return fmt.Errorf("write secret %q: %w", key, err)
	}
	return nil
}

func (s *keyringStore) Read(key string) ([]byte, error) {
	item, err := s.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrSecretNotFound
		}
		return nil, fmt.Errorf("read secret %q: %w", key, err)
	}
	return item.Data, nil
}

func (s *keyringStore) Delete(key string) error {
	// Probe first: keyring backends disagree on whether removing a
	// missing key is an error.
	if _, err := s.ring.Get(key); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return ErrSecretNotFound
		}
		return fmt.Errorf("check secret %q: %w", key, err)
	}

	if err := s.ring.Remove(key); err != nil {
		return fmt.Errorf("delete secret %q: %w", key, err)
	}
	return nil
}
