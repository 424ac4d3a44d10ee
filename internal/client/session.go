package client

import (
	"errors"
	"fmt"

	"github.com/credvault/credvault/internal/keystore"
)

// tokenKey is the keystore entry the bearer token lives under between
// invocations, next to the key material the crypto layer stores.
const tokenKey = "credvault.session.token"

// sessionStore persists the bearer token across process restarts, so one
// login covers many one-shot command invocations.
type sessionStore struct {
	secrets keystore.SecretStore
}

func newSessionStore(secrets keystore.SecretStore) *sessionStore {
	return &sessionStore{secrets: secrets}
}

func (s *sessionStore) SaveToken(token string) error {
	if err := s.secrets.Write(tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	return nil
}

// LoadToken returns the persisted token, or ("", nil) when none is stored.
func (s *sessionStore) LoadToken() (string, error) {
	raw, err := s.secrets.Read(tokenKey)
	if err != nil {
		if errors.Is(err, keystore.ErrSecretNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read session token: %w", err)
	}
	return string(raw), nil
}

func (s *sessionStore) DeleteToken() error {
	if err := s.secrets.Delete(tokenKey); err != nil && !errors.Is(err, keystore.ErrSecretNotFound) {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}
