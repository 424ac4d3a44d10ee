package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/pbkdf2"

	"github.com/credvault/credvault/internal/keystore"
	"github.com/credvault/credvault/models"
)

const (
	// derivationSalt is the fixed application-level salt. It is shared by
	// every install on purpose: the derivation must be reproducible from
	// the credential alone so material can be re-derived on a new device.
	derivationSalt = "credvault/v2/key-derivation"

	// derivationRounds is the PBKDF2-SHA256 iteration count.
	derivationRounds = 120_000

	// derivedLen is the total derived output: 32 key bytes + 16 IV bytes.
	derivedLen = 48

	// secretStoreKey is the keystore entry the session material lives
	// under between restarts.
	secretStoreKey = "credvault.session.keymaterial"
)

type keyService struct {
	store keystore.SecretStore

	mu     sync.RWMutex
	active *models.KeyMaterial
}

// NewKeyService constructs a KeyService persisting through store.
func NewKeyService(store keystore.SecretStore) KeyService {
	return &keyService{store: store}
}

func (k *keyService) DeriveFromCredential(credential string) (*models.KeyMaterial, error) {
	if credential == "" {
		return nil, errors.New("empty credential")
	}

	derived := pbkdf2.Key([]byte(credential), []byte(derivationSalt), derivationRounds, derivedLen, sha256.New)
	credHash := sha256.Sum256([]byte(credential))

	return &models.KeyMaterial{
		Key:                  derived[:32],
		IV:                   derived[32:48],
		SourceCredentialHash: hex.EncodeToString(credHash[:]),
		DerivedAt:            time.Now().UTC(),
	}, nil
}

func (k *keyService) Unlock(credential string) error {
	material, err := k.DeriveFromCredential(credential)
	if err != nil {
		return fmt.Errorf("derive key material: %w", err)
	}

	if err = k.persist(material); err != nil {
		return err
	}

	k.mu.Lock()
	k.active = material
	k.mu.Unlock()

	return nil
}

// persist writes material to the secret store as a single JSON secret. The
// keystore Write contract guarantees the previous value is overwritten, not
// appended, so at most one material exists per install.
func (k *keyService) persist(material *models.KeyMaterial) error {
	blob, err := json.Marshal(material)
	if err != nil {
		return fmt.Errorf("encode key material: %w", err)
	}
	if err = k.store.Write(secretStoreKey, blob); err != nil {
		return fmt.Errorf("persist key material: %w", err)
	}
	return nil
}

func (k *keyService) Restore() (bool, error) {
	blob, err := k.store.Read(secretStoreKey)
	if err != nil {
		if errors.Is(err, keystore.ErrSecretNotFound) {
			return false, nil // locked state, not an error
		}
		return false, fmt.Errorf("read persisted key material: %w", err)
	}

	var material models.KeyMaterial
	if err = json.Unmarshal(blob, &material); err != nil {
		return false, fmt.Errorf("decode persisted key material: %w", err)
	}
	if !material.Valid() {
		return false, errors.New("persisted key material is truncated")
	}

	k.mu.Lock()
	k.active = &material
	k.mu.Unlock()

	return true, nil
}

func (k *keyService) Clear() error {
	k.mu.Lock()
	had := k.active != nil
	if k.active != nil {
		zero(k.active.Key)
		zero(k.active.IV)
		k.active = nil
	}
	k.mu.Unlock()

	err := k.store.Delete(secretStoreKey)
	if err != nil && errors.Is(err, keystore.ErrSecretNotFound) && had {
		// Memory held material but nothing was persisted; the erase
		// still did useful work.
		return nil
	}
	if err != nil {
		return fmt.Errorf("clear persisted key material: %w", err)
	}
	return nil
}

func (k *keyService) HasKey() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.active.Valid()
}

func (k *keyService) Active() *models.KeyMaterial {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.active
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
