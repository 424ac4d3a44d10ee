package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/credvault/credvault/models"
)

// ErrDecryptionFailed is returned when an envelope is malformed or was not
// produced with the supplied key. Callers substitute a sentinel value per
// field instead of propagating this as a fatal error.
var ErrDecryptionFailed = errors.New("decryption failed")

// legacyKey is the well-known key of the pre-derivation scheme: a repeating
// XOR over the plaintext, hex-encoded. It exists solely so data written
// before credential-derived keys can be read once and re-encrypted; it must
// never be used for new writes.
const legacyKey = "DefaultKey"

// envelopeMinLen is the shortest base64 envelope the current scheme can
// produce: one padded AES block (16 bytes) encodes to 24 characters.
const envelopeMinLen = 24

type aesCodec struct{}

// NewCodec returns the codec for the current scheme: AES-256-CBC with the
// session IV, PKCS#7 padding, and a standard-base64 envelope.
//
// The IV is fixed per session by design: it is what keeps ciphertexts
// deterministic across devices that derived the same material, at the
// documented cost that identical plaintexts encrypt to identical envelopes.
func NewCodec() Codec {
	return &aesCodec{}
}

func (c *aesCodec) Encrypt(material *models.KeyMaterial, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	if !material.Valid() {
		return "", fmt.Errorf("encrypt: key material unavailable")
	}

	block, err := aes.NewCipher(material.Key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, material.IV).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *aesCodec) Decrypt(material *models.KeyMaterial, envelope string) (string, error) {
	if envelope == "" {
		return "", nil
	}

	if material.Valid() {
		plain, err := c.decryptCurrent(material, envelope)
		if err == nil {
			return plain, nil
		}
	}

	// Fallback: one well-known legacy key, migration reads only.
	if c.LooksLegacyEncrypted(envelope) {
		if plain, err := decryptLegacy(envelope); err == nil {
			return plain, nil
		}
	}

	return "", fmt.Errorf("decrypt envelope: %w", ErrDecryptionFailed)
}

func (c *aesCodec) decryptCurrent(material *models.KeyMaterial, envelope string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("decode envelope: %w", ErrDecryptionFailed)
	}
	if len(blob) == 0 || len(blob)%aes.BlockSize != 0 {
		return "", fmt.Errorf("envelope length %d: %w", len(blob), ErrDecryptionFailed)
	}

	block, err := aes.NewCipher(material.Key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	out := make([]byte, len(blob))
	cipher.NewCBCDecrypter(block, material.IV).CryptBlocks(out, blob)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		// Wrong key almost always surfaces as invalid padding.
		return "", fmt.Errorf("unpad: %w", ErrDecryptionFailed)
	}
	return string(plain), nil
}

// LooksEncrypted classifies value by envelope structure alone: standard
// base64 alphabet, at least one padded block, and a decoded length that is a
// positive multiple of the cipher block. Every envelope Encrypt produces
// satisfies all three, so the classifier has zero false negatives for
// current-scheme data; a short plaintext that happens to be valid base64 of
// block length is (acceptably) misclassified as encrypted.
func (c *aesCodec) LooksEncrypted(value string) bool {
	if len(value) < envelopeMinLen || len(value)%4 != 0 {
		return false
	}
	blob, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}
	return len(blob) > 0 && len(blob)%aes.BlockSize == 0
}

// LooksLegacyEncrypted matches the legacy scheme's envelope: a non-empty,
// even-length, lowercase-hex string.
func (c *aesCodec) LooksLegacyEncrypted(value string) bool {
	if len(value) == 0 || len(value)%2 != 0 {
		return false
	}
	for _, r := range value {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func decryptLegacy(envelope string) (string, error) {
	raw, err := hex.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("decode legacy envelope: %w", ErrDecryptionFailed)
	}

	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = b ^ legacyKey[i%len(legacyKey)]
	}
	return string(out), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("invalid padding byte")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
