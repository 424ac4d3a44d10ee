package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/credvault/credvault/models"
)

func testMaterial() *models.KeyMaterial {
	return &models.KeyMaterial{
		Key: bytes.Repeat([]byte{0x42}, 32),
		IV:  bytes.Repeat([]byte{0x17}, 16),
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	codec := NewCodec()
	material := testMaterial()

	inputs := []string{
		"p4ssW0rd!",
		"a",
		strings.Repeat("long plaintext block ", 40),
		"юникод и 漢字",
	}

	for _, in := range inputs {
		env, err := codec.Encrypt(material, in)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", in, err)
		}
		if env == in {
			t.Fatalf("Encrypt(%q) returned the plaintext unchanged", in)
		}

		out, err := codec.Decrypt(material, env)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if out != in {
			t.Fatalf("round trip = %q, want %q", out, in)
		}
	}
}

func TestEncryptDecrypt_EmptyStringPassesThrough(t *testing.T) {
	codec := NewCodec()
	material := testMaterial()

	env, err := codec.Encrypt(material, "")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if env != "" {
		t.Fatalf("Encrypt(\"\") = %q, want empty", env)
	}

	out, err := codec.Decrypt(material, "")
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if out != "" {
		t.Fatalf("Decrypt(\"\") = %q, want empty", out)
	}
}

// The session IV is fixed, so identical plaintexts produce identical
// envelopes under the same material. That determinism is what makes
// cross-device restore work without key escrow and is accepted as a
// documented trade-off.
func TestEncrypt_DeterministicUnderSessionIV(t *testing.T) {
	codec := NewCodec()
	material := testMaterial()

	e1, err := codec.Encrypt(material, "shared secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	e2, err := codec.Encrypt(material, "shared secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if e1 != e2 {
		t.Fatalf("same plaintext under the same material produced different envelopes")
	}

	other := &models.KeyMaterial{
		Key: bytes.Repeat([]byte{0x43}, 32),
		IV:  bytes.Repeat([]byte{0x17}, 16),
	}
	e3, err := codec.Encrypt(other, "shared secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if e1 == e3 {
		t.Fatalf("different keys produced identical envelopes")
	}
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	codec := NewCodec()

	env, err := codec.Encrypt(testMaterial(), "the secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	wrong := &models.KeyMaterial{
		Key: bytes.Repeat([]byte{0x99}, 32),
		IV:  bytes.Repeat([]byte{0x17}, 16),
	}
	if _, err = codec.Decrypt(wrong, env); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("Decrypt with wrong key = %v, want ErrDecryptionFailed", err)
	}
}

func TestDecrypt_MalformedEnvelope(t *testing.T) {
	codec := NewCodec()
	material := testMaterial()

	for _, env := range []string{"not base64 !!!", "YWJj", "AAAA"} {
		if _, err := codec.Decrypt(material, env); !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("Decrypt(%q) = %v, want ErrDecryptionFailed", env, err)
		}
	}
}

func TestLooksEncrypted_NoFalseNegatives(t *testing.T) {
	codec := NewCodec()
	material := testMaterial()

	inputs := []string{
		"x",
		"p4ssW0rd!",
		strings.Repeat("block", 100),
		"short",
		"1234567890",
	}
	for _, in := range inputs {
		env, err := codec.Encrypt(material, in)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if !codec.LooksEncrypted(env) {
			t.Fatalf("LooksEncrypted(%q) = false for a current-scheme envelope of %q", env, in)
		}
	}
}

func TestLooksEncrypted_RejectsOrdinaryPlaintext(t *testing.T) {
	codec := NewCodec()

	for _, v := range []string{
		"",
		"p4ssW0rd!",
		"hello world",
		"user@example.com",
		"https://example.com/login",
	} {
		if codec.LooksEncrypted(v) {
			t.Fatalf("LooksEncrypted(%q) = true for plaintext", v)
		}
	}
}

func TestDecrypt_LegacyFallback(t *testing.T) {
	codec := NewCodec()

	// Build a legacy envelope by hand: repeating-XOR then hex.
	plain := "old secret"
	raw := make([]byte, len(plain))
	for i := 0; i < len(plain); i++ {
		raw[i] = plain[i] ^ legacyKey[i%len(legacyKey)]
	}
	env := hex.EncodeToString(raw)

	if !codec.LooksLegacyEncrypted(env) {
		t.Fatalf("LooksLegacyEncrypted(%q) = false for a legacy envelope", env)
	}

	// The active material cannot decrypt it; the legacy fallback must.
	out, err := codec.Decrypt(testMaterial(), env)
	if err != nil {
		t.Fatalf("Decrypt legacy envelope error: %v", err)
	}
	if out != plain {
		t.Fatalf("legacy decrypt = %q, want %q", out, plain)
	}
}

func TestLooksLegacyEncrypted_Shapes(t *testing.T) {
	codec := NewCodec()

	if codec.LooksLegacyEncrypted("") {
		t.Fatal("empty string classified as legacy envelope")
	}
	if codec.LooksLegacyEncrypted("abc") {
		t.Fatal("odd-length string classified as legacy envelope")
	}
	if codec.LooksLegacyEncrypted("GHIJ") {
		t.Fatal("non-hex string classified as legacy envelope")
	}
	if !codec.LooksLegacyEncrypted("0a1b2c") {
		t.Fatal("even-length hex string not classified as legacy envelope")
	}
}
