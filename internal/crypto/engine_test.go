package crypto_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

var (
	fixtureOnce sync.Once
	fixtureKP   *domain.KeyPair
	fixtureErr  error
)

// testKeyPair returns a shared RSA-4096 pair; generation is expensive,
// so all tests reuse one.
func testKeyPair(t *testing.T) *domain.KeyPair {
	t.Helper()
	fixtureOnce.Do(func() {
		fixtureKP, fixtureErr = crypto.New().GenerateKeyPair()
	})
	if fixtureErr != nil {
		t.Fatalf("GenerateKeyPair: %v", fixtureErr)
	}
	return fixtureKP
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	cases := map[string][]byte{
		"hello":   []byte("hello world"),
		"empty":   {},
		"unicode": []byte("grüße, мир, 世界"),
		"binary":  bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 1024),
	}
	for name, plaintext := range cases {
		t.Run(name, func(t *testing.T) {
			env, err := eng.Encrypt(plaintext, kp.Public)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			got, err := eng.Decrypt(env, kp.Private)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if !bytes.Equal(got, plaintext) {
				t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(plaintext))
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	env, err := eng.Encrypt([]byte("hello world"), kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if env.Version != crypto.FormatVersion {
		t.Errorf("version = %q, want %q", env.Version, crypto.FormatVersion)
	}
	if len(env.MessageID) != 64 {
		t.Errorf("message id length = %d, want 64", len(env.MessageID))
	}
	if _, err := hex.DecodeString(env.MessageID); err != nil {
		t.Errorf("message id is not hex: %v", err)
	}
	if env.Timestamp == 0 {
		t.Error("timestamp is zero")
	}

	wrapped, err := base64.StdEncoding.DecodeString(env.EncryptedSymmetricKey)
	if err != nil {
		t.Fatalf("decode wrapped key: %v", err)
	}
	if want := kp.Public.Size(); len(wrapped) != want {
		t.Errorf("wrapped key length = %d, want %d", len(wrapped), want)
	}
	if len(wrapped) != 512 {
		t.Errorf("wrapped key length = %d, want 512 for a 4096-bit modulus", len(wrapped))
	}

	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		t.Fatalf("decode nonce: %v", err)
	}
	if len(nonce) != crypto.NonceSize {
		t.Errorf("nonce length = %d, want %d", len(nonce), crypto.NonceSize)
	}

	ct, err := base64.StdEncoding.DecodeString(env.EncryptedContent)
	if err != nil {
		t.Fatalf("decode ciphertext: %v", err)
	}
	if want := len("hello world") + crypto.TagSize; len(ct) != want {
		t.Errorf("ciphertext length = %d, want %d (plaintext + tag)", len(ct), want)
	}
}

func TestTamperedCiphertext(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	env, err := eng.Encrypt([]byte("attack at dawn"), kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ct, err := base64.StdEncoding.DecodeString(env.EncryptedContent)
	if err != nil {
		t.Fatalf("decode ciphertext: %v", err)
	}

	// Flip one bit at the front, middle and tail (inside the tag).
	for _, pos := range []int{0, len(ct) / 2, len(ct) - 1} {
		mutated := append([]byte(nil), ct...)
		mutated[pos] ^= 0x01
		tampered := *env
		tampered.EncryptedContent = base64.StdEncoding.EncodeToString(mutated)

		got, err := eng.Decrypt(&tampered, kp.Private)
		if !errors.Is(err, crypto.ErrIntegrity) {
			t.Errorf("bit flip at %d: err = %v, want ErrIntegrity", pos, err)
		}
		if got != nil {
			t.Errorf("bit flip at %d: returned partial plaintext", pos)
		}
	}
}

func TestWrongPrivateKey(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	env, err := eng.Encrypt([]byte("for someone else"), kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	other, err := crypto.New(crypto.WithModulusBits(2048)).GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if _, err := eng.Decrypt(env, other.Private); !errors.Is(err, crypto.ErrKeyUnwrap) {
		t.Fatalf("Decrypt with wrong key: err = %v, want ErrKeyUnwrap", err)
	}
}

func TestMalformedEncoding(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	env, err := eng.Encrypt([]byte("payload"), kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	mutate := map[string]func(e *domain.Envelope){
		"content":     func(e *domain.Envelope) { e.EncryptedContent = "!!not base64!!" },
		"wrapped key": func(e *domain.Envelope) { e.EncryptedSymmetricKey = "!!not base64!!" },
		"nonce":       func(e *domain.Envelope) { e.Nonce = "!!not base64!!" },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			bad := *env
			fn(&bad)
			if _, err := eng.Decrypt(&bad, kp.Private); !errors.Is(err, crypto.ErrDecode) {
				t.Fatalf("err = %v, want ErrDecode", err)
			}
		})
	}
}

func TestShortNonce(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	env, err := eng.Encrypt([]byte("payload"), kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		t.Fatalf("decode nonce: %v", err)
	}
	env.Nonce = base64.StdEncoding.EncodeToString(nonce[:11])

	if _, err := eng.Decrypt(env, kp.Private); !errors.Is(err, crypto.ErrInvalidNonce) {
		t.Fatalf("err = %v, want ErrInvalidNonce", err)
	}
}

func TestUnwrappedKeyLength(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	env, err := eng.Encrypt([]byte("payload"), kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	// Wrap a 16-byte key: unwrap succeeds but the material is unusable.
	short := make([]byte, 16)
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, kp.Public, short, nil)
	if err != nil {
		t.Fatalf("EncryptOAEP: %v", err)
	}
	env.EncryptedSymmetricKey = base64.StdEncoding.EncodeToString(wrapped)

	if _, err := eng.Decrypt(env, kp.Private); !errors.Is(err, crypto.ErrInvalidKeyMaterial) {
		t.Fatalf("err = %v, want ErrInvalidKeyMaterial", err)
	}
}

func TestNonceUniqueness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping nonce uniqueness sweep in short mode")
	}
	kp := testKeyPair(t)
	eng := crypto.New()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		env, err := eng.Encrypt([]byte("x"), kp.Public)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		if _, dup := seen[env.Nonce]; dup {
			t.Fatalf("nonce repeated after %d encryptions", i)
		}
		seen[env.Nonce] = struct{}{}
	}
}

func TestDecryptText(t *testing.T) {
	kp := testKeyPair(t)
	eng := crypto.New()

	env, err := eng.Encrypt([]byte("hello world"), kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	text, err := eng.DecryptText(env, kp.Private)
	if err != nil {
		t.Fatalf("DecryptText: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("got %q, want %q", text, "hello world")
	}

	// Binary payloads pass Decrypt but fail the text contract.
	env, err = eng.Encrypt([]byte{0xff, 0xfe, 0xfd}, kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := eng.Decrypt(env, kp.Private); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if _, err := eng.DecryptText(env, kp.Private); !errors.Is(err, crypto.ErrInvalidContentEncoding) {
		t.Fatalf("err = %v, want ErrInvalidContentEncoding", err)
	}
}
