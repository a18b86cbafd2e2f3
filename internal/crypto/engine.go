package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"sealbox/internal/domain"
	"sealbox/internal/util/memzero"
)

const (
	// DefaultModulusBits is the RSA modulus size used for new key pairs.
	DefaultModulusBits = 4096

	// KeySize is the AES-256 key size in bytes.
	KeySize = 32
	// NonceSize is the AES-GCM nonce size in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag size in bytes.
	TagSize = 16
	// IDSize is the message id size in bytes before hex encoding.
	IDSize = 32

	// FormatVersion tags the envelope schema produced by this engine.
	FormatVersion = "3.0"
)

// Engine performs hybrid encryption: AES-256-GCM for content, RSA-OAEP
// for the one-time content key. The zero value is not usable; construct
// with New. An Engine holds only static configuration and is safe for
// concurrent use.
type Engine struct {
	modulusBits int
}

// Option configures an Engine.
type Option func(*Engine)

// WithModulusBits overrides the RSA modulus size for generated key
// pairs. Values below 2048 are rejected by Go's rsa package at
// generation time.
func WithModulusBits(bits int) Option {
	return func(e *Engine) { e.modulusBits = bits }
}

// New returns an engine generating 4096-bit RSA key pairs unless
// configured otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{modulusBits: DefaultModulusBits}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateKeyPair produces a fresh RSA key pair from crypto/rand.
//
// Generation at 4096 bits is CPU-bound and latency-significant; see the
// package notes before calling this inline.
func (e *Engine) GenerateKeyPair() (*domain.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, e.modulusBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	return &domain.KeyPair{Private: priv, Public: &priv.PublicKey}, nil
}

// Encrypt seals plaintext for the holder of the private half of pub and
// returns a self-describing envelope. Plaintext may be empty. The
// one-time AES key and nonce are drawn fresh from crypto/rand per call
// and the key is wiped before returning.
func (e *Engine) Encrypt(plaintext []byte, pub *rsa.PublicKey) (*domain.Envelope, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: generate content key: %v", ErrEncrypt, err)
	}
	defer memzero.Zero(key)

	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: seal content: %v", ErrEncrypt, err)
	}
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %v", ErrEncrypt, err)
	}
	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, key, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: wrap content key: %v", ErrEncrypt, err)
	}

	id, err := SecureID()
	if err != nil {
		return nil, fmt.Errorf("%w: generate message id: %v", ErrEncrypt, err)
	}

	return &domain.Envelope{
		EncryptedContent:      b64(ciphertext),
		EncryptedSymmetricKey: b64(wrapped),
		Nonce:                 b64(nonce),
		Timestamp:             uint64(time.Now().Unix()),
		MessageID:             id,
		Version:               FormatVersion,
	}, nil
}

// Decrypt reverses Encrypt with the matching private key and returns the
// plaintext bytes. It is all-or-nothing: any failure returns one of the
// package sentinel errors and no plaintext.
func (e *Engine) Decrypt(env *domain.Envelope, priv *rsa.PrivateKey) ([]byte, error) {
	ciphertext, err := unb64(env.EncryptedContent)
	if err != nil {
		return nil, fmt.Errorf("%w: encrypted_content: %v", ErrDecode, err)
	}
	wrapped, err := unb64(env.EncryptedSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("%w: encrypted_symmetric_key: %v", ErrDecode, err)
	}
	nonce, err := unb64(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", ErrDecode, err)
	}

	// Opaque on purpose: do not surface the OAEP failure reason.
	key, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, ErrKeyUnwrap
	}
	defer memzero.Zero(key)

	if len(key) != KeySize {
		return nil, ErrInvalidKeyMaterial
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonce
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: open content: %v", ErrIntegrity, err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrIntegrity
	}
	return plaintext, nil
}

// DecryptText is Decrypt with a text contract: the recovered bytes must
// be valid UTF-8. Callers moving arbitrary binary payloads should use
// Decrypt directly.
func (e *Engine) DecryptText(env *domain.Envelope, priv *rsa.PrivateKey) (string, error) {
	plaintext, err := e.Decrypt(env, priv)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidContentEncoding
	}
	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
