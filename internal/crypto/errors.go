package crypto

import "errors"

var (
	// ErrKeyGeneration is returned when RSA key pair generation fails.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrEncrypt is returned when encryption fails, either wrapping the
	// symmetric key or sealing the content. The wrapped detail names the
	// failing step.
	ErrEncrypt = errors.New("encryption failed")

	// ErrDecode is returned when a transport-encoded envelope field is not
	// valid base64. The envelope is malformed, not merely tampered.
	ErrDecode = errors.New("invalid envelope encoding")

	// ErrKeyUnwrap is returned when the symmetric key cannot be unwrapped.
	// It is deliberately opaque: wrong private key, corrupted wrapped key
	// and padding failures all look identical.
	ErrKeyUnwrap = errors.New("key unwrap failed")

	// ErrInvalidKeyMaterial is returned when an unwrapped key is not
	// exactly 32 bytes.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrInvalidNonce is returned when a decoded nonce is not exactly
	// 12 bytes.
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrIntegrity is returned when authenticated decryption fails the tag
	// check. The ciphertext was tampered with or the key is wrong.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrInvalidContentEncoding is returned by DecryptText when the
	// decrypted bytes are not valid UTF-8.
	ErrInvalidContentEncoding = errors.New("content is not valid UTF-8")
)
