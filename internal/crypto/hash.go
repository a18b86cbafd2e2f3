package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"io"

	"lukechampine.com/blake3"

	"sealbox/internal/domain"
)

// HashContent returns the hex-encoded BLAKE3-256 digest of data. It is a
// content fingerprint, deterministic and pure; it is not a password hash.
func HashContent(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SecureID returns 32 bytes of crypto/rand entropy, hex-encoded
// (64 characters).
func SecureID() (string, error) {
	buf := make([]byte, IDSize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Fingerprint returns a short fingerprint of an RSA public key.
//
// It hashes the PKIX encoding with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(pub *rsa.PublicKey) domain.Fingerprint {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(der)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
