package domain

// Envelope is the serialized form of one hybrid-encrypted message. It is
// self-describing: together with the matching private key it carries
// everything needed to recover the plaintext.
//
// Binary fields are standard base64. The symmetric key is RSA-OAEP
// encrypted, so its decoded length equals the modulus size in bytes
// (512 for 4096-bit keys). An envelope is immutable once produced.
type Envelope struct {
	// EncryptedContent is the AES-256-GCM output, ciphertext with the
	// 16-byte authentication tag appended.
	EncryptedContent string `json:"encrypted_content"`

	// EncryptedSymmetricKey is the one-time AES key wrapped with the
	// recipient's RSA public key using OAEP.
	EncryptedSymmetricKey string `json:"encrypted_symmetric_key"`

	// Nonce is the 96-bit GCM nonce, fresh per message.
	Nonce string `json:"nonce"`

	// Timestamp is seconds since epoch, informational only.
	Timestamp uint64 `json:"timestamp"`

	// MessageID is 32 random bytes hex-encoded, used for correlation.
	// It is not a security boundary.
	MessageID string `json:"message_id"`

	// Version tags the envelope schema.
	Version string `json:"version"`
}
