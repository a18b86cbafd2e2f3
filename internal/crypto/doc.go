// Package crypto implements the hybrid encryption engine.
//
// Each message is protected by a fresh 256-bit AES key used once with
// AES-256-GCM, and the AES key itself is wrapped with the recipient's
// RSA-4096 public key using OAEP (SHA-256). The result is a
// self-describing envelope; see sealbox/internal/domain.Envelope for
// the wire layout.
//
// # Security notes
//
//   - Keys, nonces and message ids all come from crypto/rand. The nonce
//     never repeats for a given AES key because the AES key is single-use.
//   - OAEP unwrap failures are reported as the opaque ErrKeyUnwrap with no
//     padding detail, to avoid building a padding oracle. Making unwrap and
//     integrity failures indistinguishable in timing is best effort only;
//     the response shape is identical but the underlying operations differ
//     in cost.
//   - Decrypt is all-or-nothing: a failed tag check returns ErrIntegrity
//     and no partial plaintext.
//   - The one-time AES key is wiped after use. This is best effort; Go
//     gives no hard zeroization guarantee.
//
// The engine is stateless and safe for concurrent use. RSA-4096 key
// generation is CPU-bound and can take over a second; callers on a
// latency-sensitive path should run it on a worker, not inline.
package crypto
