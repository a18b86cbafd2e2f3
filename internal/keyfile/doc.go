// Package keyfile reads and writes RSA key pairs as PEM files.
//
// Public keys are PKIX ("PUBLIC KEY") and private keys PKCS#8
// ("PRIVATE KEY"). A private key may additionally be sealed under a
// passphrase: the PEM bytes are encrypted with ChaCha20-Poly1305 using a
// scrypt-derived key and stored as a JSON blob. Files are written
// atomically with 0600 permissions.
//
// The engine itself is agnostic to key transport; this package exists so
// the CLI has a concrete exchange format.
package keyfile
