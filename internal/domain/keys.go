package domain

import "crypto/rsa"

// KeyPair holds an RSA key pair. The public half is freely shareable;
// the private half must never be logged or serialized outside a
// protected key file.
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// Fingerprint is a short hex digest identifying a public key.
type Fingerprint string
