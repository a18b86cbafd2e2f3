package keyfile

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

const (
	publicBlockType  = "PUBLIC KEY"
	privateBlockType = "PRIVATE KEY"
)

var (
	// ErrNotPEM is returned when the input contains no PEM block.
	ErrNotPEM = errors.New("no PEM block found")

	// ErrNotRSAKey is returned when a PEM block parses but does not hold
	// an RSA key.
	ErrNotRSAKey = errors.New("PEM block does not contain an RSA key")
)

// EncodePublic renders pub as a PKIX PEM block.
func EncodePublic(pub *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: publicBlockType, Bytes: der}), nil
}

// DecodePublic parses a PKIX PEM public key.
func DecodePublic(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNotPEM
	}
	if block.Type != publicBlockType {
		return nil, fmt.Errorf("%w: unexpected block %q", ErrNotRSAKey, block.Type)
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return pub, nil
}

// EncodePrivate renders priv as a PKCS#8 PEM block.
func EncodePrivate(priv *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: privateBlockType, Bytes: der}), nil
}

// DecodePrivate parses a PKCS#8 PEM private key.
func DecodePrivate(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNotPEM
	}
	if block.Type != privateBlockType {
		return nil, fmt.Errorf("%w: unexpected block %q", ErrNotRSAKey, block.Type)
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return priv, nil
}
