package keyfile

import (
	"crypto/rsa"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Store keeps key pairs on disk under a single directory, one pair per
// name. Private keys are plain PKCS#8 PEM, or a sealed blob when a
// passphrase is given.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore returns a store rooted at dir. The directory must exist.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// SavePublic writes the public half of a pair.
func (s *Store) SavePublic(name string, pub *rsa.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := EncodePublic(pub)
	if err != nil {
		return err
	}
	return writeFile(s.publicPath(name), data, 0o644)
}

// LoadPublic reads the public half of a pair.
func (s *Store) LoadPublic(name string) (*rsa.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.publicPath(name))
	if err != nil {
		return nil, err
	}
	return DecodePublic(data)
}

// SavePrivate writes the private half of a pair. With a non-empty
// passphrase the PEM bytes are sealed and written as a JSON blob
// instead of plain PEM.
func (s *Store) SavePrivate(name string, priv *rsa.PrivateKey, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := EncodePrivate(priv)
	if err != nil {
		return err
	}
	if passphrase == "" {
		return writeFile(s.privatePath(name), data, 0o600)
	}
	sealed, err := seal(passphrase, data)
	if err != nil {
		return err
	}
	return writeFile(s.sealedPath(name), sealed, 0o600)
}

// LoadPrivate reads the private half of a pair, preferring the sealed
// form when present. A sealed key requires the passphrase it was saved
// with.
func (s *Store) LoadPrivate(name string, passphrase string) (*rsa.PrivateKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(s.sealedPath(name))
	switch {
	case err == nil:
		data, err := open(passphrase, sealed)
		if err != nil {
			return nil, err
		}
		return DecodePrivate(data)
	case errors.Is(err, os.ErrNotExist):
		data, err := os.ReadFile(s.privatePath(name))
		if err != nil {
			return nil, err
		}
		return DecodePrivate(data)
	default:
		return nil, err
	}
}

func (s *Store) publicPath(name string) string {
	return filepath.Join(s.dir, name+".pub.pem")
}

func (s *Store) privatePath(name string) string {
	return filepath.Join(s.dir, name+".pem")
}

func (s *Store) sealedPath(name string) string {
	return filepath.Join(s.dir, name+".key.json")
}

// writeFile writes bytes via a temp file, then atomically replaces the
// target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
