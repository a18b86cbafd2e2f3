package crypto

import (
	"crypto/rsa"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"sealbox/internal/domain"
)

// Stats is a snapshot of operation counts and cumulative timings
// recorded by an Instrumented engine.
type Stats struct {
	KeyPairs uint64
	Encrypts uint64
	Decrypts uint64

	KeyGenTotal  time.Duration
	EncryptTotal time.Duration
	DecryptTotal time.Duration
}

// AvgKeyGen returns the mean key generation time, or zero if none ran.
func (s Stats) AvgKeyGen() time.Duration { return avg(s.KeyGenTotal, s.KeyPairs) }

// AvgEncrypt returns the mean encrypt time, or zero if none ran.
func (s Stats) AvgEncrypt() time.Duration { return avg(s.EncryptTotal, s.Encrypts) }

// AvgDecrypt returns the mean decrypt time, or zero if none ran.
func (s Stats) AvgDecrypt() time.Duration { return avg(s.DecryptTotal, s.Decrypts) }

func avg(total time.Duration, n uint64) time.Duration {
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}

// Instrumented decorates an Engine with timing counters and debug
// logging. The wrapped engine stays pure; all mutable state lives here.
// Safe for concurrent use.
type Instrumented struct {
	eng *Engine
	log *zap.Logger

	mu    sync.Mutex
	stats Stats
}

// NewInstrumented wraps eng. A nil logger disables logging.
func NewInstrumented(eng *Engine, log *zap.Logger) *Instrumented {
	if log == nil {
		log = zap.NewNop()
	}
	return &Instrumented{eng: eng, log: log}
}

// GenerateKeyPair times Engine.GenerateKeyPair.
func (i *Instrumented) GenerateKeyPair() (*domain.KeyPair, error) {
	start := time.Now()
	kp, err := i.eng.GenerateKeyPair()
	elapsed := time.Since(start)
	if err != nil {
		i.log.Error("key generation failed", zap.Error(err))
		return nil, err
	}

	i.mu.Lock()
	i.stats.KeyPairs++
	i.stats.KeyGenTotal += elapsed
	i.mu.Unlock()

	i.log.Debug("generated key pair", zap.Duration("took", elapsed))
	return kp, nil
}

// Encrypt times Engine.Encrypt.
func (i *Instrumented) Encrypt(plaintext []byte, pub *rsa.PublicKey) (*domain.Envelope, error) {
	start := time.Now()
	env, err := i.eng.Encrypt(plaintext, pub)
	elapsed := time.Since(start)
	if err != nil {
		i.log.Error("encrypt failed", zap.Error(err))
		return nil, err
	}

	i.mu.Lock()
	i.stats.Encrypts++
	i.stats.EncryptTotal += elapsed
	i.mu.Unlock()

	i.log.Debug("encrypted message",
		zap.String("message_id", env.MessageID),
		zap.Duration("took", elapsed))
	return env, nil
}

// Decrypt times Engine.Decrypt. Failures are logged with the message id
// only; the sentinel errors carry no plaintext or key detail.
func (i *Instrumented) Decrypt(env *domain.Envelope, priv *rsa.PrivateKey) ([]byte, error) {
	start := time.Now()
	plaintext, err := i.eng.Decrypt(env, priv)
	elapsed := time.Since(start)
	if err != nil {
		i.log.Error("decrypt failed",
			zap.String("message_id", env.MessageID),
			zap.Error(err))
		return nil, err
	}

	i.mu.Lock()
	i.stats.Decrypts++
	i.stats.DecryptTotal += elapsed
	i.mu.Unlock()

	i.log.Debug("decrypted message",
		zap.String("message_id", env.MessageID),
		zap.Duration("took", elapsed))
	return plaintext, nil
}

// DecryptText is Engine.DecryptText, timed as a decrypt.
func (i *Instrumented) DecryptText(env *domain.Envelope, priv *rsa.PrivateKey) (string, error) {
	plaintext, err := i.Decrypt(env, priv)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidContentEncoding
	}
	return string(plaintext), nil
}

// Snapshot returns a copy of the current counters.
func (i *Instrumented) Snapshot() Stats {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stats
}
