package app

import (
	"time"

	"go.uber.org/zap"

	"sealbox/internal/crypto"
	"sealbox/internal/keyfile"
	"sealbox/internal/services/queue"
)

// App bundles the engine, key store and queue service for the CLI.
type App struct {
	Engine  *crypto.Instrumented
	Keys    *keyfile.Store
	Queue   *queue.Service
	Log     *zap.Logger
	Started time.Time
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	maxQueue := cfg.MaxQueue
	if maxQueue == 0 {
		maxQueue = DefaultMaxQueue
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}

	return &App{
		Engine:  crypto.NewInstrumented(crypto.New(), log.Named("engine")),
		Keys:    keyfile.NewStore(cfg.Home),
		Queue:   queue.New(maxQueue, batchSize, log.Named("queue")),
		Log:     log,
		Started: time.Now(),
	}, nil
}
