package app

import "go.uber.org/zap"

// Queue sizing defaults, matching the values the engine was load-tested
// with.
const (
	DefaultMaxQueue  = 10000
	DefaultBatchSize = 50
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string      // key directory, e.g. $HOME/.sealbox
	MaxQueue  int         // per-conversation queue capacity; 0 means default
	BatchSize int         // drain batch size; 0 means default
	Log       *zap.Logger // optional; defaults to a nop logger
}
