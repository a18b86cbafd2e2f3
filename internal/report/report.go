// Package report renders a JSON status document covering the engine and
// queue components.
package report

import (
	"encoding/json"
	"runtime"
	"time"

	"sealbox/internal/crypto"
	"sealbox/internal/services/queue"
)

// Status is the top-level status document.
type Status struct {
	Status        string            `json:"status"`
	GoVersion     string            `json:"go_version"`
	UptimeSeconds uint64            `json:"uptime"`
	Components    map[string]string `json:"components"`
	Benchmark     *Benchmark        `json:"benchmark,omitempty"`
	Queue         *QueueStats       `json:"queue,omitempty"`
}

// Benchmark summarizes engine timings as human-readable durations.
type Benchmark struct {
	KeyGenAvg  string `json:"keygen_avg"`
	EncryptAvg string `json:"encryption_avg"`
	DecryptAvg string `json:"decryption_avg"`
	Encrypts   uint64 `json:"encrypt_ops"`
	Decrypts   uint64 `json:"decrypt_ops"`
}

// QueueStats summarizes queue processing.
type QueueStats struct {
	Processed     uint64 `json:"messages_processed"`
	AvgProcessing string `json:"average_processing_time"`
	PeakBatch     int    `json:"peak_batch"`
	Depth         int    `json:"queue_size"`
}

// Build assembles a Status from component snapshots. Zero-valued
// snapshots produce nil sections rather than misleading zeros.
func Build(started time.Time, stats crypto.Stats, qm queue.Metrics) Status {
	st := Status{
		Status:        "healthy",
		GoVersion:     runtime.Version(),
		UptimeSeconds: uint64(time.Since(started).Seconds()),
		Components: map[string]string{
			"encryption_engine": "active",
			"message_queue":     "active",
		},
	}
	if stats.Encrypts > 0 || stats.Decrypts > 0 || stats.KeyPairs > 0 {
		st.Benchmark = &Benchmark{
			KeyGenAvg:  stats.AvgKeyGen().String(),
			EncryptAvg: stats.AvgEncrypt().String(),
			DecryptAvg: stats.AvgDecrypt().String(),
			Encrypts:   stats.Encrypts,
			Decrypts:   stats.Decrypts,
		}
	}
	if qm.Processed > 0 || qm.Depth > 0 {
		st.Queue = &QueueStats{
			Processed:     qm.Processed,
			AvgProcessing: qm.AvgProcessing.String(),
			PeakBatch:     qm.PeakBatch,
			Depth:         qm.Depth,
		}
	}
	return st
}

// JSON renders the status document with indentation.
func (s Status) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
