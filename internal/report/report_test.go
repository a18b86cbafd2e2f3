package report_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"sealbox/internal/crypto"
	"sealbox/internal/report"
	"sealbox/internal/services/queue"
)

func TestBuildEmpty(t *testing.T) {
	st := report.Build(time.Now().Add(-3*time.Second), crypto.Stats{}, queue.Metrics{})

	if st.Status != "healthy" {
		t.Fatalf("status = %q, want healthy", st.Status)
	}
	if st.UptimeSeconds < 2 {
		t.Fatalf("uptime = %d, want >= 2", st.UptimeSeconds)
	}
	if st.Benchmark != nil || st.Queue != nil {
		t.Fatal("idle components should omit their sections")
	}
	if st.Components["encryption_engine"] != "active" {
		t.Fatalf("components = %v", st.Components)
	}
}

func TestBuildWithActivity(t *testing.T) {
	stats := crypto.Stats{
		KeyPairs:     1,
		Encrypts:     4,
		Decrypts:     2,
		KeyGenTotal:  time.Second,
		EncryptTotal: 8 * time.Millisecond,
		DecryptTotal: 6 * time.Millisecond,
	}
	qm := queue.Metrics{Processed: 10, AvgProcessing: time.Millisecond, PeakBatch: 5, Depth: 3}

	st := report.Build(time.Now(), stats, qm)
	if st.Benchmark == nil || st.Queue == nil {
		t.Fatal("active components must render their sections")
	}
	if st.Benchmark.EncryptAvg != "2ms" {
		t.Fatalf("encrypt avg = %q, want 2ms", st.Benchmark.EncryptAvg)
	}
	if st.Queue.Processed != 10 || st.Queue.Depth != 3 {
		t.Fatalf("queue section = %+v", st.Queue)
	}

	out, err := st.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	for _, key := range []string{"\"status\"", "\"uptime\"", "\"encryption_avg\"", "\"messages_processed\""} {
		if !strings.Contains(string(out), key) {
			t.Fatalf("rendered JSON missing %s:\n%s", key, out)
		}
	}
	var round report.Status
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
}
