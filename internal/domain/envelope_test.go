package domain_test

import (
	"encoding/json"
	"testing"

	"sealbox/internal/domain"
)

// The JSON field names are the cross-process contract; renaming one is a
// breaking change.
func TestEnvelopeWireNames(t *testing.T) {
	env := domain.Envelope{
		EncryptedContent:      "Y3Q=",
		EncryptedSymmetricKey: "a2V5",
		Nonce:                 "bm9uY2U=",
		Timestamp:             1700000000,
		MessageID:             "ab12",
		Version:               "3.0",
	}
	out, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, name := range []string{
		"encrypted_content",
		"encrypted_symmetric_key",
		"nonce",
		"timestamp",
		"message_id",
		"version",
	} {
		if _, ok := fields[name]; !ok {
			t.Errorf("field %q missing from wire form", name)
		}
	}
	if len(fields) != 6 {
		t.Errorf("wire form has %d fields, want 6", len(fields))
	}
}
