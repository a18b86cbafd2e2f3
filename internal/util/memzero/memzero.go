// Package memzero provides best-effort wiping of sensitive buffers.
// It shortens the in-memory lifetime of key material; Go offers no hard
// zeroization guarantee.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
