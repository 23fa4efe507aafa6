// Package memzero erases secret material left in byte slices.
//
// Erasure is advisory: the runtime is free to have copied the bytes during
// growth or GC, so callers must treat this as a mitigation, not a guarantee.
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
