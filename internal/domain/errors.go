package domain

import "errors"

var (
	// ErrEmptyInput is returned for a blank passphrase or an empty cached
	// session salt.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoSessionSecret is returned when the pipeline runs before login or
	// after logout.
	ErrNoSessionSecret = errors.New("no session secret")

	// ErrDerivation is returned when the memory-hard primitive is unavailable
	// or produced no usable output.
	ErrDerivation = errors.New("derivation failed")

	// ErrCacheWrite is returned when the session secret store rejected a write.
	ErrCacheWrite = errors.New("session cache write failed")

	// ErrEncoding is returned when the alphabet reduction is handed input it
	// cannot read as raw bytes.
	ErrEncoding = errors.New("encoding failed")

	// ErrNotFound is the store-level signal for an absent cache entry.
	ErrNotFound = errors.New("not found")
)
