//go:build !linux

package store

import "h20/internal/domain"

// Default returns the substitute in-process cache on platforms without a
// session keyring. It cannot span separate command invocations, so login and
// pass only compose there when driven from a single embedding process.
func Default() domain.SecretCache { return NewMemoryCache() }
