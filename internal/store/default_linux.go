//go:build linux

package store

import "h20/internal/domain"

// Default returns the platform's session-scoped cache: the kernel session
// keyring, which spans the separate login/pass/logout processes of one
// session.
func Default() domain.SecretCache { return NewKeyringCache() }
