// Package store implements the session secret cache.
//
// It contains concrete implementations of domain.SecretCache. Nothing in
// this package touches persistent storage: KeyringCache lives in the kernel's
// session keyring and dies with the login session, MemoryCache lives in the
// process and dies with it.
package store
