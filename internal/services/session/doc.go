// Package session owns the session secret lifecycle.
//
// Login derives the session salt from the passphrase under the slow profile
// and caches it; logout invalidates and removes it. The cached salt is the
// only state that outlives a single command invocation.
package session
