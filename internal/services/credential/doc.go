// Package credential runs the two-stage derivation pipeline.
//
// The slow master-key derivation is forked onto a background goroutine the
// moment the master password is read, and the service-name prompt runs in the
// foreground while it works. The site stage joins on the fork first, so it
// never sees a half-computed master key no matter how fast the user types.
package credential
