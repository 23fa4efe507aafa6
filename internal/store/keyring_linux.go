//go:build linux

package store

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"h20/internal/domain"
)

// keyType is the kernel key type used for cached secrets. "user" keys carry
// an opaque payload readable only by the owning session.
const keyType = "user"

// KeyringCache stores the session secret in the kernel's session keyring.
// The keyring is scoped to the current login session: it survives across
// command invocations but not across logout or reboot, which is exactly the
// lifetime the session salt needs.
type KeyringCache struct{}

// NewKeyringCache returns a cache backed by the session keyring.
func NewKeyringCache() *KeyringCache { return &KeyringCache{} }

// Put adds value under name. add_key updates the payload in place when a key
// with the same type and description already exists, so Put overwrites
// silently and never accumulates entries.
func (c *KeyringCache) Put(name string, value []byte) error {
	if _, err := unix.AddKey(keyType, name, value, unix.KEY_SPEC_SESSION_KEYRING); err != nil {
		return fmt.Errorf("session keyring add %q: %w", name, err)
	}
	return nil
}

// Get searches the session keyring for name and reads its payload. An absent
// key maps to domain.ErrNotFound.
func (c *KeyringCache) Get(name string) ([]byte, error) {
	id, err := unix.KeyctlSearch(unix.KEY_SPEC_SESSION_KEYRING, keyType, name, 0)
	if err != nil {
		if keyAbsent(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("session keyring search %q: %w", name, err)
	}

	buf := make([]byte, 256)
	n, err := unix.KeyctlBuffer(unix.KEYCTL_READ, id, buf, 0)
	if err != nil {
		return nil, fmt.Errorf("session keyring read %q: %w", name, err)
	}
	if n > len(buf) {
		// First read reported a larger payload; fetch it in full.
		buf = make([]byte, n)
		if n, err = unix.KeyctlBuffer(unix.KEYCTL_READ, id, buf, 0); err != nil {
			return nil, fmt.Errorf("session keyring read %q: %w", name, err)
		}
	}
	return buf[:n], nil
}

// Remove invalidates and unlinks the key under name. Both operations are
// attempted; a failure of either is reported as a note, not an error, per
// the logout contract. Removing an absent name succeeds.
func (c *KeyringCache) Remove(name string) (domain.RemoveResult, error) {
	id, err := unix.KeyctlSearch(unix.KEY_SPEC_SESSION_KEYRING, keyType, name, 0)
	if err != nil {
		if keyAbsent(err) {
			return domain.RemoveResult{}, nil
		}
		return domain.RemoveResult{}, fmt.Errorf("session keyring search %q: %w", name, err)
	}

	res := domain.RemoveResult{Existed: true}

	// Invalidate wipes the key at the kernel level immediately; unlink alone
	// leaves it reachable until garbage collection.
	if _, err := unix.KeyctlInt(unix.KEYCTL_INVALIDATE, id, 0, 0, 0); err != nil {
		res.Notes = append(res.Notes, fmt.Sprintf("invalidate: %v", err))
	}
	if _, err := unix.KeyctlInt(unix.KEYCTL_UNLINK, id, unix.KEY_SPEC_SESSION_KEYRING, 0, 0); err != nil && !keyAbsent(err) {
		res.Notes = append(res.Notes, fmt.Sprintf("unlink: %v", err))
	}
	return res, nil
}

// keyAbsent reports whether err means the key does not exist anymore, either
// never created, expired, or already invalidated.
func keyAbsent(err error) bool {
	return errors.Is(err, unix.ENOKEY) ||
		errors.Is(err, unix.EKEYEXPIRED) ||
		errors.Is(err, unix.EKEYREVOKED)
}

// Compile-time assertion that KeyringCache implements domain.SecretCache.
var _ domain.SecretCache = (*KeyringCache)(nil)
