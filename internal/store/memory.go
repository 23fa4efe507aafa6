package store

import (
	"sync"

	"h20/internal/domain"
	"h20/internal/util/memzero"
)

// MemoryCache is a process-local secret cache. It backs tests and platforms
// without a session keyring; there it cannot span separate command
// invocations, which is the documented limit of the substitute store.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

// Put stores a copy of value under name. An existing value is wiped and
// replaced, last write wins.
func (c *MemoryCache) Put(name string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[name]; ok {
		memzero.Zero(old)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	c.entries[name] = cp
	return nil
}

// Get returns a copy of the value under name, or domain.ErrNotFound.
func (c *MemoryCache) Get(name string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

// Remove wipes and deletes the value under name. Removing an absent name
// succeeds and reports that nothing existed.
func (c *MemoryCache) Remove(name string) (domain.RemoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[name]
	if !ok {
		return domain.RemoveResult{}, nil
	}
	memzero.Zero(v)
	delete(c.entries, name)
	return domain.RemoveResult{Existed: true}, nil
}

// Compile-time assertion that MemoryCache implements domain.SecretCache.
var _ domain.SecretCache = (*MemoryCache)(nil)
