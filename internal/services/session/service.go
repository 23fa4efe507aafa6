package session

import (
	"bytes"
	"errors"
	"fmt"

	"h20/internal/domain"
	"h20/internal/util/memzero"
)

// Service performs login and logout against the session secret cache.
type Service struct {
	deriver domain.Deriver
	cache   domain.SecretCache
	prompt  domain.Prompter
}

// New constructs a session service with the given deriver, cache, and prompter.
func New(deriver domain.Deriver, cache domain.SecretCache, prompt domain.Prompter) *Service {
	return &Service{deriver: deriver, cache: cache, prompt: prompt}
}

// Login prompts for the passphrase with echo suppressed, derives the session
// salt under the slow profile, and caches it under the fixed name. A second
// login overwrites the previous salt, never accumulates. The passphrase and
// every intermediate are wiped on all paths.
//
// The returned tag is the non-secret confirmation fragment of the new salt,
// for spotting typos across sessions. The tag is settled before the cache
// write, so it comes back alongside a cache-write failure and the user can
// still compare it against earlier sessions.
func (s *Service) Login() (domain.Tag, error) {
	passphrase, err := s.prompt.Secret("Passphrase")
	if err != nil {
		return "", err
	}
	defer memzero.Zero(passphrase)

	if len(bytes.TrimSpace(passphrase)) == 0 {
		return "", fmt.Errorf("%w: passphrase is blank", domain.ErrEmptyInput)
	}

	salt, err := s.deriver.DeriveHash(passphrase, []byte(domain.LoginSalt), domain.SlowProfile)
	if err != nil {
		return "", err
	}
	defer salt.Wipe()

	tag := salt.Tag()
	if err := s.cache.Put(domain.CacheName, salt.Bytes()); err != nil {
		return tag, fmt.Errorf("%w: %v", domain.ErrCacheWrite, err)
	}
	return tag, nil
}

// Logout removes the cached session salt. A missing salt is not an error:
// the result simply reports that nothing existed. Storage-layer trouble
// while invalidating comes back as informational notes on the result.
func (s *Service) Logout() (domain.RemoveResult, error) {
	v, err := s.cache.Get(domain.CacheName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RemoveResult{}, nil
		}
		return domain.RemoveResult{}, err
	}
	memzero.Zero(v)
	return s.cache.Remove(domain.CacheName)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
