package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h20/internal/domain"
	"h20/internal/services/session"
	"h20/internal/store"
)

const (
	saltOne = "$argon2id$v=19$m=2097152,t=1,p=2$aDIwLWxvZ2lu$AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD"
	saltTwo = "$argon2id$v=19$m=2097152,t=1,p=2$aDIwLWxvZ2lu$EEEEEEEEFFFFFFFFGGGGGGGGHHHHHHHH"
)

// fakeDeriver hands out a canned encoded hash and records what it was asked
// to derive. A fresh parse per call keeps the canned value safe from the
// service's wipes.
type fakeDeriver struct {
	raw     string
	err     error
	calls   int
	secret  string
	salt    string
	profile domain.Profile
}

func (f *fakeDeriver) DeriveHash(secret, salt []byte, profile domain.Profile) (domain.EncodedHash, error) {
	f.calls++
	f.secret, f.salt, f.profile = string(secret), string(salt), profile
	if f.err != nil {
		return domain.EncodedHash{}, f.err
	}
	return domain.ParseEncodedHash([]byte(f.raw))
}

// fakePrompter replays canned answers.
type fakePrompter struct {
	secret    []byte
	secretErr error
	line      []byte
	lineErr   error
	labels    []string
}

func (f *fakePrompter) Secret(label string) ([]byte, error) {
	f.labels = append(f.labels, label)
	if f.secretErr != nil {
		return nil, f.secretErr
	}
	cp := make([]byte, len(f.secret))
	copy(cp, f.secret)
	return cp, nil
}

func (f *fakePrompter) Line(label string) ([]byte, error) {
	f.labels = append(f.labels, label)
	if f.lineErr != nil {
		return nil, f.lineErr
	}
	cp := make([]byte, len(f.line))
	copy(cp, f.line)
	return cp, nil
}

func TestLogin_CachesSaltAndReturnsTag(t *testing.T) {
	deriver := &fakeDeriver{raw: saltOne}
	cache := store.NewMemoryCache()
	svc := session.New(deriver, cache, &fakePrompter{secret: []byte("correct horse")})

	tag, err := svc.Login()
	require.NoError(t, err)
	assert.Equal(t, domain.Tag("AAAA"), tag)

	assert.Equal(t, "correct horse", deriver.secret)
	assert.Equal(t, domain.LoginSalt, deriver.salt)
	assert.Equal(t, domain.SlowProfile, deriver.profile)

	cached, err := cache.Get(domain.CacheName)
	require.NoError(t, err)
	assert.Equal(t, saltOne, string(cached))
}

func TestLogin_BlankPassphrase(t *testing.T) {
	deriver := &fakeDeriver{raw: saltOne}
	svc := session.New(deriver, store.NewMemoryCache(), &fakePrompter{secret: []byte("   ")})

	_, err := svc.Login()
	require.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Zero(t, deriver.calls, "blank passphrase must never reach the deriver")
}

func TestLogin_CacheWriteFailure(t *testing.T) {
	deriver := &fakeDeriver{raw: saltOne}
	svc := session.New(deriver, failingCache{}, &fakePrompter{secret: []byte("correct horse")})

	tag, err := svc.Login()
	require.ErrorIs(t, err, domain.ErrCacheWrite)
	assert.Equal(t, domain.Tag("AAAA"), tag,
		"the tag is settled before the cache write and survives its failure")
}

func TestLogin_TwiceLeavesOnlySecondSalt(t *testing.T) {
	cache := store.NewMemoryCache()

	first := session.New(&fakeDeriver{raw: saltOne}, cache, &fakePrompter{secret: []byte("one")})
	_, err := first.Login()
	require.NoError(t, err)

	second := session.New(&fakeDeriver{raw: saltTwo}, cache, &fakePrompter{secret: []byte("two")})
	_, err = second.Login()
	require.NoError(t, err)

	cached, err := cache.Get(domain.CacheName)
	require.NoError(t, err)
	assert.Equal(t, saltTwo, string(cached), "re-login overwrites, never appends")
}

func TestLogout_WithoutLogin(t *testing.T) {
	svc := session.New(&fakeDeriver{raw: saltOne}, store.NewMemoryCache(), &fakePrompter{})

	res, err := svc.Logout()
	require.NoError(t, err)
	assert.False(t, res.Existed)
}

func TestLogout_RemovesCachedSalt(t *testing.T) {
	cache := store.NewMemoryCache()
	svc := session.New(&fakeDeriver{raw: saltOne}, cache, &fakePrompter{secret: []byte("correct horse")})

	_, err := svc.Login()
	require.NoError(t, err)

	res, err := svc.Logout()
	require.NoError(t, err)
	assert.True(t, res.Existed)

	_, err = cache.Get(domain.CacheName)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// failingCache rejects every write.
type failingCache struct{}

func (failingCache) Put(string, []byte) error { return errors.New("keyring unavailable") }
func (failingCache) Get(string) ([]byte, error) {
	return nil, domain.ErrNotFound
}
func (failingCache) Remove(string) (domain.RemoveResult, error) {
	return domain.RemoveResult{}, nil
}
