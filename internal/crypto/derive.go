package crypto

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"h20/internal/domain"
)

// Engine derives self-describing Argon2id hashes under fixed cost profiles.
//
// The salt of each stage is the previous stage's encoded output, so a single
// DeriveHash operation covers login, master-key and site stages alike.
type Engine struct{}

// NewEngine returns the Argon2id-backed deriver.
func NewEngine() Engine { return Engine{} }

// DeriveHash runs Argon2id over (secret, salt) with the given profile and
// returns the result in PHC encoded form. The caller owns secret and must
// wipe it after the call returns, success or failure.
func (Engine) DeriveHash(secret, salt []byte, profile domain.Profile) (domain.EncodedHash, error) {
	if len(secret) == 0 {
		return domain.EncodedHash{}, fmt.Errorf("%w: secret is blank", domain.ErrEmptyInput)
	}
	if len(salt) == 0 {
		return domain.EncodedHash{}, fmt.Errorf("%w: salt is blank", domain.ErrEmptyInput)
	}

	digest := argon2.IDKey(secret, salt, profile.Time, profile.MemoryKiB, profile.Threads, profile.KeyLen)
	if len(digest) == 0 {
		return domain.EncodedHash{}, fmt.Errorf("%w: primitive returned no output", domain.ErrDerivation)
	}
	defer Wipe(digest)

	encoded := encodeHash(profile, salt, digest)
	hash, err := domain.ParseEncodedHash(encoded)
	if err != nil {
		Wipe(encoded)
		return domain.EncodedHash{}, err
	}
	return hash, nil
}

// encodeHash renders a digest in PHC form, the same layout the reference
// argon2 tool emits with -e: parameters and salt embedded, fields separated
// by '$', salt and digest in unpadded standard Base64.
func encodeHash(profile domain.Profile, salt, digest []byte) []byte {
	s := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		profile.MemoryKiB, profile.Time, profile.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return []byte(s)
}

// Compile-time assertion that Engine implements domain.Deriver.
var _ domain.Deriver = Engine{}
