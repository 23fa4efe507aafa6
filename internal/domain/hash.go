package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"h20/internal/util/memzero"
)

// Profile fixes the cost parameters of one Argon2id stage. Profiles are
// compile-time constants on purpose: there are no flags or environment
// variables that could weaken them.
type Profile struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
}

var (
	// SlowProfile backs the passphrase and master-password stages. Roughly
	// 2 GiB of memory, sized to stay usable on mobile-class hardware while
	// remaining memory-hard.
	SlowProfile = Profile{Time: 1, MemoryKiB: 1 << 21, Threads: 2, KeyLen: 32}

	// SiteProfile backs the per-service stage, which runs in the foreground
	// after the user finishes typing and so must stay fast.
	SiteProfile = Profile{Time: 1, MemoryKiB: 1 << 10, Threads: 1, KeyLen: 24}
)

const hashSeparator = '$'

// EncodedHash is a self-describing Argon2id hash in PHC form:
//
//	$argon2id$v=19$m=<mem>,t=<time>,p=<par>$<b64 salt>$<b64 digest>
//
// It is held as a byte slice rather than a string so it can be wiped.
type EncodedHash struct {
	raw []byte
}

// ParseEncodedHash validates raw as a PHC-form Argon2id hash and wraps it.
// The raw slice is retained, not copied.
func ParseEncodedHash(raw []byte) (EncodedHash, error) {
	fields := bytes.Split(raw, []byte{hashSeparator})
	// A leading separator yields an empty first field.
	if len(fields) != 6 || len(fields[0]) != 0 {
		return EncodedHash{}, fmt.Errorf("%w: malformed encoded hash", ErrDerivation)
	}
	if !bytes.Equal(fields[1], []byte("argon2id")) {
		return EncodedHash{}, fmt.Errorf("%w: unexpected algorithm %q", ErrDerivation, fields[1])
	}
	if len(fields[5]) == 0 {
		return EncodedHash{}, fmt.Errorf("%w: empty digest", ErrDerivation)
	}
	if _, err := base64.RawStdEncoding.DecodeString(string(fields[5])); err != nil {
		return EncodedHash{}, fmt.Errorf("%w: digest is not base64: %v", ErrDerivation, err)
	}
	return EncodedHash{raw: raw}, nil
}

// Bytes returns the underlying encoded form. The slice aliases the hash; it
// goes stale after Wipe.
func (h EncodedHash) Bytes() []byte { return h.raw }

// String returns the encoded form as a string.
func (h EncodedHash) String() string { return string(h.raw) }

// Empty reports whether the hash holds no data.
func (h EncodedHash) Empty() bool { return len(h.raw) == 0 }

// Tail returns the trailing encoded segment: the raw digest rendered as
// Base64. The final credential and the confirmation tag are both cut from it.
func (h EncodedHash) Tail() []byte {
	i := bytes.LastIndexByte(h.raw, hashSeparator)
	if i < 0 {
		return nil
	}
	return h.raw[i+1:]
}

// Tag returns the confirmation tag: the first four characters of the tail.
// The tag is non-secret by design and far too short to reconstruct the hash.
func (h EncodedHash) Tag() Tag {
	tail := h.Tail()
	if len(tail) > 4 {
		tail = tail[:4]
	}
	return Tag(tail)
}

// Wipe overwrites the encoded form in place. Best effort, like every wipe in
// this process.
func (h *EncodedHash) Wipe() {
	memzero.Zero(h.raw)
	h.raw = nil
}
