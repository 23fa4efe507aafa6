package domain

const (
	// CacheName is the fixed name the session salt is cached under. Exactly
	// one entry may exist under this name at a time; login overwrites it.
	CacheName = "h20/passphrase"

	// LoginSalt seeds the passphrase derivation at login.
	LoginSalt = "h20-login"
)

// Mode identifies the alphabet of a produced credential.
type Mode string

const (
	// ModeBase26 renders the credential over lowercase a-z only.
	ModeBase26 Mode = "base26"
	// ModeBase64 keeps the raw Base64 alphabet, prefixed with a full stop.
	ModeBase64 Mode = "base64"
)

// String returns the string form of the mode.
func (m Mode) String() string { return string(m) }

// Tag is a short non-secret fragment of a derived hash shown to the user so
// typos can be detected across sessions without revealing the secret.
type Tag string

// String returns the string form of the tag.
func (t Tag) String() string { return string(t) }

// Receipt is what a pipeline run reports back to the user. It deliberately
// carries no secret material: the credential itself only ever reaches the
// clipboard sink.
type Receipt struct {
	Mode Mode
	Tag  Tag
}

// RemoveResult describes the outcome of removing a cached secret. Notes carry
// informational storage-layer messages (for example an unsupported invalidate
// operation) that must not fail the removal.
type RemoveResult struct {
	Existed bool
	Notes   []string
}
