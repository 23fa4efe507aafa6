package domain

// Deriver wraps the memory-hard primitive behind the fixed cost profiles.
// Callers own the secret and must wipe it after the call returns, success or
// not; the deriver never retains it.
type Deriver interface {
	DeriveHash(secret, salt []byte, profile Profile) (EncodedHash, error)
}

// SecretCache is the session-lifetime store for the one cached secret. It
// must never touch persistent storage.
type SecretCache interface {
	// Put stores value under name, silently overwriting any previous value.
	Put(name string, value []byte) error
	// Get returns the value under name, or ErrNotFound. The returned slice
	// is the caller's to wipe.
	Get(name string) ([]byte, error)
	// Remove deletes the value under name. Removing an absent name succeeds
	// and reports Existed=false.
	Remove(name string) (RemoveResult, error)
}

// Prompter collects interactive input from the user's terminal.
type Prompter interface {
	// Secret reads one line with echo suppressed. The terminal's prior input
	// mode is restored afterwards regardless of outcome.
	Secret(label string) ([]byte, error)
	// Line reads one echoed line, trimmed of surrounding whitespace.
	Line(label string) ([]byte, error)
}

// Sink delivers a credential to the system clipboard. The sink stays
// available for repeat paste cycles and is expected to clear itself
// afterwards; this process does not verify the clearing.
type Sink interface {
	Write(p []byte, repeat int) error
}

// SessionService owns the session secret lifecycle.
type SessionService interface {
	Login() (Tag, error)
	Logout() (RemoveResult, error)
}

// CredentialService runs the two-stage derivation pipeline end to end.
type CredentialService interface {
	Generate() (Receipt, error)
}
