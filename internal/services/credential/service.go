package credential

import (
	"errors"
	"fmt"

	"h20/internal/crypto"
	"h20/internal/domain"
	"h20/internal/util/memzero"
)

const (
	// credentialLen is the fixed length of every produced credential.
	credentialLen = 16

	// clipboardLoops is how many paste cycles the sink should serve before
	// clearing itself.
	clipboardLoops = 3
)

// Service derives one credential per invocation from the cached session
// salt, a master password, and a service name.
type Service struct {
	deriver domain.Deriver
	cache   domain.SecretCache
	prompt  domain.Prompter
	sink    domain.Sink
}

// New constructs a credential service.
func New(deriver domain.Deriver, cache domain.SecretCache, prompt domain.Prompter, sink domain.Sink) *Service {
	return &Service{deriver: deriver, cache: cache, prompt: prompt, sink: sink}
}

// derived carries the background derivation's outcome across the join point.
type derived struct {
	hash domain.EncodedHash
	err  error
}

// Generate runs the pipeline end to end: read the cached salt, overlap the
// slow master-key derivation with the service-name prompt, derive the site
// hash, encode, and deliver to the clipboard. Identical inputs always yield
// an identical credential.
//
// The credential itself never appears in the return value; the receipt holds
// only the output mode and the master key's confirmation tag. Every secret
// local is wiped on success and on every error path.
func (s *Service) Generate() (domain.Receipt, error) {
	salt, err := s.cache.Get(domain.CacheName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Receipt{}, domain.ErrNoSessionSecret
		}
		return domain.Receipt{}, err
	}
	defer memzero.Zero(salt)

	if len(salt) == 0 {
		return domain.Receipt{}, fmt.Errorf("%w: cached session salt is blank", domain.ErrEmptyInput)
	}

	master, err := s.prompt.Secret("Master password")
	if err != nil {
		return domain.Receipt{}, err
	}
	defer memzero.Zero(master)

	// Fork the slow derivation so it runs while the user types the service
	// name. The channel is buffered; the goroutine never blocks on us.
	fork := make(chan derived, 1)
	go func() {
		hash, err := s.deriver.DeriveHash(master, salt, domain.SlowProfile)
		fork <- derived{hash: hash, err: err}
	}()

	service, promptErr := s.prompt.Line("Service")
	defer memzero.Zero(service)

	// Join before acting on any outcome, even a prompt failure: the
	// goroutine still holds the secret buffers until it finishes.
	result := <-fork
	masterKey := result.hash
	defer masterKey.Wipe()

	if result.err != nil {
		return domain.Receipt{}, result.err
	}
	if masterKey.Empty() {
		return domain.Receipt{}, fmt.Errorf("%w: master key is empty", domain.ErrDerivation)
	}
	if promptErr != nil {
		return domain.Receipt{}, promptErr
	}

	siteHash, err := s.deriver.DeriveHash(service, masterKey.Bytes(), domain.SiteProfile)
	if err != nil {
		return domain.Receipt{}, err
	}
	defer siteHash.Wipe()

	credential, mode, err := encode(service, siteHash.Tail())
	if err != nil {
		return domain.Receipt{}, err
	}
	defer memzero.Zero(credential)

	if err := s.sink.Write(credential, clipboardLoops); err != nil {
		return domain.Receipt{}, err
	}
	return domain.Receipt{Mode: mode, Tag: masterKey.Tag()}, nil
}

// encode cuts the final credential from the site hash tail. A service name
// opening with a full stop keeps the Base64 alphabet behind a leading full
// stop; anything else is reduced to lowercase a-z.
func encode(service, tail []byte) ([]byte, domain.Mode, error) {
	if len(tail) < credentialLen {
		return nil, "", fmt.Errorf("%w: site hash tail too short (%d bytes)", domain.ErrDerivation, len(tail))
	}

	if service[0] == '.' {
		credential := make([]byte, 0, credentialLen)
		credential = append(credential, '.')
		credential = append(credential, tail[:credentialLen-1]...)
		return credential, domain.ModeBase64, nil
	}

	credential, err := crypto.Reduce(tail[:credentialLen])
	if err != nil {
		return nil, "", err
	}
	return credential, domain.ModeBase26, nil
}

// Compile-time assertion that Service implements domain.CredentialService.
var _ domain.CredentialService = (*Service)(nil)
