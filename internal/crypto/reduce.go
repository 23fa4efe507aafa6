package crypto

import (
	"fmt"

	"h20/internal/domain"
)

// Reduce maps each input byte independently onto lowercase a-z: 'a' + b%26.
// Output length equals input length and there is no carry between positions,
// so the mapping is lossy on purpose. This is not a base-26 numeral
// conversion; changing it to one would change every derived credential.
func Reduce(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: no input bytes", domain.ErrEncoding)
	}
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = 'a' + c%26
	}
	return out, nil
}
