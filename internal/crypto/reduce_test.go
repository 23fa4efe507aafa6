package crypto_test

import (
	"errors"
	"testing"

	"h20/internal/crypto"
	"h20/internal/domain"
)

func TestReduce_MapsEveryByteOntoLowercaseAlphabet(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}

	out, err := crypto.Reduce(in)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("want length %d, got %d", len(in), len(out))
	}
	for i, c := range out {
		want := byte('a' + in[i]%26)
		if c != want {
			t.Fatalf("position %d: want %q, got %q", i, want, c)
		}
	}
}

func TestReduce_HasNoCarryBetweenPositions(t *testing.T) {
	// 255 and 21 land on the same letter; the reduction is lossy on purpose.
	out, err := crypto.Reduce([]byte{255, 21})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if out[0] != out[1] {
		t.Fatalf("want identical letters for 255 and 21, got %q and %q", out[0], out[1])
	}
}

func TestReduce_EmptyInput(t *testing.T) {
	if _, err := crypto.Reduce(nil); !errors.Is(err, domain.ErrEncoding) {
		t.Fatalf("want ErrEncoding, got %v", err)
	}
}
