package app

import (
	"io"
	"os"

	"h20/internal/domain"
)

// Config holds runtime wiring options for building the app. There are no
// tunable cost parameters on purpose; the only seams are IO streams and
// collaborator overrides for embedding and tests.
type Config struct {
	In  *os.File  // terminal input; defaults to os.Stdin
	Out io.Writer // prompt and result output; defaults to os.Stdout

	Cache domain.SecretCache // optional; defaults to the platform session cache
	Sink  domain.Sink        // optional; defaults to the detected clipboard tool
}
