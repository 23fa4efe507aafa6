package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"h20/internal/domain"
)

// Test seams for the x/term calls.
// In tests you can replace them with stubs to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	getState     = term.GetState
	restoreState = term.Restore
)

// TTY prompts on an input file and echoes labels to out.
type TTY struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

// New returns a TTY reading from in and writing prompts to out.
func New(in *os.File, out io.Writer) *TTY {
	return &TTY{in: in, reader: bufio.NewReader(in), out: out}
}

// Secret reads one line from the terminal with echo suppressed. The trailing
// newline is not part of the result; nothing else is trimmed, secrets keep
// their bytes as typed.
func (t *TTY) Secret(label string) ([]byte, error) {
	if _, err := fmt.Fprintf(t.out, "%s: ", label); err != nil {
		return nil, err
	}
	fd := int(t.in.Fd())

	release := t.guardState(fd)
	defer release()

	b, err := readPassword(fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", label, err)
	}
	return b, nil
}

// Line reads one echoed line and trims surrounding whitespace.
func (t *TTY) Line(label string) ([]byte, error) {
	if _, err := fmt.Fprintf(t.out, "%s: ", label); err != nil {
		return nil, err
	}
	line, err := t.reader.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return bytes.TrimSpace(line), nil
		}
		return nil, fmt.Errorf("reading %s: %w", label, err)
	}
	return bytes.TrimSpace(line), nil
}

// guardState captures the terminal state on fd and arranges for an interrupt
// during the read to restore it before the process dies. The returned release
// function dismantles the watcher; call it as soon as the read finishes.
// On a non-terminal fd this is a no-op.
func (t *TTY) guardState(fd int) func() {
	state, err := getState(fd)
	if err != nil {
		return func() {}
	}

	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, os.Interrupt)
	go func() {
		select {
		case <-sig:
			// Restore line discipline first, then die with the conventional
			// interrupt status.
			_ = restoreState(fd, state)
			signal.Stop(sig)
			os.Exit(130)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
		_ = restoreState(fd, state)
	}
}

// Compile-time assertion that TTY implements domain.Prompter.
var _ domain.Prompter = (*TTY)(nil)
