package terminal

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestSecret_UsesMaskedReadAndPrintsLabel(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter2"), nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	tty := New(r, &out)

	got, err := tty.Secret("Passphrase")
	if err != nil {
		t.Fatalf("Secret: %v", err)
	}
	if string(got) != "hunter2" {
		t.Fatalf("want %q, got %q", "hunter2", got)
	}
	if !strings.HasPrefix(out.String(), "Passphrase: ") {
		t.Fatalf("missing label, got %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Fatal("masked read must be followed by a newline")
	}
}

func TestSecret_RestoresTerminalState(t *testing.T) {
	origRead, origGet, origRestore := readPassword, getState, restoreState
	defer func() { readPassword, getState, restoreState = origRead, origGet, origRestore }()

	state := &term.State{}
	getState = func(fd int) (*term.State, error) { return state, nil }

	var restored []*term.State
	restoreState = func(fd int, s *term.State) error {
		restored = append(restored, s)
		return nil
	}
	readPassword = func(fd int) ([]byte, error) {
		if len(restored) != 0 {
			t.Fatal("terminal state restored before the read finished")
		}
		return nil, errors.New("read interrupted")
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	tty := New(r, &out)

	if _, err := tty.Secret("Passphrase"); err == nil {
		t.Fatal("want the read error to propagate")
	}
	if len(restored) != 1 {
		t.Fatalf("want exactly one restore, got %d", len(restored))
	}
	if restored[0] != state {
		t.Fatal("restore must receive the state captured before the read")
	}
}

func TestLine_TrimsWhitespace(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()

	if _, err := w.WriteString("  amazon \n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()

	var out bytes.Buffer
	tty := New(r, &out)

	got, err := tty.Line("Service")
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if string(got) != "amazon" {
		t.Fatalf("want %q, got %q", "amazon", got)
	}
}

func TestLine_ReturnsPartialLineOnEOF(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()

	if _, err := w.WriteString("amazon"); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()

	var out bytes.Buffer
	tty := New(r, &out)

	got, err := tty.Line("Service")
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if string(got) != "amazon" {
		t.Fatalf("want %q, got %q", "amazon", got)
	}
}
