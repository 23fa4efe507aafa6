package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"

	atotto "github.com/atotto/clipboard"

	"h20/internal/domain"
)

// tool describes one native clipboard helper and how to ask it for a limited
// number of paste cycles.
type tool struct {
	name string
	args func(repeat int) []string
}

// tools are probed in order. xclip is preferred because -loops makes the
// selection expire after the requested number of pastes; the others copy
// without a cycle limit.
var tools = []tool{
	{"xclip", func(repeat int) []string {
		return []string{"-selection", "clipboard", "-loops", strconv.Itoa(repeat)}
	}},
	{"wl-copy", func(repeat int) []string { return nil }},
	{"xsel", func(repeat int) []string { return []string{"--input", "--clipboard"} }},
}

// lookPath is a test seam for exec.LookPath.
var lookPath = exec.LookPath

// Detect returns the best sink for this machine: the first native tool found
// on PATH, else the portable fallback.
func Detect() domain.Sink {
	for _, tl := range tools {
		if _, err := lookPath(tl.name); err == nil {
			return &CommandSink{tool: tl}
		}
	}
	return &PortableSink{}
}

// CommandSink copies via a native clipboard tool.
type CommandSink struct {
	tool tool
}

// Write pipes p into the tool's stdin. With a loop-capable tool the
// selection serves repeat pastes and then clears itself.
func (s *CommandSink) Write(p []byte, repeat int) error {
	cmd := exec.Command(s.tool.name, s.tool.args(repeat)...)
	cmd.Stdin = bytes.NewReader(p)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard %s: %w", s.tool.name, err)
	}
	return nil
}

// PortableSink copies via the atotto clipboard library. It has no notion of
// paste cycles, so repeat is ignored and the selection persists until
// something overwrites it.
type PortableSink struct{}

// Write copies p to the clipboard.
func (s *PortableSink) Write(p []byte, repeat int) error {
	if err := atotto.WriteAll(string(p)); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Compile-time assertions that both sinks implement domain.Sink.
var (
	_ domain.Sink = (*CommandSink)(nil)
	_ domain.Sink = (*PortableSink)(nil)
)
