package app

import (
	"os"

	"h20/internal/clipboard"
	"h20/internal/crypto"
	"h20/internal/services/credential"
	"h20/internal/services/session"
	"h20/internal/store"
	"h20/internal/terminal"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *App {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	cache := cfg.Cache
	if cache == nil {
		cache = store.Default()
	}
	sink := cfg.Sink
	if sink == nil {
		sink = clipboard.Detect()
	}

	engine := crypto.NewEngine()
	prompt := terminal.New(in, out)

	return New(
		session.New(engine, cache, prompt),
		credential.New(engine, cache, prompt, sink),
	)
}
