// Package terminal collects interactive input for the pipeline.
//
// Secret prompts suppress echo via golang.org/x/term and restore the
// terminal's prior input mode on every exit path, including an interrupt
// delivered mid-prompt.
package terminal
