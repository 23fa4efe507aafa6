// Package app wires stores, prompts, sinks and services into the dependency
// graph the CLI runs on.
package app
