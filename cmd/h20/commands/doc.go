// Package commands defines the h20 CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login   Derive the session salt from a passphrase and cache it
//   - pass    Derive a service credential and copy it to the clipboard
//   - logout  Invalidate and remove the cached session salt
//
// # Implementation
//
// The root command builds the dependency graph (cache, prompter, clipboard
// sink, services) before any subcommand runs. There are no flags and no
// configuration: every cost parameter is fixed, which removes the
// misconfiguration and downgrade surface entirely.
package commands
