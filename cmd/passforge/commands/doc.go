// Package commands defines the passforge CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate     Generate one or more passwords
//   - passphrase   Generate a wordlist passphrase
//   - analyze      Report the strength of a password
//   - vault        Save, list, show and remove stored passwords
//   - profiles     List configured generation profiles
//
// # Implementation
//
// The root command loads the YAML config and builds a dependency graph
// (store, services) before any subcommand runs, so handlers share one app
// context.
package commands
