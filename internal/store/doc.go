// Package store provides file-based persistence for the vault.
//
// The whole entry list is serialised as JSON and sealed into a single
// encrypted envelope on disk, so entry labels and notes are as confidential
// as the passwords themselves. All methods are concurrency-safe via internal
// locking. The vault file lives under the user's configured home directory
// with 0600 permissions.
package store
