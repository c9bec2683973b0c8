package domain

import "errors"

var (
	// ErrNoVault means no vault file exists yet at the configured home.
	ErrNoVault = errors.New("vault not initialised")

	// ErrBadPassphrase means the vault exists but could not be decrypted.
	ErrBadPassphrase = errors.New("wrong passphrase or corrupted vault")

	// ErrEntryNotFound means no vault entry carries the requested label.
	ErrEntryNotFound = errors.New("no entry with that label")
)
