package domain

// VaultStore persists vault entries encrypted at rest.
type VaultStore interface {
	// LoadEntries returns all entries, or ErrNoVault / ErrBadPassphrase.
	LoadEntries(passphrase string) ([]VaultEntry, error)

	// SaveEntries replaces the vault contents under the given passphrase.
	SaveEntries(passphrase string, entries []VaultEntry) error

	// Exists reports whether a vault file is present on disk.
	Exists() bool
}

// Generator produces passwords and passphrases.
type Generator interface {
	Password(p Policy) (string, error)
	Passwords(n int, p Policy) ([]string, error)
	Passphrase(p WordlistPolicy) (string, error)
}

// VaultService exposes the vault operations used by the CLI.
type VaultService interface {
	Save(passphrase, label, password, notes string) (VaultEntry, error)
	List(passphrase string) ([]VaultEntry, error)
	Show(passphrase, label string) (VaultEntry, error)
	Remove(passphrase, label string) error
}
