package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ishnc/passforge/internal/crypto"
	"github.com/ishnc/passforge/internal/domain"
)

const vaultFile = "vault.enc"

// FileStore keeps the vault in one encrypted file on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path() string { return filepath.Join(s.dir, vaultFile) }

// Exists reports whether a vault file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path())
	return err == nil
}

// LoadEntries decrypts and returns all vault entries.
func (s *FileStore) LoadEntries(passphrase string) ([]domain.VaultEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoVault
		}
		return nil, err
	}
	raw, err := crypto.OpenEnvelope(passphrase, blob)
	if err != nil {
		return nil, domain.ErrBadPassphrase
	}
	defer crypto.Wipe(raw)

	var entries []domain.VaultEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode vault: %w", err)
	}
	return entries, nil
}

// SaveEntries seals the entry list and replaces the vault file.
func (s *FileStore) SaveEntries(passphrase string, entries []domain.VaultEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	blob, err := crypto.SealEnvelope(passphrase, raw)
	crypto.Wipe(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), blob, 0o600)
}
