package vault

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ishnc/passforge/internal/domain"
	"github.com/ishnc/passforge/internal/strength"
)

// Service implements domain.VaultService.
type Service struct {
	store domain.VaultStore
}

func New(store domain.VaultStore) *Service { return &Service{store: store} }

// Save adds or replaces the entry with the given label.
func (s *Service) Save(passphrase, label, password, notes string) (domain.VaultEntry, error) {
	if label == "" {
		return domain.VaultEntry{}, errors.New("label required")
	}
	if password == "" {
		return domain.VaultEntry{}, errors.New("password required")
	}

	entries, err := s.store.LoadEntries(passphrase)
	if err != nil && !errors.Is(err, domain.ErrNoVault) {
		return domain.VaultEntry{}, err
	}

	entry := domain.VaultEntry{
		ID:         uuid.NewString(),
		Label:      label,
		Password:   password,
		Notes:      notes,
		Strength:   strength.Analyze(password).Label,
		CreatedUTC: time.Now().UTC().Unix(),
	}

	replaced := false
	for i := range entries {
		if entries[i].Label == label {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	if err := s.store.SaveEntries(passphrase, entries); err != nil {
		return domain.VaultEntry{}, err
	}
	return entry, nil
}

// List returns all entries sorted by label, passwords cleared.
func (s *Service) List(passphrase string) ([]domain.VaultEntry, error) {
	entries, err := s.store.LoadEntries(passphrase)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Password = ""
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })
	return entries, nil
}

// Show returns the full entry for a label.
func (s *Service) Show(passphrase, label string) (domain.VaultEntry, error) {
	entries, err := s.store.LoadEntries(passphrase)
	if err != nil {
		return domain.VaultEntry{}, err
	}
	for _, e := range entries {
		if e.Label == label {
			return e, nil
		}
	}
	return domain.VaultEntry{}, domain.ErrEntryNotFound
}

// Remove deletes the entry for a label.
func (s *Service) Remove(passphrase, label string) error {
	entries, err := s.store.LoadEntries(passphrase)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].Label == label {
			entries = append(entries[:i], entries[i+1:]...)
			return s.store.SaveEntries(passphrase, entries)
		}
	}
	return domain.ErrEntryNotFound
}
