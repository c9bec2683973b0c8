package app

import (
	"github.com/ishnc/passforge/internal/domain"
	"github.com/ishnc/passforge/internal/generator"
	generatesvc "github.com/ishnc/passforge/internal/services/generate"
	vaultsvc "github.com/ishnc/passforge/internal/services/vault"
	"github.com/ishnc/passforge/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Config   Config
	Generate *generatesvc.Service
	Vault    domain.VaultService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	vaultStore := store.NewFileStore(cfg.Home)

	return &Wire{
		Config:   cfg,
		Generate: generatesvc.New(generator.New(), cfg.Profiles, cfg.DefaultProfile),
		Vault:    vaultsvc.New(vaultStore),
	}
}
