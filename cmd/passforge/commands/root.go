package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ishnc/passforge/internal/app"
)

var (
	home       string
	passphrase string
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "passforge",
		Short: "Secure password and passphrase generator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".passforge")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			appCtx = app.NewWire(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.passforge)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the vault")

	root.AddCommand(generateCmd(), passphraseCmd(), analyzeCmd(), vaultCmd(), profilesCmd())
	return root.Execute()
}
