package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage the encrypted password vault",
	}
	cmd.AddCommand(vaultSaveCmd(), vaultListCmd(), vaultShowCmd(), vaultRemoveCmd())
	return cmd
}

// vaultPassphrase returns the -p flag value, or prompts without echo when the
// flag is empty and stdin is a terminal.
func vaultPassphrase() (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("passphrase required (-p)")
	}
	fmt.Fprint(os.Stderr, "Vault passphrase: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty passphrase")
	}
	return string(raw), nil
}

func vaultSaveCmd() *cobra.Command {
	var (
		password string
		notes    string
		profile  string
	)

	cmd := &cobra.Command{
		Use:   "save [label]",
		Short: "Store a password under a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := vaultPassphrase()
			if err != nil {
				return err
			}

			// No --password means generate one and show it once.
			generated := false
			if password == "" {
				policy, err := appCtx.Generate.Policy(profile)
				if err != nil {
					return err
				}
				password, err = appCtx.Generate.Password(policy)
				if err != nil {
					return err
				}
				generated = true
			}

			entry, err := appCtx.Vault.Save(pass, args[0], password, notes)
			if err != nil {
				return err
			}

			if generated {
				fmt.Printf("Generated and saved %q: %s\n", entry.Label, password)
			} else {
				fmt.Printf("Saved %q\n", entry.Label)
			}
			fmt.Printf("Strength: %s\n", entry.Strength)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password to store (default: generate one)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&profile, "profile", "", "generation profile for a generated password")
	return cmd
}

func vaultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored entries (no passwords shown)",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := vaultPassphrase()
			if err != nil {
				return err
			}
			entries, err := appCtx.Vault.List(pass)
			if err != nil {
				return err
			}
			for _, e := range entries {
				created := time.Unix(e.CreatedUTC, 0).UTC().Format("2006-01-02")
				fmt.Printf("%-20s %-10s %s\n", e.Label, e.Strength, created)
			}
			return nil
		},
	}
}

func vaultShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [label]",
		Short: "Print a stored entry, password included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := vaultPassphrase()
			if err != nil {
				return err
			}
			e, err := appCtx.Vault.Show(pass, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Label: %s\n", e.Label)
			fmt.Printf("Password: %s\n", e.Password)
			if e.Notes != "" {
				fmt.Printf("Notes: %s\n", e.Notes)
			}
			fmt.Printf("Strength: %s\n", e.Strength)
			fmt.Printf("Created: %s\n", time.Unix(e.CreatedUTC, 0).UTC().Format(time.RFC3339))
			return nil
		},
	}
}

func vaultRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [label]",
		Short: "Remove a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := vaultPassphrase()
			if err != nil {
				return err
			}
			if err := appCtx.Vault.Remove(pass, args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %q\n", args[0])
			return nil
		},
	}
}
