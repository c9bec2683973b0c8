package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishnc/passforge/internal/strength"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [password]",
		Short: "Report the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := strength.Analyze(args[0])

			fmt.Printf("Password Analysis for: %s\n", args[0])
			fmt.Printf("Length: %d\n", r.Length)
			fmt.Printf("Contains lowercase: %t\n", r.HasLowercase)
			fmt.Printf("Contains uppercase: %t\n", r.HasUppercase)
			fmt.Printf("Contains digits: %t\n", r.HasDigits)
			fmt.Printf("Contains symbols: %t\n", r.HasSymbols)
			fmt.Printf("Character types: %d/4\n", r.ClassCount)
			fmt.Printf("Strength: %s (%d/5)\n", r.Label, r.Score)
			fmt.Printf("Estimated entropy: %.1f bits\n", r.EntropyBits)
			return nil
		},
	}
}
