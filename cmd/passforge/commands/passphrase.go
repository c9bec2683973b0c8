package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func passphraseCmd() *cobra.Command {
	var (
		words       int
		separator   string
		capitalize  bool
		appendDigit bool
	)

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a wordlist passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := appCtx.Config.WordlistPolicy()

			flags := cmd.Flags()
			if flags.Changed("words") {
				policy.Words = words
			}
			if flags.Changed("separator") {
				policy.Separator = separator
			}
			if flags.Changed("capitalize") {
				policy.Capitalize = capitalize
			}
			if flags.Changed("digit") {
				policy.AppendDigit = appendDigit
			}

			pp, err := appCtx.Generate.Passphrase(policy)
			if err != nil {
				return err
			}
			fmt.Println(pp)
			return nil
		},
	}

	cmd.Flags().IntVarP(&words, "words", "w", 6, "number of words")
	cmd.Flags().StringVar(&separator, "separator", "-", "word separator")
	cmd.Flags().BoolVar(&capitalize, "capitalize", false, "capitalize each word")
	cmd.Flags().BoolVar(&appendDigit, "digit", false, "append a random digit to the last word")
	return cmd
}
