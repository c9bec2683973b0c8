package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishnc/passforge/internal/domain"
)

func generateCmd() *cobra.Command {
	var (
		length           int
		count            int
		noLowercase      bool
		noUppercase      bool
		noDigits         bool
		includeSymbols   bool
		excludeAmbiguous bool
		noMinEach        bool
		profile          string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more secure passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := appCtx.Generate.Policy(profile)
			if err != nil {
				return err
			}

			// Flags override the profile only when the user set them.
			flags := cmd.Flags()
			if flags.Changed("length") {
				policy.Length = length
			}
			if flags.Changed("no-lowercase") {
				policy.Lowercase = !noLowercase
			}
			if flags.Changed("no-uppercase") {
				policy.Uppercase = !noUppercase
			}
			if flags.Changed("no-digits") {
				policy.Digits = !noDigits
			}
			if flags.Changed("include-symbols") {
				policy.Symbols = includeSymbols
			}
			if flags.Changed("exclude-ambiguous") {
				policy.ExcludeAmbiguous = excludeAmbiguous
			}
			if flags.Changed("no-min-each") {
				policy.RequireEachClass = !noMinEach
			}

			passwords, err := appCtx.Generate.Passwords(count, policy)
			if err != nil {
				return err
			}

			if count == 1 {
				fmt.Println(passwords[0])
				return nil
			}
			for i, pw := range passwords {
				fmt.Printf("%2d: %s\n", i+1, pw)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", domain.DefaultPolicy().Length, "password length")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&noLowercase, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noUppercase, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVarP(&includeSymbols, "include-symbols", "s", false, "include special symbols")
	cmd.Flags().BoolVarP(&excludeAmbiguous, "exclude-ambiguous", "a", false,
		"exclude ambiguous characters (0, O, 1, l, I, |, `, ', \")")
	cmd.Flags().BoolVar(&noMinEach, "no-min-each", false, "don't ensure minimum of each character type")
	cmd.Flags().StringVar(&profile, "profile", "", "generation profile from config")
	return cmd
}
