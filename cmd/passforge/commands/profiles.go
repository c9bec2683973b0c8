package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List configured generation profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := appCtx.Generate.ProfileNames()
			if len(names) == 0 {
				fmt.Println("No profiles configured; built-in defaults apply.")
				return nil
			}
			def := appCtx.Generate.DefaultProfile()
			for _, name := range names {
				p := appCtx.Config.Profiles[name]
				marker := " "
				if name == def {
					marker = "*"
				}
				fmt.Printf("%s %-12s length=%d lower=%t upper=%t digits=%t symbols=%t\n",
					marker, name, p.Length, p.Lowercase, p.Uppercase, p.Digits, p.Symbols)
			}
			return nil
		},
	}
}
