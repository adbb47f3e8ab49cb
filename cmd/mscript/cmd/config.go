package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as TOML",
		Long: `Prints the settings after defaults, the config file and MSCRIPT_*
environment overrides have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.settings.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", a.settings.Source)
			}
			return a.settings.WriteTOML(cmd.OutOrStdout())
		},
	})
	return cmd
}
