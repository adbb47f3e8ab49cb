package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errReported marks failures whose diagnostics were already printed
var errReported = errors.New("errors reported")

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mscript",
		Short: "MATLAB-like script front end",
		Long: `mscript scans and parses a MATLAB-like scripting language and shows
the result as a token table or a syntax tree.

Commands:
  tokens   - token table of a source file
  ast      - syntax tree of a source file
  check    - syntax check of one or more files
  explore  - interactive explorer
  cache    - parse cache maintenance
  config   - effective settings`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./mscript.toml or ~/.config/mscript/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.plain, "plain", false, "plain output without colours")
	rootCmd.PersistentFlags().StringVar(&a.locale, "locale", "", "message language, e.g. en or de (default: from the environment)")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newASTCmd(a),
		newCheckCmd(a),
		newExploreCmd(a),
		newCacheCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return rootCmd, a
}

// Execute runs the command line and prints errors that were not reported
// by the command itself
func Execute() error {
	rootCmd, a := newRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), a.localize(err))
	}
	return err
}
