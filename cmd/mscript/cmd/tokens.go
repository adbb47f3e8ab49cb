package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Show the token table of a source file",
		Long: `Scans a source file and prints one line per token: position, kind and
text. Use "-" to read from standard input.

Examples:
  mscript tokens script.m
  echo "x = [1 -2]'" | mscript tokens -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd, args[0])
		},
	}
}

func (a *app) runTokens(cmd *cobra.Command, name string) error {
	file, src, err := a.source(cmd, name)
	if err != nil {
		return err
	}

	tokens, err := a.engine.Scan(src)
	if err != nil {
		a.report(cmd, file, src, err)
		return errReported
	}

	io.WriteString(cmd.OutOrStdout(), a.renderer.Tokens(tokens))
	return nil
}
