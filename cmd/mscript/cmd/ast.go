package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mserror "github.com/msto63/mscript/foundation/core/error"
)

func newASTCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ast <file|->",
		Short: "Show the syntax tree of a source file",
		Long: `Parses a source file and prints its syntax tree. With --json the tree
is written as JSON with kind, text, position and children of every node.

Examples:
  mscript ast script.m
  mscript ast --json script.m
  echo "if a, b, end" | mscript ast -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAST(cmd, args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the tree as JSON")
	return cmd
}

func (a *app) runAST(cmd *cobra.Command, name string, asJSON bool) error {
	file, src, err := a.source(cmd, name)
	if err != nil {
		return err
	}

	root, err := a.engine.Parse(src)
	if err != nil {
		a.report(cmd, file, src, err)
		return errReported
	}

	if !asJSON {
		io.WriteString(cmd.OutOrStdout(), a.renderer.Tree(root))
		return nil
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return mserror.Wrap(err, "cannot encode syntax tree").
			WithCode(mserror.CodeInternal).
			WithOperation("cli.ast")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
