package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	mslog "github.com/msto63/mscript/foundation/core/log"
	"github.com/msto63/mscript/internal/store"
)

func newCheckCmd(a *app) *cobra.Command {
	var useCache bool

	cmd := &cobra.Command{
		Use:   "check <file|->...",
		Short: "Check the syntax of one or more files",
		Long: `Parses every file and reports the first structural error of each as
file:line:column. The exit status is 1 when any file failed.

With --cache (or cache.enabled in the settings) trees of unchanged
sources are taken from the parse cache.

Examples:
  mscript check *.m
  mscript check --cache lib/*.m`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, useCache || a.settings.Cache.Enabled)
		},
	}
	cmd.Flags().BoolVar(&useCache, "cache", false, "use the parse cache")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, names []string, useCache bool) error {
	ctx := context.Background()
	timer := a.logger.StartTimer("check").WithField("files", len(names))

	var cache store.CacheStore
	if useCache {
		s, err := a.openCache()
		if err != nil {
			a.logger.WarnWithErr("continuing without parse cache", err)
		} else {
			defer s.Close()
			cache = s
		}
	}

	failed := 0
	for _, name := range names {
		if !a.checkOne(ctx, cmd, cache, name) {
			failed++
		}
	}
	timer.Stop()

	fmt.Fprintln(cmd.OutOrStdout(), a.catalogue.Plural("cli.check_summary", len(names), map[string]interface{}{
		"Failed": failed,
	}))
	if failed > 0 {
		return errReported
	}
	return nil
}

// checkOne parses a single file and reports the outcome
func (a *app) checkOne(ctx context.Context, cmd *cobra.Command, cache store.CacheStore, name string) bool {
	file, src, err := a.source(cmd, name)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), a.renderer.Fail(a.catalogue.Localize(err)))
		return false
	}
	data := map[string]interface{}{"File": file}

	if cache != nil {
		if _, ok, err := cache.Get(ctx, src); err != nil {
			a.logger.WarnWithErr("parse cache lookup failed", err, mslog.Fields{"file": file})
		} else if ok {
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.OK(a.catalogue.T("cli.check_cached", data)))
			return true
		}
	}

	root, err := a.engine.Parse(src)
	if err != nil {
		a.report(cmd, file, src, err)
		return false
	}

	if cache != nil {
		if err := cache.Put(ctx, src, root); err != nil {
			a.logger.WarnWithErr("parse cache update failed", err, mslog.Fields{"file": file})
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.renderer.OK(a.catalogue.T("cli.check_ok", data)))
	return true
}
