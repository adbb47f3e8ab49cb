package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Maintain the parse cache",
		Long: `Shows, prunes or clears the parse cache used by "check --cache".
The cache location is set with cache.path.`,
	}
	cmd.AddCommand(newCacheStatsCmd(a), newCachePruneCmd(a), newCacheClearCmd(a))
	return cmd
}

func newCacheStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show parse cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openCache()
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := s.Stats(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.catalogue.T("cli.cache_stats", map[string]interface{}{
				"Entries": stats.Entries,
				"Hits":    stats.Hits,
				"Bytes":   stats.SourceBytes,
				"Path":    stats.Path,
			}))
			if stats.Entries > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Muted(fmt.Sprintf("%s .. %s",
					stats.Oldest.Format(time.RFC3339), stats.Newest.Format(time.RFC3339))))
			}
			return nil
		},
	}
}

func newCachePruneCmd(a *app) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old parse cache entries",
		Long: `Removes entries stored longer ago than --older-than, which defaults to
cache.max_age.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("older-than") {
				olderThan = a.settings.Cache.MaxAge.Duration
			}

			s, err := a.openCache()
			if err != nil {
				return err
			}
			defer s.Close()

			deleted, err := s.Prune(context.Background(), olderThan)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.catalogue.Plural("cli.cache_pruned", int(deleted), nil))
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "maximum entry age (default: cache.max_age)")
	return cmd
}

func newCacheClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all parse cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openCache()
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.catalogue.T("cli.cache_cleared"))
			return nil
		},
	}
}
