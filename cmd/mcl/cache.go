package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the parsed-document cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove every cached value tree",
		Args:  cobra.NoArgs,
		RunE:  runCacheClean,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "dir",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE:  runCacheDir,
	})
	return cmd
}

func openCache(cmd *cobra.Command) (*settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	s.cfg.Cache.Enabled = true
	return s, nil
}

func runCacheClean(cmd *cobra.Command, _ []string) error {
	s, err := openCache(cmd)
	if err != nil {
		return err
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}
	if err := opts.Cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clean cache: %w", err)
	}
	if !s.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", opts.Cache.Dir())
	}
	return nil
}

func runCacheDir(cmd *cobra.Command, _ []string) error {
	s, err := openCache(cmd)
	if err != nil {
		return err
	}
	opts, err := s.driverOptions()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), opts.Cache.Dir())
	return nil
}
