// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dlpsmith/internal/cleanup"
	"github.com/pdiddy/dlpsmith/internal/history"
	"github.com/pdiddy/dlpsmith/pkg/types"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete every file listed in the tracking manifest",
	Long: `Clean reads the tracking manifest from a previous generate run, deletes
each listed file, then deletes the manifest itself. Files already missing
are counted but not treated as errors; deletion failures are counted and
skipped. Without a manifest, clean refuses to touch anything.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := cleanupConfig(cmd)

	started := time.Now()
	result, err := cleanup.Run(cfg.TrackingFile(), os.Stdout)
	if err != nil {
		return err
	}

	recordHistory(cmd, history.Run{
		Mode:       history.ModeCleanup,
		StartedAt:  started,
		Duration:   time.Since(started),
		FileCount:  result.Removed,
		OutputPath: cfg.OutputDir,
	})

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) could not be removed", result.Errors)
	}
	return nil
}

func cleanupConfig(cmd *cobra.Command) types.CleanupConfig {
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	if outputDir == "" {
		outputDir = "dlp-test-files"
	}
	trackingPath, _ := cmd.Flags().GetString("tracking-file")

	return types.CleanupConfig{
		OutputDir:    outputDir,
		TrackingPath: trackingPath,
	}
}

func init() {
	cleanCmd.Flags().String("output", "", "output directory of a previous generate run (default dlp-test-files)")
	cleanCmd.Flags().String("tracking-file", "", "manifest path (default <output>/dlp-test-tracking.json)")
	cleanCmd.Flags().String("history-db", "", "run-history SQLite database ('off' to disable)")

	rootCmd.AddCommand(cleanCmd)
}
