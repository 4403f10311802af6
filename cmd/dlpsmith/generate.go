// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dlpsmith/internal/fake"
	"github.com/pdiddy/dlpsmith/internal/generate"
	"github.com/pdiddy/dlpsmith/internal/history"
	"github.com/pdiddy/dlpsmith/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic sensitive-data files and track them",
	Long: `Generate writes N files of randomly paired document types and container
formats into the output directory, then records every created file in a
JSON tracking manifest. Re-running overwrites any manifest at the same
path. Individual write failures are skipped, not fatal; the tracked count
may come in under the requested count.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := generationConfig(cmd)

	vocab := fake.DefaultVocabulary()
	if cfg.VocabPath != "" {
		v, err := fake.LoadVocabulary(cfg.VocabPath)
		if err != nil {
			return err
		}
		vocab = v
	}

	var faker *fake.Faker
	if cfg.Seed != 0 {
		faker = fake.NewWithVocab(cfg.Seed, vocab)
	} else {
		faker = fake.NewRandom(vocab)
	}

	started := time.Now()
	result, err := generate.Run(faker, cfg, os.Stdout)
	if err != nil {
		return err
	}

	printBreakdown(result)
	recordHistory(cmd, history.Run{
		Mode:       history.ModeGenerate,
		StartedAt:  started,
		Duration:   result.Duration,
		FileCount:  result.Created,
		TotalBytes: result.TotalBytes,
		OutputPath: cfg.OutputDir,
	})

	if result.HasFailures() {
		fmt.Fprintf(os.Stderr, "warning: %d file(s) failed generation\n", result.Failed)
	}
	return nil
}

// printBreakdown prints per-type and per-format counts in stable order.
func printBreakdown(result generate.Result) {
	if result.Created == 0 {
		return
	}

	fmt.Println("\nBy document type:")
	typeKeys := make([]string, 0, len(result.ByType))
	for k := range result.ByType {
		typeKeys = append(typeKeys, string(k))
	}
	sort.Strings(typeKeys)
	for _, k := range typeKeys {
		fmt.Printf("  %-20s %d\n", k, result.ByType[types.DocumentType(k)])
	}

	fmt.Println("\nBy container format:")
	formatKeys := make([]string, 0, len(result.ByFormat))
	for k := range result.ByFormat {
		formatKeys = append(formatKeys, string(k))
	}
	sort.Strings(formatKeys)
	for _, k := range formatKeys {
		fmt.Printf("  %-20s %d\n", k, result.ByFormat[types.ContainerFormat(k)])
	}

	fmt.Printf("\nManifest: %s\n", result.ManifestPath)
}

// recordHistory appends a run to the SQLite ledger. Ledger failures are
// warnings only; the run itself already succeeded.
func recordHistory(cmd *cobra.Command, run history.Run) {
	dbPath := historyDBPath(cmd)
	if dbPath == "" {
		return
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history ledger unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history record failed: %v\n", err)
	}
}

func generationConfig(cmd *cobra.Command) types.GenerationConfig {
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	if outputDir == "" {
		outputDir = "dlp-test-files"
	}

	count, _ := cmd.Flags().GetInt("count")
	if !cmd.Flags().Changed("count") && viper.IsSet("file_count") {
		count = viper.GetInt("file_count")
	}

	trackingPath, _ := cmd.Flags().GetString("tracking-file")
	vocabPath, _ := cmd.Flags().GetString("vocab")
	if vocabPath == "" {
		vocabPath = viper.GetString("vocab_path")
	}
	seed, _ := cmd.Flags().GetInt64("seed")

	return types.GenerationConfig{
		OutputDir:    outputDir,
		FileCount:    count,
		TrackingPath: trackingPath,
		VocabPath:    vocabPath,
		Seed:         seed,
	}
}

// historyDBPath resolves the ledger path from the flag, config, or
// default. An explicit "off" disables the ledger.
func historyDBPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("history-db")
	if path == "" {
		path = viper.GetString("history_db")
	}
	if path == "" {
		path = history.DefaultDBFile
	}
	if path == "off" {
		return ""
	}
	return path
}

func init() {
	generateCmd.Flags().String("output", "", "output directory for generated files (default dlp-test-files)")
	generateCmd.Flags().Int("count", generate.DefaultFileCount, "number of files to generate")
	generateCmd.Flags().String("tracking-file", "", "manifest path (default <output>/dlp-test-tracking.json)")
	generateCmd.Flags().String("vocab", "", "YAML file overriding the generator word lists")
	generateCmd.Flags().Int64("seed", 0, "random seed for reproducible output (0 = random)")
	generateCmd.Flags().String("history-db", "", "run-history SQLite database ('off' to disable)")

	rootCmd.AddCommand(generateCmd)
}
