// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dlpsmith/internal/tracking"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize an existing tracking manifest without touching files",
	Long: `Inspect loads the tracking manifest from a previous generate run and
prints counts by document type and container format plus totals. It
reads only the manifest; no generated file is opened or modified.`,
	RunE: runInspect,
}

// manifestSummary is the serialized form for --format json/yaml output.
type manifestSummary struct {
	GeneratedAt    string         `json:"generated_at" yaml:"generated_at"`
	OutputPath     string         `json:"output_path" yaml:"output_path"`
	TotalFileCount int            `json:"total_file_count" yaml:"total_file_count"`
	TotalSizeBytes int64          `json:"total_size_bytes" yaml:"total_size_bytes"`
	ByType         map[string]int `json:"by_type" yaml:"by_type"`
	ByFormat       map[string]int `json:"by_format" yaml:"by_format"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := cleanupConfig(cmd)
	outputFormat, _ := cmd.Flags().GetString("format")

	store, err := tracking.Load(cfg.TrackingFile())
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no tracking manifest at %s", cfg.TrackingFile())
		}
		return err
	}

	summary := tracking.Summarize(store)
	out := manifestSummary{
		GeneratedAt:    store.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		OutputPath:     store.OutputPath,
		TotalFileCount: store.TotalFileCount,
		TotalSizeBytes: store.TotalSizeBytes,
		ByType:         make(map[string]int, len(summary.ByType)),
		ByFormat:       make(map[string]int, len(summary.ByFormat)),
	}
	for k, v := range summary.ByType {
		out.ByType[string(k)] = v
	}
	for k, v := range summary.ByFormat {
		out.ByFormat[string(k)] = v
	}

	switch outputFormat {
	case "text", "":
		printTextSummary(out)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", outputFormat)
	}
}

func printTextSummary(s manifestSummary) {
	fmt.Printf("Manifest for %s\n", s.OutputPath)
	fmt.Printf("Generated:   %s\n", s.GeneratedAt)
	fmt.Printf("Files:       %d\n", s.TotalFileCount)
	fmt.Printf("Total size:  %d bytes\n", s.TotalSizeBytes)

	fmt.Println("\nBy document type:")
	for _, k := range sortedKeys(s.ByType) {
		fmt.Printf("  %-20s %d\n", k, s.ByType[k])
	}
	fmt.Println("\nBy container format:")
	for _, k := range sortedKeys(s.ByFormat) {
		fmt.Printf("  %-20s %d\n", k, s.ByFormat[k])
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	inspectCmd.Flags().String("output", "", "output directory of a previous generate run (default dlp-test-files)")
	inspectCmd.Flags().String("tracking-file", "", "manifest path (default <output>/dlp-test-tracking.json)")
	inspectCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(inspectCmd)
}
