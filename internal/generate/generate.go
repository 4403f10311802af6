// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate drives a generation run: pick a random document type
// and container format, render, wrap, write, and record each file, then
// persist the manifest. Runs are strictly sequential; record order in the
// manifest matches creation order.
package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/dlpsmith/internal/document"
	"github.com/pdiddy/dlpsmith/internal/fake"
	"github.com/pdiddy/dlpsmith/internal/format"
	"github.com/pdiddy/dlpsmith/internal/tracking"
	"github.com/pdiddy/dlpsmith/pkg/types"
)

// DefaultFileCount is used when the caller does not request a count.
const DefaultFileCount = 150

// Result summarizes one generation run.
type Result struct {
	// Created is the number of files written and tracked.
	Created int

	// Failed is the number of iterations skipped after a write error.
	Failed int

	// TotalBytes is the combined size of all created files.
	TotalBytes int64

	// ByType counts created files per document type.
	ByType map[types.DocumentType]int

	// ByFormat counts created files per container format.
	ByFormat map[types.ContainerFormat]int

	// ManifestPath is where the manifest was written.
	ManifestPath string

	// Duration is the elapsed wall time of the run.
	Duration time.Duration
}

// HasFailures reports whether any iterations failed.
func (r Result) HasFailures() bool { return r.Failed > 0 }

// Total returns the number of iterations attempted.
func (r Result) Total() int { return r.Created + r.Failed }

// Run generates cfg.FileCount files into cfg.OutputDir, tracking each in
// a manifest written at the end. A per-iteration failure is logged to w
// and skipped; the run never aborts on one bad file, so the tracked
// count may end up below the requested count.
func Run(f *fake.Faker, cfg types.GenerationConfig, w io.Writer) (Result, error) {
	start := time.Now()

	count := cfg.FileCount
	if count < 0 {
		return Result{}, fmt.Errorf("file count must be >= 0, got %d", count)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	result := Result{
		ByType:   make(map[types.DocumentType]int),
		ByFormat: make(map[types.ContainerFormat]int),
	}

	records := make([]types.FileRecord, 0, count)
	for i := 0; i < count; i++ {
		record, err := generateOne(f, cfg.OutputDir)
		if err != nil {
			fmt.Fprintf(w, "failed:  iteration %d (%v)\n", i+1, err)
			result.Failed++
			continue
		}
		records = append(records, record)
		result.Created++
		result.TotalBytes += record.SizeBytes
		result.ByType[record.DocumentType]++
		result.ByFormat[record.ContainerFormat]++
		fmt.Fprintf(w, "created: %s (%s, %d bytes)\n",
			filepath.Base(record.Path), record.DocumentType, record.SizeBytes)
	}

	manifestPath := cfg.TrackingFile()
	store := tracking.NewStore(cfg.OutputDir, records, time.Now().UTC())
	if err := tracking.Write(store, manifestPath); err != nil {
		return result, fmt.Errorf("writing manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	result.Duration = time.Since(start)

	fmt.Fprintf(w, "\nRun summary: %d created, %d failed (total: %d), %d bytes in %s\n",
		result.Created, result.Failed, result.Total(), result.TotalBytes,
		result.Duration.Round(time.Millisecond))
	return result, nil
}

// generateOne renders, wraps, and writes a single file, returning its
// record. Document type and container format are picked uniformly at
// random from the closed enumerations.
func generateOne(f *fake.Faker, outputDir string) (types.FileRecord, error) {
	doc := types.DocumentTypes[f.Intn(len(types.DocumentTypes))]
	cf := types.ContainerFormats[f.Intn(len(types.ContainerFormats))]
	now := time.Now()

	body, err := document.Render(doc, f, now)
	if err != nil {
		return types.FileRecord{}, err
	}

	data, err := format.Wrap(cf, body, doc, now)
	if err != nil {
		return types.FileRecord{}, err
	}

	// Re-pick the suffix on collision; two files in the same second can
	// otherwise land on the same name.
	var name, path string
	for {
		name = fmt.Sprintf("%s_%s_%04d.%s",
			doc, now.Format("20060102_150405"), f.Intn(10000), cf.Extension())
		path = filepath.Join(outputDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return types.FileRecord{}, fmt.Errorf("writing %s: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return types.FileRecord{}, fmt.Errorf("stat %s: %w", name, err)
	}

	return types.FileRecord{
		Path:            path,
		DocumentType:    doc,
		ContainerFormat: cf,
		CreatedAt:       now,
		SizeBytes:       info.Size(),
	}, nil
}
