// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracking persists and loads the generation manifest: the JSON
// record of every file a run created. Cleanup depends on this manifest;
// without it no files are touched.
package tracking

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/dlpsmith/pkg/types"
)

// NewStore assembles a manifest from the records of one run. Totals are
// derived from the records, so the count and size invariants hold by
// construction.
func NewStore(outputDir string, records []types.FileRecord, generatedAt time.Time) *types.TrackingStore {
	var totalBytes int64
	for _, r := range records {
		totalBytes += r.SizeBytes
	}
	if records == nil {
		records = []types.FileRecord{}
	}
	return &types.TrackingStore{
		GeneratedAt:    generatedAt,
		OutputPath:     outputDir,
		TotalFileCount: len(records),
		TotalSizeBytes: totalBytes,
		Files:          records,
	}
}

// Write persists the manifest as indented JSON. The write goes to a
// temporary file first and is renamed into place, so a crash cannot
// leave a half-written manifest behind.
func Write(store *types.TrackingStore, path string) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tracking-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing manifest: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming manifest: %w", err)
	}
	return nil
}

// Load reads a manifest from path. A missing file surfaces as an
// os.IsNotExist error so callers can distinguish "no manifest" from a
// corrupt one.
func Load(path string) (*types.TrackingStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var store types.TrackingStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &store, nil
}

// Summary holds per-type and per-format counts for a manifest.
type Summary struct {
	ByType   map[types.DocumentType]int
	ByFormat map[types.ContainerFormat]int
}

// Summarize tallies a manifest's records by document type and container
// format.
func Summarize(store *types.TrackingStore) Summary {
	s := Summary{
		ByType:   make(map[types.DocumentType]int),
		ByFormat: make(map[types.ContainerFormat]int),
	}
	for _, r := range store.Files {
		s.ByType[r.DocumentType]++
		s.ByFormat[r.ContainerFormat]++
	}
	return s
}
