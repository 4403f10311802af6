// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/dlpsmith/internal/fake"
	"github.com/pdiddy/dlpsmith/internal/tracking"
	"github.com/pdiddy/dlpsmith/pkg/types"
)

func TestRunCreatesFilesAndManifest(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := types.GenerationConfig{OutputDir: outDir, FileCount: 12}

	var log bytes.Buffer
	result, err := Run(fake.New(1), cfg, &log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Created != 12 {
		t.Errorf("created = %d, want 12", result.Created)
	}
	if result.Failed != 0 {
		t.Errorf("failed = %d, want 0", result.Failed)
	}

	store, err := tracking.Load(result.ManifestPath)
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}

	if store.TotalFileCount != len(store.Files) {
		t.Errorf("totalFileCount = %d, len(files) = %d", store.TotalFileCount, len(store.Files))
	}
	if store.TotalFileCount != 12 {
		t.Errorf("totalFileCount = %d, want 12", store.TotalFileCount)
	}
	if store.OutputPath != outDir {
		t.Errorf("outputPath = %q, want %q", store.OutputPath, outDir)
	}

	// Tracked sizes must match what is actually on disk.
	var diskTotal int64
	for _, record := range store.Files {
		info, err := os.Stat(record.Path)
		if err != nil {
			t.Errorf("tracked file missing: %s", record.Path)
			continue
		}
		if info.Size() != record.SizeBytes {
			t.Errorf("%s: tracked size %d, disk size %d", record.Path, record.SizeBytes, info.Size())
		}
		diskTotal += info.Size()
	}
	if store.TotalSizeBytes != diskTotal {
		t.Errorf("totalSizeBytes = %d, disk sum = %d", store.TotalSizeBytes, diskTotal)
	}

	if !strings.Contains(log.String(), "Run summary:") {
		t.Error("log missing run summary line")
	}
}

func TestRunZeroCount(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := types.GenerationConfig{OutputDir: outDir, FileCount: 0}

	var log bytes.Buffer
	result, err := Run(fake.New(2), cfg, &log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Created != 0 || result.Failed != 0 {
		t.Errorf("created/failed = %d/%d, want 0/0", result.Created, result.Failed)
	}

	// The manifest must still exist, with zeroed totals and an empty list.
	store, err := tracking.Load(result.ManifestPath)
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}
	if store.TotalFileCount != 0 {
		t.Errorf("totalFileCount = %d, want 0", store.TotalFileCount)
	}
	if store.TotalSizeBytes != 0 {
		t.Errorf("totalSizeBytes = %d, want 0", store.TotalSizeBytes)
	}
	if store.Files == nil || len(store.Files) != 0 {
		t.Errorf("files = %v, want empty slice", store.Files)
	}
}

func TestRunNegativeCount(t *testing.T) {
	cfg := types.GenerationConfig{OutputDir: t.TempDir(), FileCount: -1}
	if _, err := Run(fake.New(3), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "deeply", "nested", "out")
	cfg := types.GenerationConfig{OutputDir: outDir, FileCount: 1}

	if _, err := Run(fake.New(4), cfg, &bytes.Buffer{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(outDir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestRunHonorsTrackingPathOverride(t *testing.T) {
	tmp := t.TempDir()
	override := filepath.Join(tmp, "custom", "manifest.json")
	cfg := types.GenerationConfig{
		OutputDir:    filepath.Join(tmp, "out"),
		FileCount:    2,
		TrackingPath: override,
	}

	result, err := Run(fake.New(5), cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ManifestPath != override {
		t.Errorf("manifestPath = %q, want %q", result.ManifestPath, override)
	}
	if _, err := os.Stat(override); err != nil {
		t.Errorf("manifest not written at override path: %v", err)
	}
}

func TestRunFilenameShape(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := types.GenerationConfig{OutputDir: outDir, FileCount: 20}

	result, err := Run(fake.New(6), cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	store, err := tracking.Load(result.ManifestPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, record := range store.Files {
		name := filepath.Base(record.Path)
		if !strings.HasPrefix(name, string(record.DocumentType)+"_") {
			t.Errorf("filename %q does not start with document type", name)
		}
		if !strings.HasSuffix(name, "."+record.ContainerFormat.Extension()) {
			t.Errorf("filename %q does not end with extension %q", name, record.ContainerFormat.Extension())
		}
	}
}

func TestRunRecordOrderMatchesCreation(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := types.GenerationConfig{OutputDir: outDir, FileCount: 8}

	result, err := Run(fake.New(7), cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	store, err := tracking.Load(result.ManifestPath)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(store.Files); i++ {
		if store.Files[i].CreatedAt.Before(store.Files[i-1].CreatedAt) {
			t.Errorf("record %d created before record %d", i, i-1)
		}
	}
}
