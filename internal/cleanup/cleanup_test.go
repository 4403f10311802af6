// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleanup

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/dlpsmith/internal/tracking"
	"github.com/pdiddy/dlpsmith/pkg/types"
)

// writeManifest creates real files on disk for the first `existing`
// records and a manifest listing all `total` records.
func writeManifest(t *testing.T, dir string, existing, total int) string {
	t.Helper()

	records := make([]types.FileRecord, 0, total)
	for i := 0; i < total; i++ {
		path := filepath.Join(dir, "file"+string(rune('a'+i))+".txt")
		if i < existing {
			if err := os.WriteFile(path, []byte("synthetic content"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		records = append(records, types.FileRecord{
			Path:            path,
			DocumentType:    types.DocEmployee,
			ContainerFormat: types.FormatTxt,
			CreatedAt:       time.Now(),
			SizeBytes:       17,
		})
	}

	manifestPath := filepath.Join(dir, types.DefaultTrackingFilename)
	store := tracking.NewStore(dir, records, time.Now().UTC())
	if err := tracking.Write(store, manifestPath); err != nil {
		t.Fatal(err)
	}
	return manifestPath
}

func TestRunRemovesTrackedFiles(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, 5, 5)

	var log bytes.Buffer
	result, err := Run(manifestPath, &log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Removed != 5 || result.NotFound != 0 || result.Errors != 0 {
		t.Errorf("result = %+v, want 5 removed", result)
	}

	// All files and the manifest itself must be gone.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not empty after cleanup: %v", entries)
	}
	if !strings.Contains(log.String(), "Cleanup summary:") {
		t.Error("log missing cleanup summary line")
	}
}

func TestRunCountsMissingFilesAsNotFound(t *testing.T) {
	// Manifest lists 5 files, 2 of which are already gone from disk.
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, 3, 5)

	var log bytes.Buffer
	result, err := Run(manifestPath, &log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Removed != 3 {
		t.Errorf("removed = %d, want 3", result.Removed)
	}
	if result.NotFound != 2 {
		t.Errorf("notFound = %d, want 2", result.NotFound)
	}
	if result.Errors != 0 {
		t.Errorf("errors = %d, want 0", result.Errors)
	}
	if result.HasFailures() {
		t.Error("missing files are not failures")
	}

	if _, err := os.Stat(manifestPath); !os.IsNotExist(err) {
		t.Error("manifest should be deleted after cleanup")
	}
}

func TestRunMissingManifest(t *testing.T) {
	manifestPath := filepath.Join(t.TempDir(), types.DefaultTrackingFilename)

	result, err := Run(manifestPath, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	if !strings.Contains(err.Error(), "nothing to clean") {
		t.Errorf("unexpected error: %v", err)
	}
	if result.Total() != 0 {
		t.Errorf("no records should be processed, got %+v", result)
	}
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, 2, 2)

	if _, err := Run(manifestPath, &bytes.Buffer{}); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	// Second run has no manifest: reports failure, removes nothing,
	// does not panic.
	result, err := Run(manifestPath, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error on second run")
	}
	if result.Removed != 0 || result.Errors != 0 {
		t.Errorf("second run result = %+v, want zeros", result)
	}
}

func TestRunContinuesPastUndeletableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission-based deletion failures do not apply to root")
	}

	dir := t.TempDir()

	// One deletable file plus one inside a read-only subdirectory.
	lockedDir := filepath.Join(dir, "locked")
	if err := os.Mkdir(lockedDir, 0o755); err != nil {
		t.Fatal(err)
	}
	lockedFile := filepath.Join(lockedDir, "stuck.txt")
	if err := os.WriteFile(lockedFile, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	freeFile := filepath.Join(dir, "free.txt")
	if err := os.WriteFile(freeFile, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(lockedDir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(lockedDir, 0o755) })

	records := []types.FileRecord{
		{Path: lockedFile, DocumentType: types.DocEmployee, ContainerFormat: types.FormatTxt, CreatedAt: time.Now(), SizeBytes: 1},
		{Path: freeFile, DocumentType: types.DocEmployee, ContainerFormat: types.FormatTxt, CreatedAt: time.Now(), SizeBytes: 1},
	}
	manifestPath := filepath.Join(dir, types.DefaultTrackingFilename)
	if err := tracking.Write(tracking.NewStore(dir, records, time.Now().UTC()), manifestPath); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	result, err := Run(manifestPath, &log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Errors != 1 {
		t.Errorf("errors = %d, want 1", result.Errors)
	}
	if result.Removed != 1 {
		t.Errorf("removed = %d, want 1 (cleanup must continue past failures)", result.Removed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}

	// The manifest is deleted even when some files could not be.
	if _, err := os.Stat(manifestPath); !os.IsNotExist(err) {
		t.Error("manifest should be deleted despite per-file errors")
	}
}
