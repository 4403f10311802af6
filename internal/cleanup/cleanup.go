// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cleanup removes the files a generation run created, driven
// entirely by the tracking manifest. Without a manifest nothing is
// deleted; the tool never infers which files are its own from directory
// contents.
package cleanup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/dlpsmith/internal/tracking"
)

// Result summarizes one cleanup run.
type Result struct {
	// Removed is the number of tracked files deleted.
	Removed int

	// NotFound counts tracked paths already absent from disk. Not an
	// error; the file may have been moved or deleted by hand.
	NotFound int

	// Errors counts tracked files whose deletion failed.
	Errors int
}

// Total returns the number of records processed.
func (r Result) Total() int { return r.Removed + r.NotFound + r.Errors }

// HasFailures reports whether any deletions failed.
func (r Result) HasFailures() bool { return r.Errors > 0 }

// Run deletes every file listed in the manifest at manifestPath, then
// deletes the manifest itself. A missing manifest is fatal to the
// cleanup; individual deletion failures are counted and skipped.
func Run(manifestPath string, w io.Writer) (Result, error) {
	store, err := tracking.Load(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("no tracking manifest at %s: nothing to clean", manifestPath)
		}
		return Result{}, err
	}

	var result Result
	for _, record := range store.Files {
		if _, err := os.Stat(record.Path); os.IsNotExist(err) {
			fmt.Fprintf(w, "not found: %s\n", filepath.Base(record.Path))
			result.NotFound++
			continue
		}
		if err := os.Remove(record.Path); err != nil {
			fmt.Fprintf(w, "error:     %s (%v)\n", filepath.Base(record.Path), err)
			result.Errors++
			continue
		}
		fmt.Fprintf(w, "removed:   %s\n", filepath.Base(record.Path))
		result.Removed++
	}

	// The manifest goes last, regardless of per-file failures. A rerun
	// without a manifest reports "nothing to clean" rather than retrying.
	if err := os.Remove(manifestPath); err != nil {
		fmt.Fprintf(w, "warning: could not remove manifest: %v\n", err)
	}

	fmt.Fprintf(w, "\nCleanup summary: %d removed, %d not found, %d errors (total: %d)\n",
		result.Removed, result.NotFound, result.Errors, result.Total())
	return result, nil
}
