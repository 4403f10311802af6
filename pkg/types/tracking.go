// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultTrackingFilename is the manifest filename used when the caller
// does not supply an explicit tracking path.
const DefaultTrackingFilename = "dlp-test-tracking.json"

// FileRecord describes one generated file. Records are created once per
// successfully written file and never modified afterward.
type FileRecord struct {
	// Path is the filesystem path the file was written to.
	Path string `json:"path" yaml:"path"`

	// DocumentType identifies the template that produced the content.
	DocumentType DocumentType `json:"document_type" yaml:"document_type"`

	// ContainerFormat identifies the wrapper applied around the body.
	ContainerFormat ContainerFormat `json:"container_format" yaml:"container_format"`

	// CreatedAt is the file creation time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// SizeBytes is the on-disk size measured after the write.
	SizeBytes int64 `json:"size_bytes" yaml:"size_bytes"`
}

// TrackingStore is the persisted manifest of one generation run. It is
// written fresh on every run and consumed destructively by cleanup.
//
// Invariants: TotalFileCount == len(Files) and TotalSizeBytes equals the
// sum of the record sizes.
type TrackingStore struct {
	// GeneratedAt is when the manifest was assembled.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// OutputPath is the directory the files were written into.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// TotalFileCount is the number of tracked files.
	TotalFileCount int `json:"total_file_count" yaml:"total_file_count"`

	// TotalSizeBytes is the combined size of all tracked files.
	TotalSizeBytes int64 `json:"total_size_bytes" yaml:"total_size_bytes"`

	// Files lists the tracked records in creation order.
	Files []FileRecord `json:"files" yaml:"files"`
}
