package types

import "path/filepath"

// GenerationConfig holds settings for a generation run.
type GenerationConfig struct {
	// OutputDir is the directory generated files are written into.
	// Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// FileCount is the requested number of files (default 150).
	FileCount int `json:"file_count" yaml:"file_count"`

	// TrackingPath overrides the manifest location. Empty means
	// OutputDir/dlp-test-tracking.json.
	TrackingPath string `json:"tracking_path,omitempty" yaml:"tracking_path,omitempty"`

	// VocabPath is an optional YAML file replacing the built-in
	// generator vocabularies.
	VocabPath string `json:"vocab_path,omitempty" yaml:"vocab_path,omitempty"`

	// Seed seeds the random source when nonzero. Zero means an
	// independently random run.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// TrackingFile resolves the manifest path for this configuration.
func (c GenerationConfig) TrackingFile() string {
	if c.TrackingPath != "" {
		return c.TrackingPath
	}
	return filepath.Join(c.OutputDir, DefaultTrackingFilename)
}

// CleanupConfig holds settings for a cleanup run.
type CleanupConfig struct {
	// OutputDir is the directory a prior generation run wrote into.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// TrackingPath overrides the manifest location. Empty means
	// OutputDir/dlp-test-tracking.json.
	TrackingPath string `json:"tracking_path,omitempty" yaml:"tracking_path,omitempty"`
}

// TrackingFile resolves the manifest path for this configuration.
func (c CleanupConfig) TrackingFile() string {
	if c.TrackingPath != "" {
		return c.TrackingPath
	}
	return filepath.Join(c.OutputDir, DefaultTrackingFilename)
}

// HistoryConfig holds settings for the run-history ledger.
type HistoryConfig struct {
	// DBPath is the SQLite database file (default dlpsmith-history.db).
	DBPath string `json:"db_path" yaml:"db_path"`
}
