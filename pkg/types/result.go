// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionResult holds the outcome of converting a single document.
type ConversionResult struct {
	SourcePath string
	OutputPath string
	Markdown   string
}

// FileStatus classifies the outcome of one file in a batch run.
type FileStatus string

const (
	StatusConverted FileStatus = "converted"
	StatusFailed    FileStatus = "failed"
	StatusSkipped   FileStatus = "skipped"
)

// FileOutcome is one entry in the per-file batch log.
type FileOutcome struct {
	Source  string     `yaml:"source"`
	Output  string     `yaml:"output,omitempty"`
	Status  FileStatus `yaml:"status"`
	Error   string     `yaml:"error,omitempty"`
	Warning string     `yaml:"warning,omitempty"`
}

// BatchResult holds the aggregate counts of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	Skipped   int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed + r.Skipped
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}
