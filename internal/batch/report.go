// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docmark/pkg/types"
)

// Report is the on-disk YAML record of one batch run: a summary plus the
// per-file log. It is an output artifact only; the orchestrator never
// reads it back.
type Report struct {
	Root      string              `yaml:"root"`
	Timestamp time.Time           `yaml:"timestamp"`
	Converted int                 `yaml:"converted"`
	Failed    int                 `yaml:"failed"`
	Skipped   int                 `yaml:"skipped"`
	Files     []types.FileOutcome `yaml:"files"`
}

// WriteReport saves the batch outcome to a YAML file.
func WriteReport(path, root string, result types.BatchResult, outcomes []types.FileOutcome) error {
	report := Report{
		Root:      root,
		Timestamp: time.Now().UTC(),
		Converted: result.Converted,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
		Files:     outcomes,
	}
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
