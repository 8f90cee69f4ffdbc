// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch walks a directory tree, converts every supported file to
// Markdown through a bounded worker pool, and relocates successfully
// converted sources into a processed directory. One bad file never
// aborts the batch: per-file failures are logged, counted, and skipped
// over.
package batch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/pdiddy/docmark/internal/detect"
	"github.com/pdiddy/docmark/internal/extract"
	"github.com/pdiddy/docmark/internal/render"
	"github.com/pdiddy/docmark/pkg/types"
)

const (
	defaultOutputDirName    = "markdown"
	defaultProcessedDirName = "processed"
	defaultWorkers          = 4
)

// Orchestrator converts every supported file under a root directory.
type Orchestrator struct {
	Registry extract.Registry
	Config   types.ConvertConfig
}

// ConvertFile converts a single file: detect the format, extract blocks,
// render Markdown. Shared by the batch workers and single-file mode. The
// caller decides the output path and performs the write.
func ConvertFile(reg extract.Registry, path string) (types.ConversionResult, error) {
	tag, err := detect.Detect(path)
	if err != nil {
		return types.ConversionResult{}, err
	}
	ex, err := reg.Lookup(tag)
	if err != nil {
		return types.ConversionResult{}, err
	}
	blocks, err := ex.Extract(path)
	if err != nil {
		return types.ConversionResult{}, err
	}
	return types.ConversionResult{
		SourcePath: path,
		Markdown:   render.Markdown(blocks),
	}, nil
}

// Run discovers, converts, and summarizes. Per-file progress lines go to
// w as workers finish; the returned error is reserved for batch-fatal
// setup problems (missing root, output root not creatable), never for
// per-file failures.
func (o *Orchestrator) Run(root string, w io.Writer) (types.BatchResult, []types.FileOutcome, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return types.BatchResult{}, nil, fmt.Errorf("input root %s: %w", root, types.ErrInputNotFound)
		}
		return types.BatchResult{}, nil, fmt.Errorf("input root %s: %w", root, err)
	}
	if !info.IsDir() {
		return types.BatchResult{}, nil, fmt.Errorf("input root %s is not a directory: %w", root, types.ErrInvalidUsage)
	}

	outDir := o.outputDir(root)
	procDir := filepath.Join(root, o.processedDirName())
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return types.BatchResult{}, nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.MkdirAll(procDir, 0o755); err != nil {
		return types.BatchResult{}, nil, fmt.Errorf("creating processed directory: %w", err)
	}

	files, outcomes, err := o.discover(root, outDir, procDir)
	if err != nil {
		return types.BatchResult{}, nil, err
	}

	var result types.BatchResult
	result.Skipped = len(outcomes)
	for _, out := range outcomes {
		fmt.Fprintf(w, "skipped:   %s (already processed)\n", filepath.Base(out.Source))
	}

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(o.workers())
	for _, src := range files {
		src := src
		p.Go(func() {
			out := o.convertOne(root, outDir, procDir, src)

			mu.Lock()
			defer mu.Unlock()
			outcomes = append(outcomes, out)
			base := filepath.Base(src)
			switch out.Status {
			case types.StatusConverted:
				result.Converted++
				fmt.Fprintf(w, "converted: %s\n", base)
				if out.Warning != "" {
					fmt.Fprintf(w, "warning:   %s (%s)\n", base, out.Warning)
				}
			case types.StatusFailed:
				result.Failed++
				fmt.Fprintf(w, "failed:    %s (%s)\n", base, out.Error)
			}
		})
	}
	p.Wait()

	// Completion order is nondeterministic; fix the log order for
	// summaries and reports.
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Source < outcomes[j].Source })

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed, %d skipped (total: %d)\n",
		result.Converted, result.Failed, result.Skipped, result.Total())
	return result, outcomes, nil
}

// discover enumerates supported files under root in sorted order. Files
// already under the reserved output or processed directories are counted
// as skipped so that repeated runs over the same root never reprocess
// their own artifacts.
func (o *Orchestrator) discover(root, outDir, procDir string) ([]string, []types.FileOutcome, error) {
	var files []string
	var skipped []types.FileOutcome
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root || underDir(path, outDir) || underDir(path, procDir) ||
				path == outDir || path == procDir {
				return nil
			}
			if !o.Config.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if !detect.IsSupported(path) {
			return nil
		}
		if underDir(path, outDir) || underDir(path, procDir) {
			skipped = append(skipped, types.FileOutcome{
				Source: path,
				Status: types.StatusSkipped,
			})
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("discovering files under %s: %w", root, err)
	}
	sort.Strings(files)
	return files, skipped, nil
}

// convertOne handles a single file end to end: convert, write output,
// relocate the source. A relocation failure is a warning only; the
// Markdown output already exists and is correct.
func (o *Orchestrator) convertOne(root, outDir, procDir, src string) types.FileOutcome {
	rel, err := filepath.Rel(root, src)
	if err != nil {
		rel = filepath.Base(src)
	}
	outPath := filepath.Join(outDir, withMarkdownExt(rel))
	out := types.FileOutcome{Source: src, Output: outPath}

	res, err := ConvertFile(o.Registry, src)
	if err != nil {
		out.Status = types.StatusFailed
		out.Error = err.Error()
		out.Output = ""
		return out
	}
	res.OutputPath = outPath

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		out.Status = types.StatusFailed
		out.Error = err.Error()
		return out
	}
	if err := os.WriteFile(res.OutputPath, []byte(res.Markdown), 0o644); err != nil {
		out.Status = types.StatusFailed
		out.Error = err.Error()
		return out
	}
	out.Status = types.StatusConverted

	dest := filepath.Join(procDir, rel)
	relErr := os.MkdirAll(filepath.Dir(dest), 0o755)
	if relErr == nil {
		relErr = os.Rename(src, dest)
	}
	if relErr != nil {
		out.Warning = fmt.Errorf("relocating to %s: %w: %w", dest, types.ErrRelocationFailure, relErr).Error()
	}
	return out
}

func (o *Orchestrator) workers() int {
	if o.Config.Workers > 0 {
		return o.Config.Workers
	}
	return defaultWorkers
}

// outputDir resolves the output root: an explicit OutputDir is a real
// path used as-is, anywhere on the filesystem; otherwise the reserved
// subdirectory under the input root.
func (o *Orchestrator) outputDir(root string) string {
	if o.Config.OutputDir != "" {
		return o.Config.OutputDir
	}
	return filepath.Join(root, o.outputDirName())
}

func (o *Orchestrator) outputDirName() string {
	if o.Config.OutputDirName != "" {
		return o.Config.OutputDirName
	}
	return defaultOutputDirName
}

func (o *Orchestrator) processedDirName() string {
	if o.Config.ProcessedDirName != "" {
		return o.Config.ProcessedDirName
	}
	return defaultProcessedDirName
}

func underDir(path, dir string) bool {
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}

func withMarkdownExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".md"
}
