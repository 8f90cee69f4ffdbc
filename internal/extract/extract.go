// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns decoded document content into ordered Block
// sequences. One extractor exists per format family; formats that carry
// no native structure (plain text, PDF page text) run the shared
// heuristic, while formats with explicit structure (tables, paragraph
// styles) bypass it.
package extract

import (
	"fmt"

	"github.com/pdiddy/docmark/internal/heuristic"
	"github.com/pdiddy/docmark/pkg/types"
)

// Extractor converts one source file into an ordered Block sequence. An
// empty document is valid and yields an empty or placeholder sequence,
// never an error.
type Extractor interface {
	Extract(path string) ([]types.Block, error)
}

// Registry maps each format tag to its extractor. It is built once at
// startup; a tag without an entry is an unsupported format, reported
// explicitly instead of probed for at call sites.
type Registry map[types.FormatTag]Extractor

// Options carries per-run extractor settings.
type Options struct {
	// Sheet restricts spreadsheet extraction to the named sheet.
	Sheet string

	// Thresholds tune the structure heuristic. The zero value selects
	// the defaults.
	Thresholds heuristic.Thresholds
}

// NewRegistry builds the extractor registry for all supported formats.
func NewRegistry(opts Options) Registry {
	th := opts.Thresholds
	if th == (heuristic.Thresholds{}) {
		th = heuristic.DefaultThresholds()
	}
	return Registry{
		types.FormatCSV:         &CSVExtractor{},
		types.FormatText:        &TextExtractor{Thresholds: th},
		types.FormatSpreadsheet: &SpreadsheetExtractor{Sheet: opts.Sheet},
		types.FormatWord:        &WordExtractor{},
		types.FormatPDF:         &PDFExtractor{Thresholds: th},
		types.FormatMSG:         &MSGExtractor{},
		types.FormatEML:         &EMLExtractor{},
	}
}

// Lookup returns the extractor registered for tag.
func (r Registry) Lookup(tag types.FormatTag) (Extractor, error) {
	ex, ok := r[tag]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for %q: %w", tag, types.ErrUnsupportedFormat)
	}
	return ex, nil
}
