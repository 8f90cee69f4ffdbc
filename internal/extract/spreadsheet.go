// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/docmark/pkg/types"
)

// SpreadsheetExtractor turns a workbook into one heading-plus-table pair
// per sheet, in workbook order. Structure is already explicit in the
// cell matrix, so the heuristic is bypassed. An empty sheet yields a
// placeholder block rather than a zero-row table.
type SpreadsheetExtractor struct {
	// Sheet restricts extraction to the named sheet. Empty means all.
	Sheet string
}

// Extract decodes the workbook at path.
func (e *SpreadsheetExtractor) Extract(path string) ([]types.Block, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if e.Sheet != "" {
		if !slices.Contains(sheets, e.Sheet) {
			return nil, types.ExtractionError(path, fmt.Errorf("sheet %q not found", e.Sheet))
		}
		sheets = []string{e.Sheet}
	}

	var blocks []types.Block
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, types.ExtractionError(path, err)
		}
		blocks = append(blocks, types.Heading(2, "Sheet: "+name))
		if len(rows) == 0 {
			blocks = append(blocks, types.Paragraph("*Empty sheet*"))
			continue
		}
		blocks = append(blocks, types.Table(rows))
	}
	return blocks, nil
}
