// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/docmark/internal/heuristic"
	"github.com/pdiddy/docmark/pkg/types"
)

// PDFExtractor recovers structure from the PDF text layer. Each page gets
// a page-number heading followed by the heuristic's classification of its
// text; column-aligned row groups are additionally recovered as tables
// and appended under a trailing "Tables" section tagged with page and
// ordinal. Scanned (image-only) pages carry a placeholder instead of
// text.
type PDFExtractor struct {
	Thresholds heuristic.Thresholds
}

const noTextPlaceholder = "*No extractable text content*"

// minColumnGap is the horizontal distance (points) between positioned
// fragments that starts a new table cell.
const minColumnGap = 36.0

// Extract decodes the PDF at path.
func (e *PDFExtractor) Extract(path string) ([]types.Block, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}
	defer f.Close()

	var blocks []types.Block
	var tableBlocks []types.Block
	for n := 1; n <= r.NumPage(); n++ {
		blocks = append(blocks, types.Heading(2, fmt.Sprintf("Page %d", n)))

		page := r.Page(n)
		if page.V.IsNull() {
			blocks = append(blocks, types.Paragraph(noTextPlaceholder))
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil || len(rows) == 0 {
			blocks = append(blocks, types.Paragraph(noTextPlaceholder))
			continue
		}

		blocks = append(blocks, classifyLines(rowLines(rows), e.Thresholds)...)

		for i, tbl := range rowTables(rows) {
			tableBlocks = append(tableBlocks,
				types.Heading(3, fmt.Sprintf("Table %d (Page %d)", i+1, n)),
				types.Table(tbl))
		}
	}

	if len(tableBlocks) > 0 {
		blocks = append(blocks, types.Heading(2, "Tables"))
		blocks = append(blocks, tableBlocks...)
	}
	return blocks, nil
}

// rowLines flattens positioned rows into text lines, inserting a blank
// line wherever the vertical gap between rows clearly exceeds the page's
// typical line spacing. The synthetic blanks give the heuristic the
// paragraph breaks the text layer dropped.
func rowLines(rows pdf.Rows) []string {
	breakAfter := paragraphBreaks(rows)
	var lines []string
	for i, row := range rows {
		var b strings.Builder
		for _, text := range row.Content {
			b.WriteString(text.S)
		}
		lines = append(lines, strings.TrimSpace(b.String()))
		if breakAfter[i] {
			lines = append(lines, "")
		}
	}
	return lines
}

// paragraphBreaks flags the rows followed by a vertical gap wider than
// 1.8x the median line spacing on the page.
func paragraphBreaks(rows pdf.Rows) []bool {
	breaks := make([]bool, len(rows))
	if len(rows) < 3 {
		return breaks
	}
	gaps := make([]int64, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		gap := rows[i-1].Position - rows[i].Position
		if gap < 0 {
			gap = -gap
		}
		gaps = append(gaps, gap)
	}
	sorted := append([]int64(nil), gaps...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	median := sorted[len(sorted)/2]
	if median == 0 {
		return breaks
	}
	for i, gap := range gaps {
		if float64(gap) > 1.8*float64(median) {
			breaks[i] = true
		}
	}
	return breaks
}

// rowTables recovers tables from positioned rows: fragments separated by
// a wide horizontal gap form cells, and two or more consecutive rows with
// the same multi-cell count form a table. Best effort, like the rest of
// the structure recovery here.
func rowTables(rows pdf.Rows) [][][]string {
	var tables [][][]string
	var current [][]string
	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, current)
		}
		current = nil
	}
	for _, row := range rows {
		cells := rowCells(row)
		if len(cells) < 2 || (len(current) > 0 && len(cells) != len(current[0])) {
			flush()
			if len(cells) >= 2 {
				current = [][]string{cells}
			}
			continue
		}
		current = append(current, cells)
	}
	flush()
	return tables
}

// rowCells splits one row's fragments into cells on horizontal gaps.
func rowCells(row *pdf.Row) []string {
	var cells []string
	var b strings.Builder
	lastX := 0.0
	for i, text := range row.Content {
		if i > 0 && text.X-lastX > minColumnGap {
			cells = append(cells, strings.TrimSpace(b.String()))
			b.Reset()
		}
		b.WriteString(text.S)
		lastX = text.X
	}
	if s := strings.TrimSpace(b.String()); s != "" || len(cells) > 0 {
		cells = append(cells, s)
	}
	return cells
}
