// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes Block sequences to Markdown text. Rendering
// is pure and deterministic: identical input always yields identical
// output.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/docmark/pkg/types"
)

// Markdown renders blocks as Markdown. Adjacent blocks are separated by
// one blank line, except consecutive list items, which are separated by a
// single line break so they render as one continuous list. Non-empty
// output ends with a single trailing newline.
func Markdown(blocks []types.Block) string {
	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			if blk.Kind == types.KindListItem && blocks[i-1].Kind == types.KindListItem {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(renderBlock(blk))
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteString("\n")
	return b.String()
}

func renderBlock(blk types.Block) string {
	switch blk.Kind {
	case types.KindHeading:
		return strings.Repeat("#", blk.Level) + " " + blk.Text
	case types.KindSubheading:
		return "### " + blk.Text
	case types.KindParagraph:
		return blk.Text
	case types.KindListItem:
		if blk.Ordered {
			return fmt.Sprintf("%d. %s", blk.Index, blk.Text)
		}
		return "- " + blk.Text
	case types.KindSeparator:
		return "---"
	case types.KindTable:
		return renderTable(blk.Rows)
	}
	return ""
}

// renderTable emits a pipe table: header row, one --- separator per
// column, then data rows. Rows arrive rectangular from the Table
// constructor.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	writeRow(&b, rows[0])

	b.WriteString("\n|")
	for range rows[0] {
		b.WriteString(" --- |")
	}

	for _, row := range rows[1:] {
		b.WriteString("\n")
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string) {
	b.WriteString("|")
	for _, cell := range row {
		b.WriteString(" ")
		b.WriteString(escapeCell(cell))
		b.WriteString(" |")
	}
}

// escapeCell keeps cell content on one table line: pipes are escaped and
// embedded newlines collapse to spaces.
func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\r\n", " ")
	cell = strings.ReplaceAll(cell, "\n", " ")
	return strings.ReplaceAll(cell, "|", `\|`)
}
