// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/docmark/internal/heuristic"
	"github.com/pdiddy/docmark/pkg/types"
)

// TextExtractor recovers structure from plain text with the line
// heuristic: blank lines delimit paragraphs, and each line is classified
// against its neighbors.
type TextExtractor struct {
	Thresholds heuristic.Thresholds
}

// Extract reads the UTF-8 text at path.
func (e *TextExtractor) Extract(path string) ([]types.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return classifyLines(strings.Split(text, "\n"), e.Thresholds), nil
}

// classifyLines runs the heuristic over lines with their neighbor
// context, folding contiguous content lines into single paragraphs. The
// text and PDF extractors share it.
func classifyLines(lines []string, th heuristic.Thresholds) []types.Block {
	var blocks []types.Block
	var para []string
	flush := func() {
		if len(para) > 0 {
			blocks = append(blocks, types.Paragraph(strings.Join(para, "\n")))
			para = nil
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			continue
		}
		ctx := heuristic.Context{
			PrevBlank: i == 0 || strings.TrimSpace(lines[i-1]) == "",
			NextBlank: i == len(lines)-1 || strings.TrimSpace(lines[i+1]) == "",
		}
		if i < len(lines)-1 {
			ctx.NextLen = utf8.RuneCountInString(strings.TrimSpace(lines[i+1]))
		}

		res := th.Classify(line, ctx)
		switch res.Class {
		case heuristic.Heading:
			flush()
			blocks = append(blocks, types.Heading(res.Level, res.Text))
		case heuristic.Subheading:
			flush()
			blocks = append(blocks, types.Subheading(res.Text))
		case heuristic.OrderedItem:
			flush()
			blocks = append(blocks, types.OrderedItem(res.Index, res.Text))
		case heuristic.UnorderedItem:
			flush()
			blocks = append(blocks, types.UnorderedItem(res.Text))
		default:
			para = append(para, res.Text)
		}
	}
	flush()
	return blocks
}
