// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/docmark/internal/docxfile"
	"github.com/pdiddy/docmark/internal/heuristic"
	"github.com/pdiddy/docmark/pkg/types"
)

// WordExtractor maps wordprocessing paragraphs to blocks using their
// explicit style names: "heading N" styles become headings, "List"
// styles become list items, and everything else is a paragraph. Run
// formatting becomes emphasis markers, and hyperlinks attach to the runs
// they actually wrap.
type WordExtractor struct{}

// Extract decodes the document at path.
func (e *WordExtractor) Extract(path string) ([]types.Block, error) {
	doc, err := docxfile.Open(path)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}

	var blocks []types.Block
	for _, el := range doc.Elements {
		switch {
		case el.Table != nil:
			if len(el.Table.Rows) > 0 {
				blocks = append(blocks, types.Table(el.Table.Rows))
			}
		case el.Para != nil:
			if blk, ok := paragraphBlock(el.Para); ok {
				blocks = append(blocks, blk)
			}
		}
	}
	return blocks, nil
}

func paragraphBlock(p *docxfile.Paragraph) (types.Block, bool) {
	text := runsMarkdown(p.Runs)
	if strings.TrimSpace(text) == "" {
		return types.Block{}, false
	}

	style := strings.ToLower(p.StyleName)
	switch {
	case strings.HasPrefix(style, "heading"):
		return types.Heading(headingLevel(style), text), true
	case strings.HasPrefix(style, "list"):
		res := heuristic.ClassifyList(text)
		if res.Class == heuristic.OrderedItem {
			return types.OrderedItem(res.Index, res.Text), true
		}
		return types.UnorderedItem(res.Text), true
	}
	return types.Paragraph(text), true
}

// headingLevel reads the trailing digit of a heading style name
// ("heading 2" → 2). Styles without one map to level 1.
func headingLevel(style string) int {
	last := style[len(style)-1]
	if last >= '1' && last <= '9' {
		return int(last - '0')
	}
	return 1
}

// runsMarkdown renders runs with emphasis markers and inline links.
// Adjacent runs with identical formatting and link target are coalesced
// first, so a hyperlink split across runs renders as one link.
func runsMarkdown(runs []docxfile.Run) string {
	var b strings.Builder
	for _, r := range coalesce(runs) {
		text := r.Text
		if text == "" {
			continue
		}
		switch {
		case r.Bold && r.Italic:
			text = "***" + text + "***"
		case r.Bold:
			text = "**" + text + "**"
		case r.Italic:
			text = "*" + text + "*"
		}
		if r.HyperlinkTarget != "" {
			text = "[" + text + "](" + r.HyperlinkTarget + ")"
		}
		b.WriteString(text)
	}
	return b.String()
}

func coalesce(runs []docxfile.Run) []docxfile.Run {
	var out []docxfile.Run
	for _, r := range runs {
		n := len(out)
		if n > 0 && out[n-1].Bold == r.Bold && out[n-1].Italic == r.Italic &&
			out[n-1].HyperlinkTarget == r.HyperlinkTarget {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}
