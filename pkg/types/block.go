// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for docmark: supported input
// formats, structural blocks, conversion outcomes, and configuration.
package types

// FormatTag identifies a supported input container format.
type FormatTag string

const (
	FormatCSV         FormatTag = "csv"
	FormatText        FormatTag = "text"
	FormatSpreadsheet FormatTag = "spreadsheet"
	FormatWord        FormatTag = "word"
	FormatPDF         FormatTag = "pdf"
	FormatMSG         FormatTag = "msg"
	FormatEML         FormatTag = "eml"
)

// BlockKind tags the variant held by a Block.
type BlockKind string

const (
	KindHeading    BlockKind = "heading"
	KindSubheading BlockKind = "subheading"
	KindParagraph  BlockKind = "paragraph"
	KindListItem   BlockKind = "list_item"
	KindTable      BlockKind = "table"
	KindSeparator  BlockKind = "separator"
)

// Block is one structurally classified unit of extracted content. A Block
// sequence preserves source document order. Only the fields relevant to
// Kind are set; use the constructors below rather than building Blocks
// by hand, since they enforce the level and rectangularity invariants.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1-6). Set for KindHeading only;
	// subheadings carry no level and render one step deeper than a
	// short main heading.
	Level int

	// Text is the block content for headings, subheadings, paragraphs,
	// and list items.
	Text string

	// Ordered and Index apply to KindListItem. Index is the list number
	// the source carried (or the position-derived number for items the
	// source flagged but did not number).
	Ordered bool
	Index   int

	// Rows applies to KindTable. The first row is the header. Rows are
	// rectangular: every row has the header's column count.
	Rows [][]string
}

// Heading builds a heading block, clamping level into [1,6].
func Heading(level int, text string) Block {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return Block{Kind: KindHeading, Level: level, Text: text}
}

// Subheading builds a subheading block.
func Subheading(text string) Block {
	return Block{Kind: KindSubheading, Text: text}
}

// Paragraph builds a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// UnorderedItem builds an unordered list item.
func UnorderedItem(text string) Block {
	return Block{Kind: KindListItem, Text: text}
}

// OrderedItem builds an ordered list item carrying the source's number.
func OrderedItem(index int, text string) Block {
	if index < 1 {
		index = 1
	}
	return Block{Kind: KindListItem, Ordered: true, Index: index, Text: text}
}

// Separator builds a horizontal-rule block.
func Separator() Block {
	return Block{Kind: KindSeparator}
}

// Table builds a table block. Ragged input rows are padded with empty
// strings so that every row matches the widest row's column count.
func Table(rows [][]string) Block {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}
	return Block{Kind: KindTable, Rows: padded}
}
