// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package heuristic classifies plain-text lines as headings, subheadings,
// list items, or content. Formats with no native structure (plain text,
// page-extracted PDF text) share this single rule table, tuned through a
// Thresholds value, so their behavior stays consistent and there is one
// place to adjust it. The rules form a deterministic decision table
// applied in a fixed order with first match winning.
package heuristic

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Thresholds control the classification rules.
type Thresholds struct {
	// MaxHeadingLen is the exclusive length bound for headings.
	MaxHeadingLen int

	// ShortHeadingLen is the exclusive bound below which a heading
	// renders at level 2 rather than level 3.
	ShortHeadingLen int

	// MaxSubheadingLen is the exclusive length bound for subheadings.
	MaxSubheadingLen int

	// LongNextLine relaxes the isolation test: a following line longer
	// than this counts as a paragraph break even without a blank line,
	// since page-extracted text often drops blank lines after headings.
	// Zero disables the relaxation.
	LongNextLine int
}

// DefaultThresholds returns the tuning shared by the text and PDF
// extractors.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxHeadingLen:    50,
		ShortHeadingLen:  20,
		MaxSubheadingLen: 30,
		LongNextLine:     50,
	}
}

// Class is the classification of a single line.
type Class int

const (
	Content Class = iota
	Heading
	Subheading
	OrderedItem
	UnorderedItem
)

// Context describes a line's position within its enclosing paragraph or
// page.
type Context struct {
	// PrevBlank is true when the line is first, or the previous line is
	// blank.
	PrevBlank bool

	// NextBlank is true when the line is last, or the next line is blank.
	NextBlank bool

	// NextLen is the trimmed length of the following line, 0 when absent.
	NextLen int
}

// Result is the outcome of classifying one line.
type Result struct {
	Class Class

	// Level is the heading level; set when Class is Heading.
	Level int

	// Index is the parsed list number; set when Class is OrderedItem.
	Index int

	// Text is the line with surrounding space and any list marker
	// stripped.
	Text string
}

var numberedItem = regexp.MustCompile(`^(\d+)\.\s*`)

// Classify applies the rule table to one line. Rules in order:
// numbered lines are always ordered list items (never headings); an
// isolated short line without terminal punctuation that starts uppercase
// is a heading; a shorter punctuation-free uppercase-starting line is a
// subheading; a bullet-prefixed line is an unordered item; anything else
// is content.
func (t Thresholds) Classify(line string, ctx Context) Result {
	text := strings.TrimSpace(line)
	if text == "" {
		return Result{Class: Content}
	}

	if m := numberedItem.FindStringSubmatch(text); m != nil {
		index, _ := strconv.Atoi(m[1])
		return Result{Class: OrderedItem, Index: index, Text: strings.TrimSpace(text[len(m[0]):])}
	}

	length := utf8.RuneCountInString(text)
	isolated := ctx.PrevBlank &&
		(ctx.NextBlank || (t.LongNextLine > 0 && ctx.NextLen > t.LongNextLine))

	if isolated && length < t.MaxHeadingLen && headingPunctuation(text) && startsUpper(text) {
		level := 3
		if length < t.ShortHeadingLen {
			level = 2
		}
		return Result{Class: Heading, Level: level, Text: text}
	}

	if length < t.MaxSubheadingLen && !strings.ContainsAny(text, ".!?,;") && startsUpper(text) {
		return Result{Class: Subheading, Text: text}
	}

	if rest, ok := stripBullet(text); ok {
		return Result{Class: UnorderedItem, Text: rest}
	}

	return Result{Class: Content, Text: text}
}

// ClassifyList applies the list-marker rules to a paragraph the source
// format already flags as a list (word-processor list styles). A numbered
// paragraph keeps its number; a bulleted one loses the glyph; anything
// else gets a synthesized unordered marker.
func ClassifyList(text string) Result {
	text = strings.TrimSpace(text)
	if m := numberedItem.FindStringSubmatch(text); m != nil {
		index, _ := strconv.Atoi(m[1])
		return Result{Class: OrderedItem, Index: index, Text: strings.TrimSpace(text[len(m[0]):])}
	}
	if rest, ok := stripBullet(text); ok {
		return Result{Class: UnorderedItem, Text: rest}
	}
	return Result{Class: UnorderedItem, Text: text}
}

// headingPunctuation rejects lines ending in sentence punctuation. A
// trailing colon is allowed: it commonly ends section titles.
func headingPunctuation(text string) bool {
	last, _ := utf8.DecodeLastRuneInString(text)
	return !strings.ContainsRune(".!?,;", last) || last == ':'
}

func startsUpper(text string) bool {
	first, _ := utf8.DecodeRuneInString(text)
	return unicode.IsUpper(first)
}

func stripBullet(text string) (string, bool) {
	for _, glyph := range []string{"•", "*", "-"} {
		if strings.HasPrefix(text, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(text, glyph)), true
		}
	}
	return "", false
}
