// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/docmark/pkg/types"
)

func TestMarkdownHeadings(t *testing.T) {
	got := Markdown([]types.Block{
		types.Heading(1, "Title"),
		types.Heading(2, "Section"),
		types.Subheading("Detail"),
	})
	want := "# Title\n\n## Section\n\n### Detail\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarkdownListJoining(t *testing.T) {
	got := Markdown([]types.Block{
		types.Paragraph("Intro."),
		types.UnorderedItem("first"),
		types.UnorderedItem("second"),
		types.OrderedItem(3, "third"),
		types.Paragraph("Outro."),
	})
	want := "Intro.\n\n- first\n- second\n3. third\n\nOutro.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarkdownTable(t *testing.T) {
	// Ragged input: the Table constructor pads, the renderer keeps every
	// row at the header's field count.
	blk := types.Table([][]string{
		{"Name", "Role", "Team"},
		{"ada"},
		{"grace", "eng"},
	})
	got := Markdown([]types.Block{blk})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4 (header, separator, 2 data rows)", len(lines))
	}
	if lines[0] != "| Name | Role | Team |" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "| --- | --- | --- |" {
		t.Errorf("separator = %q", lines[1])
	}
	for i, line := range lines {
		if got := strings.Count(line, "|"); got != 4 {
			t.Errorf("line %d has %d pipes, want 4: %q", i, got, line)
		}
	}
}

func TestMarkdownTableEscapesCells(t *testing.T) {
	blk := types.Table([][]string{
		{"a|b", "line\nbreak"},
		{"x", "y"},
	})
	got := Markdown([]types.Block{blk})
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("pipe should be escaped, got %q", got)
	}
	if strings.Contains(strings.Split(got, "\n")[0], "break") == false {
		t.Errorf("newline should collapse into the same row, got %q", got)
	}
}

func TestMarkdownSeparator(t *testing.T) {
	got := Markdown([]types.Block{
		types.Heading(1, "Subject"),
		types.Separator(),
		types.Paragraph("Body."),
	})
	want := "# Subject\n\n---\n\nBody.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarkdownEmpty(t *testing.T) {
	if got := Markdown(nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestMarkdownDeterministic(t *testing.T) {
	blocks := []types.Block{
		types.Heading(2, "Sheet: one"),
		types.Table([][]string{{"a", "b"}, {"1", "2"}}),
		types.UnorderedItem("item"),
	}
	first := Markdown(blocks)
	second := Markdown(blocks)
	if first != second {
		t.Errorf("rendering is not deterministic:\n%q\n%q", first, second)
	}
}
