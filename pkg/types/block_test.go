// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
)

func TestTablePadsRaggedRows(t *testing.T) {
	blk := Table([][]string{
		{"a", "b", "c"},
		{"1"},
		{"2", "3"},
	})

	if len(blk.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(blk.Rows))
	}
	for i, row := range blk.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d columns, want 3", i, len(row))
		}
	}
	if blk.Rows[1][1] != "" || blk.Rows[1][2] != "" {
		t.Errorf("short row should be padded with empty strings, got %q", blk.Rows[1])
	}
	if blk.Rows[2][0] != "2" || blk.Rows[2][1] != "3" {
		t.Errorf("existing cells should be preserved, got %q", blk.Rows[2])
	}
}

func TestHeadingClampsLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 1},
		{1, 1},
		{3, 3},
		{6, 6},
		{9, 6},
		{-2, 1},
	}
	for _, tt := range tests {
		if got := Heading(tt.level, "x").Level; got != tt.want {
			t.Errorf("Heading(%d).Level = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestOrderedItemIndexFloor(t *testing.T) {
	if got := OrderedItem(0, "x").Index; got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if got := OrderedItem(7, "x").Index; got != 7 {
		t.Errorf("index = %d, want 7", got)
	}
}

func TestBatchResult(t *testing.T) {
	r := BatchResult{Converted: 2, Failed: 1, Skipped: 3}
	if r.Total() != 6 {
		t.Errorf("total = %d, want 6", r.Total())
	}
	if !r.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if (BatchResult{Converted: 5}).HasFailures() {
		t.Error("HasFailures should be false without failures")
	}
}
