// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/pdiddy/docmark/pkg/types"
)

const sampleEML = "From: Ada Lovelace <ada@example.com>\r\n" +
	"To: team@example.com\r\n" +
	"Subject: Engine status\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/mixed; boundary=\"b1\"\r\n" +
	"\r\n" +
	"--b1\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"The engine compiles.\r\n" +
	"\r\n" +
	"Cards are next week.\r\n" +
	"--b1\r\n" +
	"Content-Type: application/octet-stream\r\n" +
	"Content-Disposition: attachment; filename=\"plan.bin\"\r\n" +
	"\r\n" +
	"binarybytes\r\n" +
	"--b1--\r\n"

func TestEMLExtract(t *testing.T) {
	path := writeTemp(t, "status.eml", sampleEML)

	blocks, err := (&EMLExtractor{}).Extract(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 5 {
		t.Fatalf("blocks = %d, want 5: %+v", len(blocks), blocks)
	}
	if blocks[0].Kind != types.KindHeading || blocks[0].Level != 1 || blocks[0].Text != "Engine status" {
		t.Errorf("subject block = %+v", blocks[0])
	}
	if blocks[1].Kind != types.KindParagraph || !strings.Contains(blocks[1].Text, "ada@example.com") {
		t.Errorf("sender block = %+v", blocks[1])
	}
	if blocks[2].Kind != types.KindSeparator {
		t.Errorf("block 2 = %+v, want separator", blocks[2])
	}
	if blocks[3].Text != "The engine compiles." || blocks[4].Text != "Cards are next week." {
		t.Errorf("body paragraphs = %+v", blocks[3:])
	}
	// The attachment never surfaces as a block.
	for _, b := range blocks {
		if strings.Contains(b.Text, "binarybytes") {
			t.Errorf("attachment content leaked into %+v", b)
		}
	}
}

func TestMailBlocksDefaults(t *testing.T) {
	blocks := mailBlocks("", "  ", "")
	if blocks[0].Text != "No Subject" {
		t.Errorf("subject = %q, want %q", blocks[0].Text, "No Subject")
	}
	if blocks[1].Text != "From: Unknown Sender" {
		t.Errorf("sender = %q", blocks[1].Text)
	}
	if len(blocks) != 3 {
		t.Errorf("empty body should add no paragraphs, got %d blocks", len(blocks))
	}
}

func TestSplitBodyParagraphs(t *testing.T) {
	got := splitBodyParagraphs("one\r\n\r\ntwo\n \nthree\n\n\n")
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("chunks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}
