// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docxfile

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <w:body>
    <w:p>
      <w:pPr><w:pStyle w:val="Heading1"/></w:pPr>
      <w:r><w:t>Quarterly Review</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>Plain text, </w:t></w:r>
      <w:r><w:rPr><w:b/></w:rPr><w:t>bold text</w:t></w:r>
      <w:r><w:rPr><w:i w:val="true"/></w:rPr><w:t>, italic text</w:t></w:r>
      <w:r><w:rPr><w:b w:val="false"/></w:rPr><w:t>, off again.</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>Read </w:t></w:r>
      <w:hyperlink r:id="rId4">
        <w:r><w:t>the report</w:t></w:r>
      </w:hyperlink>
      <w:r><w:t> before Friday. Ignore the report on the shelf.</w:t></w:r>
    </w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Region</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Rev</w:t></w:r><w:r><w:t>enue</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>North</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>1200</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p>
      <w:pPr><w:pStyle w:val="Mystery9"/></w:pPr>
      <w:r><w:t>Styled with an unnamed style.</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="Heading 1"/>
  </w:style>
</w:styles>`

const testRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/report" TargetMode="External"/>
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

func writeArchive(t *testing.T, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding part %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing part %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing fixture: %v", err)
	}
	return path
}

func TestOpenFullDocument(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"word/document.xml":            testDocumentXML,
		"word/styles.xml":              testStylesXML,
		"word/_rels/document.xml.rels": testRelsXML,
	})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(doc.Elements) != 5 {
		t.Fatalf("got %d elements, want 5", len(doc.Elements))
	}

	heading := doc.Elements[0].Para
	if heading == nil {
		t.Fatal("element 0 is not a paragraph")
	}
	if heading.StyleName != "Heading 1" {
		t.Errorf("StyleName = %q, want %q", heading.StyleName, "Heading 1")
	}
	if heading.Text() != "Quarterly Review" {
		t.Errorf("heading text = %q", heading.Text())
	}

	formatted := doc.Elements[1].Para
	if formatted == nil {
		t.Fatal("element 1 is not a paragraph")
	}
	wantRuns := []Run{
		{Text: "Plain text, "},
		{Text: "bold text", Bold: true},
		{Text: ", italic text", Italic: true},
		{Text: ", off again."},
	}
	if len(formatted.Runs) != len(wantRuns) {
		t.Fatalf("got %d runs, want %d", len(formatted.Runs), len(wantRuns))
	}
	for i, want := range wantRuns {
		if formatted.Runs[i] != want {
			t.Errorf("run %d = %+v, want %+v", i, formatted.Runs[i], want)
		}
	}

	linked := doc.Elements[2].Para
	if linked == nil {
		t.Fatal("element 2 is not a paragraph")
	}
	if len(linked.Runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(linked.Runs))
	}
	if got := linked.Runs[1]; got.Text != "the report" || got.HyperlinkTarget != "https://example.com/report" {
		t.Errorf("linked run = %+v", got)
	}
	// Text matching the link elsewhere in the paragraph stays unlinked.
	if linked.Runs[0].HyperlinkTarget != "" || linked.Runs[2].HyperlinkTarget != "" {
		t.Errorf("hyperlink target leaked outside the hyperlink element: %+v", linked.Runs)
	}

	tbl := doc.Elements[3].Table
	if tbl == nil {
		t.Fatal("element 3 is not a table")
	}
	wantRows := [][]string{{"Region", "Revenue"}, {"North", "1200"}}
	if len(tbl.Rows) != len(wantRows) {
		t.Fatalf("got %d table rows, want %d", len(tbl.Rows), len(wantRows))
	}
	for i, want := range wantRows {
		for j, cell := range want {
			if tbl.Rows[i][j] != cell {
				t.Errorf("cell (%d,%d) = %q, want %q", i, j, tbl.Rows[i][j], cell)
			}
		}
	}

	// Style ids without a styles.xml name fall back to the raw id.
	unnamed := doc.Elements[4].Para
	if unnamed == nil {
		t.Fatal("element 4 is not a paragraph")
	}
	if unnamed.StyleName != "Mystery9" {
		t.Errorf("StyleName = %q, want raw id %q", unnamed.StyleName, "Mystery9")
	}
}

func TestOpenWithoutOptionalParts(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"word/document.xml": testDocumentXML,
	})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	heading := doc.Elements[0].Para
	if heading.StyleName != "Heading1" {
		t.Errorf("StyleName = %q, want raw id when styles.xml is absent", heading.StyleName)
	}
	linked := doc.Elements[2].Para
	if linked.Runs[1].HyperlinkTarget != "" {
		t.Errorf("hyperlink resolved without a relationships part: %+v", linked.Runs[1])
	}
}

func TestOpenMissingBody(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"word/styles.xml": testStylesXML,
	})
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for archive without word/document.xml")
	}
}

func TestOpenNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for non-ZIP input")
	}
}
