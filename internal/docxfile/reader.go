// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docxfile decodes the OOXML wordprocessing container (a ZIP
// archive of XML parts) into ordered paragraphs, runs, and tables. It
// reads only what the converter needs: paragraph style names, run text
// with bold/italic flags, per-run hyperlink targets, and table cell text.
package docxfile

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Document is the decoded body of a wordprocessing file: paragraphs and
// tables in source order.
type Document struct {
	Elements []Element
}

// Element is one body-level element. Exactly one field is set.
type Element struct {
	Para  *Paragraph
	Table *Table
}

// Paragraph is a styled run sequence.
type Paragraph struct {
	// StyleName is the resolved style name (e.g. "Heading 1",
	// "List Bullet"), falling back to the style id when styles.xml does
	// not name it.
	StyleName string
	Runs      []Run
}

// Run is a contiguous span of identically formatted text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool

	// HyperlinkTarget is the relationship target URL when the run sits
	// inside a hyperlink element. Tracking the target per run means
	// repeated text elsewhere in the paragraph is never linked by
	// accident.
	HyperlinkTarget string
}

// Text joins the paragraph's run text.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Table holds cell text per row.
type Table struct {
	Rows [][]string
}

// Open decodes the wordprocessing file at path.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	rels, err := parseRelationships(zr)
	if err != nil {
		return nil, err
	}
	styles, err := parseStyles(zr)
	if err != nil {
		return nil, err
	}

	body, err := openPart(zr, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("missing document body: %w", err)
	}
	defer body.Close()

	return parseBody(body, rels, styles)
}

// openPart opens a named part of the archive.
func openPart(zr *zip.ReadCloser, name string) (io.ReadCloser, error) {
	for _, f := range zr.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("part %s not found", name)
}

// parseBody walks document.xml token by token so that body-level
// paragraphs and tables come out in source order. DecodeElement consumes
// each element's subtree, so paragraphs inside table cells never surface
// at body level.
func parseBody(r io.Reader, rels map[string]string, styles map[string]string) (*Document, error) {
	doc := &Document{}
	dec := xml.NewDecoder(r)
	inBody := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document body: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "body":
			inBody = true
		case "p":
			if !inBody {
				continue
			}
			para, err := parseParagraph(dec, rels, styles)
			if err != nil {
				return nil, err
			}
			doc.Elements = append(doc.Elements, Element{Para: para})
		case "tbl":
			if !inBody {
				continue
			}
			var tbl tableXML
			if err := dec.DecodeElement(&tbl, &se); err != nil {
				return nil, fmt.Errorf("parsing table: %w", err)
			}
			doc.Elements = append(doc.Elements, Element{Table: tbl.table()})
		}
	}
	return doc, nil
}

// parseParagraph consumes one w:p element. It tracks the enclosing
// hyperlink relationship while decoding runs, so each run records the
// target it was actually wrapped in.
func parseParagraph(dec *xml.Decoder, rels map[string]string, styles map[string]string) (*Paragraph, error) {
	para := &Paragraph{}
	linkTarget := ""
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing paragraph: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pStyle":
				for _, a := range t.Attr {
					if a.Name.Local == "val" {
						para.StyleName = styleName(styles, a.Value)
					}
				}
				depth++
			case "hyperlink":
				for _, a := range t.Attr {
					if a.Name.Local == "id" {
						linkTarget = rels[a.Value]
					}
				}
				depth++
			case "r":
				var run runXML
				if err := dec.DecodeElement(&run, &t); err != nil {
					return nil, fmt.Errorf("parsing run: %w", err)
				}
				para.Runs = append(para.Runs, run.run(linkTarget))
			default:
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == "hyperlink" {
				linkTarget = ""
			}
			depth--
		}
	}
	return para, nil
}

func styleName(styles map[string]string, id string) string {
	if name, ok := styles[id]; ok && name != "" {
		return name
	}
	return id
}

// runXML mirrors a w:r element.
type runXML struct {
	Props *struct {
		Bold   *onOffXML `xml:"b"`
		Italic *onOffXML `xml:"i"`
	} `xml:"rPr"`
	Text []string `xml:"t"`
}

type onOffXML struct {
	Val string `xml:"val,attr"`
}

// set reports whether an on/off property is enabled. Presence means on
// unless the val attribute says otherwise.
func (o *onOffXML) set() bool {
	if o == nil {
		return false
	}
	return o.Val != "false" && o.Val != "0"
}

func (r runXML) run(linkTarget string) Run {
	run := Run{
		Text:            strings.Join(r.Text, ""),
		HyperlinkTarget: linkTarget,
	}
	if r.Props != nil {
		run.Bold = r.Props.Bold.set()
		run.Italic = r.Props.Italic.set()
	}
	return run
}

// tableXML mirrors a w:tbl element down to cell text.
type tableXML struct {
	Rows []struct {
		Cells []struct {
			Paras []struct {
				Runs []struct {
					Text []string `xml:"t"`
				} `xml:"r"`
			} `xml:"p"`
		} `xml:"tc"`
	} `xml:"tr"`
}

func (t tableXML) table() *Table {
	tbl := &Table{}
	for _, row := range t.Rows {
		var cells []string
		for _, cell := range row.Cells {
			var parts []string
			for _, p := range cell.Paras {
				var b strings.Builder
				for _, r := range p.Runs {
					b.WriteString(strings.Join(r.Text, ""))
				}
				if s := b.String(); s != "" {
					parts = append(parts, s)
				}
			}
			cells = append(cells, strings.TrimSpace(strings.Join(parts, " ")))
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl
}

// relationshipsXML mirrors word/_rels/document.xml.rels.
type relationshipsXML struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// parseRelationships maps hyperlink relationship ids to their targets.
// The part is optional: documents without hyperlinks may omit it.
func parseRelationships(zr *zip.ReadCloser) (map[string]string, error) {
	rels := map[string]string{}
	part, err := openPart(zr, "word/_rels/document.xml.rels")
	if err != nil {
		return rels, nil
	}
	defer part.Close()

	var parsed relationshipsXML
	if err := xml.NewDecoder(part).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}
	for _, rel := range parsed.Rels {
		if strings.HasSuffix(rel.Type, "/hyperlink") {
			rels[rel.ID] = rel.Target
		}
	}
	return rels, nil
}

// stylesXML mirrors word/styles.xml down to style names.
type stylesXML struct {
	Styles []struct {
		ID   string `xml:"styleId,attr"`
		Name *struct {
			Val string `xml:"val,attr"`
		} `xml:"name"`
	} `xml:"style"`
}

// parseStyles maps style ids to display names. The part is optional;
// callers fall back to the raw style id.
func parseStyles(zr *zip.ReadCloser) (map[string]string, error) {
	styles := map[string]string{}
	part, err := openPart(zr, "word/styles.xml")
	if err != nil {
		return styles, nil
	}
	defer part.Close()

	var parsed stylesXML
	if err := xml.NewDecoder(part).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing styles: %w", err)
	}
	for _, s := range parsed.Styles {
		if s.Name != nil {
			styles[s.ID] = s.Name.Val
		}
	}
	return styles, nil
}
