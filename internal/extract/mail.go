// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"regexp"
	"strings"

	"github.com/jhillyerd/enmime"

	"github.com/pdiddy/docmark/internal/msgfile"
	"github.com/pdiddy/docmark/pkg/types"
)

// Mail conversion is fixed-shape and never runs the heuristic: a level-1
// heading from the subject, a sender line, a rule, then one paragraph per
// blank-line-delimited body chunk.

// EMLExtractor converts RFC 822 mail messages. MIME decoding (multipart
// walking, encoded headers, charsets) is enmime's job; the first
// text/plain part wins and attachments are skipped.
type EMLExtractor struct{}

// Extract decodes the message at path.
func (e *EMLExtractor) Extract(path string) ([]types.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}
	defer f.Close()

	env, err := enmime.ReadEnvelope(f)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}
	return mailBlocks(env.GetHeader("Subject"), env.GetHeader("From"), env.Text), nil
}

// MSGExtractor converts legacy Outlook messages via the compound-file
// decoder.
type MSGExtractor struct{}

// Extract decodes the message at path.
func (e *MSGExtractor) Extract(path string) ([]types.Block, error) {
	m, err := msgfile.Open(path)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}
	return mailBlocks(m.Subject, m.Sender, m.Body), nil
}

func mailBlocks(subject, sender, body string) []types.Block {
	if strings.TrimSpace(subject) == "" {
		subject = "No Subject"
	}
	if strings.TrimSpace(sender) == "" {
		sender = "Unknown Sender"
	}
	blocks := []types.Block{
		types.Heading(1, subject),
		types.Paragraph("From: " + sender),
		types.Separator(),
	}
	for _, chunk := range splitBodyParagraphs(body) {
		blocks = append(blocks, types.Paragraph(chunk))
	}
	return blocks
}

var blankLines = regexp.MustCompile(`\n\s*\n`)

// splitBodyParagraphs returns the trimmed non-empty chunks of body,
// split on blank-line boundaries.
func splitBodyParagraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []string
	for _, chunk := range blankLines.Split(body, -1) {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}
