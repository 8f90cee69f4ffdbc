// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package msgfile decodes legacy Outlook .msg files. The container is an
// OLE compound file (read with mscfb) whose interesting content lives in
// property substreams named __substg1.0_TTTTEEEE, where TTTT is the MAPI
// property tag and EEEE the encoding. Only the subject, sender name, and
// plain-text body streams are read.
package msgfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
	"golang.org/x/text/encoding/unicode"
)

// Message holds the decoded fields of an Outlook message.
type Message struct {
	Subject string
	Sender  string
	Body    string
}

const substgPrefix = "__substg1.0_"

// MAPI property tags.
const (
	tagSubject    = "0037"
	tagSenderName = "0C1A"
	tagBody       = "1000"
)

// Stream encodings: PT_UNICODE (UTF-16LE) and PT_STRING8.
const (
	encUnicode = "001F"
	encANSI    = "001E"
)

// Open decodes the .msg file at path.
func Open(path string) (*Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return nil, fmt.Errorf("parsing compound file %s: %w", path, err)
	}

	msg := &Message{}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		target, enc := msg.propertyTarget(entry.Name, entry.Path)
		if target == nil {
			continue
		}

		data := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, data); err != nil {
			return nil, fmt.Errorf("reading stream %s: %w", entry.Name, err)
		}
		switch enc {
		case encUnicode:
			text, err := decodeUTF16LE(data)
			if err != nil {
				return nil, fmt.Errorf("decoding stream %s: %w", entry.Name, err)
			}
			*target = text
		case encANSI:
			*target = strings.TrimRight(string(data), "\x00")
		}
	}
	return msg, nil
}

// propertyTarget maps a stream to the message field it feeds, with its
// encoding. Attachment and embedded-message storages reuse the same
// property stream names, so only root-level streams (empty storage path)
// qualify; anything nested would overwrite the top-level fields.
func (m *Message) propertyTarget(name string, path []string) (*string, string) {
	if len(path) > 0 {
		return nil, ""
	}
	tag, enc, ok := splitStreamName(name)
	if !ok {
		return nil, ""
	}
	switch tag {
	case tagSubject:
		return &m.Subject, enc
	case tagSenderName:
		return &m.Sender, enc
	case tagBody:
		return &m.Body, enc
	}
	return nil, ""
}

// splitStreamName extracts the property tag and encoding from a substream
// name like "__substg1.0_0037001F".
func splitStreamName(name string) (tag, enc string, ok bool) {
	if !strings.HasPrefix(name, substgPrefix) {
		return "", "", false
	}
	rest := name[len(substgPrefix):]
	if len(rest) < 8 {
		return "", "", false
	}
	return strings.ToUpper(rest[:4]), strings.ToUpper(rest[4:8]), true
}

var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func decodeUTF16LE(data []byte) (string, error) {
	decoded, err := utf16Decoder.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(decoded), "\x00"), nil
}
