// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect maps file paths to supported document formats. Detection
// is a pure function of the path: the extension table is consulted first,
// then a mime-type fallback. No file content is ever read.
package detect

import (
	"fmt"
	"mime"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/docmark/pkg/types"
)

// extensions is the fixed lookup table for supported file extensions.
var extensions = map[string]types.FormatTag{
	".csv":  types.FormatCSV,
	".txt":  types.FormatText,
	".text": types.FormatText,
	".xlsx": types.FormatSpreadsheet,
	".xls":  types.FormatSpreadsheet,
	".xlsm": types.FormatSpreadsheet,
	".docx": types.FormatWord,
	".pdf":  types.FormatPDF,
	".msg":  types.FormatMSG,
	".eml":  types.FormatEML,
}

// Detect returns the format tag for path. The extension table wins when
// the extension is known; otherwise the extension's registered mime type
// is consulted. Paths that resolve neither way get ErrUnsupportedFormat,
// and callers must fail rather than guess further.
func Detect(path string) (types.FormatTag, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if tag, ok := extensions[ext]; ok {
		return tag, nil
	}
	if tag, ok := fromMIME(mime.TypeByExtension(ext)); ok {
		return tag, nil
	}
	return "", fmt.Errorf("detecting format of %s: %w", path, types.ErrUnsupportedFormat)
}

// IsSupported reports whether path's extension is in the fixed table.
// Batch discovery uses this; the mime fallback is deliberately not
// consulted here so that directory walks stay predictable.
func IsSupported(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions returns the supported extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func fromMIME(mediaType string) (types.FormatTag, bool) {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	switch {
	case mediaType == "":
		return "", false
	case strings.HasPrefix(mediaType, "text/"):
		return types.FormatText, true
	case mediaType == "application/vnd.ms-excel",
		mediaType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return types.FormatSpreadsheet, true
	case mediaType == "application/msword",
		mediaType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return types.FormatWord, true
	case mediaType == "application/pdf":
		return types.FormatPDF, true
	case mediaType == "message/rfc822":
		return types.FormatEML, true
	}
	return "", false
}
