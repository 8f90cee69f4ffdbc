// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Error kinds separate batch-fatal failures from per-file recoverable
// ones. ErrInputNotFound and ErrInvalidUsage abort the whole invocation;
// ErrUnsupportedFormat and ErrExtractionFailure are caught per file and
// counted; ErrRelocationFailure is a warning that never downgrades a
// successful conversion. Callers match with errors.Is.
var (
	ErrInputNotFound     = errors.New("input not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrExtractionFailure = errors.New("extraction failure")
	ErrRelocationFailure = errors.New("relocation failure")
	ErrInvalidUsage      = errors.New("invalid usage")
)

// ExtractionError tags a decode or parse error as a per-file extraction
// failure, keeping the underlying cause in the chain.
func ExtractionError(path string, err error) error {
	return fmt.Errorf("extracting %s: %w: %w", path, ErrExtractionFailure, err)
}
