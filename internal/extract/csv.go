// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/csv"
	"os"

	"github.com/pdiddy/docmark/pkg/types"
)

// CSVExtractor turns a CSV file into a single table block. The first
// record is the header; ragged records are padded by the Table
// constructor.
type CSVExtractor struct{}

// Extract decodes the CSV at path.
func (e *CSVExtractor) Extract(path string) ([]types.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, types.ExtractionError(path, err)
	}

	if len(rows) == 0 {
		return []types.Block{types.Paragraph("*Empty file*")}, nil
	}
	return []types.Block{types.Table(rows)}, nil
}
