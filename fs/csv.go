package fs

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"

	"github.com/wayharvest/wayharvest"
)

// Ensure CSVWriter implements wayharvest.RecordWriter at compile time.
var _ wayharvest.RecordWriter = (*CSVWriter)(nil)

// CSVWriter writes record batches as CSV files in a directory.
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates a CSVWriter that writes to the given directory.
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// WriteRecords writes the batch to {dir}/{name}.csv with a header row.
func (w *CSVWriter) WriteRecords(ctx context.Context, name string, records []wayharvest.Record) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(wayharvest.RecordColumns()); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return writeFileAtomic(filepath.Join(w.dir, name+".csv"), buf.Bytes())
}
