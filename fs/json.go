package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/wayharvest/wayharvest"
)

// Ensure JSONWriter implements wayharvest.RecordWriter at compile time.
var _ wayharvest.RecordWriter = (*JSONWriter)(nil)

// JSONWriter writes record batches as JSON files in a directory.
type JSONWriter struct {
	dir string
}

// NewJSONWriter creates a JSONWriter that writes to the given directory.
func NewJSONWriter(dir string) *JSONWriter {
	return &JSONWriter{dir: dir}
}

// WriteRecords writes the batch to {dir}/{name}.json as an indented array.
func (w *JSONWriter) WriteRecords(ctx context.Context, name string, records []wayharvest.Record) error {
	// An empty batch is a valid file: [] rather than null.
	if records == nil {
		records = []wayharvest.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}

	return writeFileAtomic(filepath.Join(w.dir, name+".json"), buf.Bytes())
}
