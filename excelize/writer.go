// Package excelize provides an XLSX record writer backed by the excelize library.
package excelize

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/wayharvest/wayharvest"
	"github.com/xuri/excelize/v2"
)

// maxCellChars is the XLSX hard limit on characters per cell. Raw text from
// an archived page can exceed it, so longer values are truncated to keep the
// workbook writable.
const maxCellChars = 32767

// Ensure Writer implements wayharvest.RecordWriter at compile time.
var _ wayharvest.RecordWriter = (*Writer)(nil)

// Writer writes record batches as XLSX workbooks in a directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer that writes to the given directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteRecords writes the batch to {dir}/{name}.xlsx with a header row.
func (w *Writer) WriteRecords(ctx context.Context, name string, records []wayharvest.Record) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	columns := wayharvest.RecordColumns()
	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := r.Row()
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = truncateCell(v)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(filepath.Join(w.dir, name+".xlsx"))
}

func truncateCell(s string) string {
	// The limit counts characters, not bytes.
	if utf8.RuneCountInString(s) <= maxCellChars {
		return s
	}
	return string([]rune(s)[:maxCellChars])
}
