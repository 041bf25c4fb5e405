package wayharvest

import "context"

// RecordWriter persists a batch of records under a base name. Implementations
// append their own file extension.
type RecordWriter interface {
	WriteRecords(ctx context.Context, name string, records []Record) error
}

// Ensure MultiWriter implements RecordWriter at compile time.
var _ RecordWriter = (MultiWriter)(nil)

// MultiWriter fans a batch out to several writers, so one harvest can emit
// CSV, JSON and XLSX side by side. The first error stops the fan-out.
type MultiWriter []RecordWriter

// WriteRecords writes the batch through each writer in order.
func (m MultiWriter) WriteRecords(ctx context.Context, name string, records []Record) error {
	for _, w := range m {
		if err := w.WriteRecords(ctx, name, records); err != nil {
			return err
		}
	}
	return nil
}
