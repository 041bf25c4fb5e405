package mock

import (
	"context"

	"github.com/wayharvest/wayharvest"
)

var _ wayharvest.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of wayharvest.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, name string, records []wayharvest.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, name string, records []wayharvest.Record) error {
	return w.WriteRecordsFn(ctx, name, records)
}
