package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayharvest/wayharvest"
	"github.com/wayharvest/wayharvest/mock"
	wayslog "github.com/wayharvest/wayharvest/slog"
)

var _ wayharvest.SnapshotSource = (*wayslog.LoggingSnapshotSource)(nil)

func TestLoggingSnapshotSource_List(t *testing.T) {
	t.Parallel()

	t.Run("logs successful listing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.SnapshotSource{
			ListFn: func(ctx context.Context, query wayharvest.SnapshotQuery) ([]wayharvest.Snapshot, error) {
				return []wayharvest.Snapshot{
					{Timestamp: "20040215000000", OriginalURL: "http://example.com/"},
					{Timestamp: "20040301000000", OriginalURL: "http://example.com/about"},
				}, nil
			},
		}

		source := wayslog.NewLoggingSnapshotSource(inner, logger)

		snapshots, err := source.List(context.Background(), wayharvest.SnapshotQuery{Site: "example.com"})
		require.NoError(t, err)
		assert.Len(t, snapshots, 2)

		output := buf.String()
		assert.Contains(t, output, "snapshot listing")
		assert.Contains(t, output, "site=example.com")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failed listing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.SnapshotSource{
			ListFn: func(ctx context.Context, query wayharvest.SnapshotQuery) ([]wayharvest.Snapshot, error) {
				return nil, errors.New("connection failed")
			},
		}

		source := wayslog.NewLoggingSnapshotSource(inner, logger)

		_, err := source.List(context.Background(), wayharvest.SnapshotQuery{Site: "example.com"})
		require.Error(t, err)

		output := buf.String()
		assert.Contains(t, output, "snapshot listing")
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
