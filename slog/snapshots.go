package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wayharvest/wayharvest"
)

// Ensure LoggingSnapshotSource implements wayharvest.SnapshotSource.
var _ wayharvest.SnapshotSource = (*LoggingSnapshotSource)(nil)

// LoggingSnapshotSource wraps a SnapshotSource with logging.
type LoggingSnapshotSource struct {
	next   wayharvest.SnapshotSource
	logger *slog.Logger
}

// NewLoggingSnapshotSource creates a new LoggingSnapshotSource.
func NewLoggingSnapshotSource(next wayharvest.SnapshotSource, logger *slog.Logger) *LoggingSnapshotSource {
	return &LoggingSnapshotSource{next: next, logger: logger}
}

// List delegates to the wrapped source and logs the operation.
func (s *LoggingSnapshotSource) List(ctx context.Context, query wayharvest.SnapshotQuery) (snapshots []wayharvest.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshot listing",
			"site", query.Site,
			"count", len(snapshots),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx, query)
}
