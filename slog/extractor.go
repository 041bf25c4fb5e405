package slog

import (
	"log/slog"
	"time"

	"github.com/wayharvest/wayharvest"
)

// Ensure LoggingExtractor implements wayharvest.Extractor.
var _ wayharvest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Wrapping the cascade
// logs the merged outcome per page; wrapping a single strategy logs what
// that strategy contributed.
type LoggingExtractor struct {
	next   wayharvest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wayharvest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *wayharvest.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var bytes int
		if result != nil {
			title = result.Title
			bytes = len(result.Text)
		}
		e.logger.Info("extract",
			"title", title,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
