package wayharvest

import (
	"context"
	"strings"
	"time"
)

// Snapshot identifies one archived capture in the Wayback Machine index.
type Snapshot struct {
	// Timestamp is the capture time token in YYYYMMDDhhmmss form.
	Timestamp string

	// OriginalURL is the URL that was captured.
	OriginalURL string
}

// ArchiveURL returns the replay URL serving the capture's content.
func (s Snapshot) ArchiveURL() string {
	return "https://web.archive.org/web/" + s.Timestamp + "/" + s.OriginalURL
}

// SnapshotQuery selects captures from the archive index.
type SnapshotQuery struct {
	// Site is the domain or domain/path to query, without protocol.
	Site string

	// From and To bound the capture window. Zero values leave the
	// corresponding end unbounded.
	From time.Time
	To   time.Time

	// Limit caps the number of snapshots returned. Zero means all.
	Limit int
}

// Validate returns an error if the query contains invalid fields.
func (q SnapshotQuery) Validate() error {
	if q.Site == "" {
		return Errorf(EINVALID, "site required")
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return Errorf(EINVALID, "end date must not be before start date")
	}
	if q.Limit < 0 {
		return Errorf(EINVALID, "limit must not be negative")
	}
	return nil
}

// SnapshotSource lists archived captures matching a query.
type SnapshotSource interface {
	// List returns the snapshots matching the query, in index order.
	List(ctx context.Context, query SnapshotQuery) ([]Snapshot, error)
}

// NormalizeSite reduces a user-supplied address to the host/path form the
// archive index expects. Protocol prefixes and trailing slashes are removed,
// so "https://www.example.com/" and "www.example.com" query the same site.
func NormalizeSite(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	return strings.TrimRight(s, "/")
}
