package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/wayharvest/wayharvest"
)

// Compile-time interface verification.
var _ wayharvest.PageService = (*PageService)(nil)

// PageService implements wayharvest.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreatePages stores a batch of pages belonging to a run in one transaction.
// A harvest persists hundreds of pages at once; either they all land or none do.
func (s *PageService) CreatePages(ctx context.Context, runID string, pages []*wayharvest.Page) error {
	if runID == "" {
		return wayharvest.Errorf(wayharvest.EINVALID, "run id required")
	}
	if len(pages) == 0 {
		return nil
	}
	for _, page := range pages {
		if err := page.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, page := range pages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pages (id, run_id, seq, timestamp, original_url, archive_url, title, raw_text, clean_text, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), runID, page.Seq, page.Timestamp, page.OriginalURL, page.ArchiveURL,
			page.Title, page.RawText, page.CleanText, hashContent(page.RawText))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindPages retrieves pages matching the filter, in batch order.
func (s *PageService) FindPages(ctx context.Context, filter wayharvest.PageFilter) ([]*wayharvest.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT seq, timestamp, original_url, archive_url, title, raw_text, clean_text FROM pages WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}

	query.WriteString(" ORDER BY seq ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*wayharvest.Page
	for rows.Next() {
		var page wayharvest.Page
		if err := rows.Scan(&page.Seq, &page.Timestamp, &page.OriginalURL, &page.ArchiveURL,
			&page.Title, &page.RawText, &page.CleanText); err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}

	return pages, rows.Err()
}
