package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/wayharvest/wayharvest"
)

// DefaultCDXBase is the CDX index endpoint of the Wayback Machine.
const DefaultCDXBase = "http://web.archive.org/cdx/search/cdx"

// DefaultCDXTimeout is the default timeout for index queries. Index scans
// cover far more data than a single page fetch, so they get more room than
// DefaultFetchTimeout.
const DefaultCDXTimeout = 20 * time.Second

// Ensure CDXSource implements wayharvest.SnapshotSource at compile time.
var _ wayharvest.SnapshotSource = (*CDXSource)(nil)

// CDXSource lists archived captures through the Wayback CDX API. Queries
// ask for the timestamp and original URL of every status-200 capture under
// the site, optionally bounded to a capture window.
type CDXSource struct {
	client  *http.Client
	baseURL string
}

// CDXOption configures a CDXSource.
type CDXOption func(*CDXSource)

// WithCDXClient sets the HTTP client used for index queries.
// Defaults to a client with DefaultCDXTimeout if not specified.
func WithCDXClient(client *http.Client) CDXOption {
	return func(s *CDXSource) {
		s.client = client
	}
}

// WithCDXBase overrides the index endpoint. Tests point it at a local
// server.
func WithCDXBase(baseURL string) CDXOption {
	return func(s *CDXSource) {
		s.baseURL = baseURL
	}
}

// NewCDXSource creates a new CDXSource.
func NewCDXSource(opts ...CDXOption) *CDXSource {
	s := &CDXSource{
		baseURL: DefaultCDXBase,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultCDXTimeout}
	}
	return s
}

// List returns the snapshots matching the query, in index order. The
// response is a JSON array of rows whose first row names the columns and is
// skipped; rows that do not carry exactly a timestamp and an original URL
// are skipped too. A positive query limit truncates the row list before
// parsing.
func (s *CDXSource) List(ctx context.Context, query wayharvest.SnapshotQuery) ([]wayharvest.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.queryURL(query), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wayharvest.Errorf(wayharvest.EINTERNAL, "archive index returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// The index answers an empty match with an empty body rather than an
	// empty array.
	if len(bytes.TrimSpace(body)) == 0 {
		return []wayharvest.Snapshot{}, nil
	}

	var rows [][]string
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, wayharvest.Errorf(wayharvest.EINTERNAL, "malformed archive index response: %v", err)
	}

	if len(rows) <= 1 {
		return []wayharvest.Snapshot{}, nil
	}
	rows = rows[1:]

	if query.Limit > 0 && len(rows) > query.Limit {
		rows = rows[:query.Limit]
	}

	snapshots := make([]wayharvest.Snapshot, 0, len(rows))
	for _, row := range rows {
		if len(row) != 2 || row[0] == "" || row[1] == "" {
			continue
		}
		snapshots = append(snapshots, wayharvest.Snapshot{
			Timestamp:   row[0],
			OriginalURL: row[1],
		})
	}

	return snapshots, nil
}

// queryURL builds the CDX request URL for the query.
func (s *CDXSource) queryURL(query wayharvest.SnapshotQuery) string {
	params := url.Values{}
	params.Set("url", wayharvest.NormalizeSite(query.Site)+"/*")
	params.Set("output", "json")
	params.Set("fl", "timestamp,original")
	params.Set("filter", "statuscode:200")
	if !query.From.IsZero() {
		params.Set("from", query.From.Format("20060102")+"000000")
	}
	if !query.To.IsZero() {
		params.Set("to", query.To.Format("20060102")+"235959")
	}
	return s.baseURL + "?" + params.Encode()
}
