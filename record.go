package wayharvest

import "time"

// Record is the output row written for one harvested page. Raw and clean
// text travel together so a reader can always audit what cleaning removed.
type Record struct {
	Timestamp   string `json:"timestamp"`
	OriginalURL string `json:"original_url"`
	ArchiveURL  string `json:"archive_url"`
	Title       string `json:"title"`
	RawText     string `json:"raw_text"`
	CleanText   string `json:"clean_text"`
}

// Record converts the page to its output row, rendering the capture
// timestamp in readable form.
func (p *Page) Record() Record {
	return Record{
		Timestamp:   ReadableTimestamp(p.Timestamp),
		OriginalURL: p.OriginalURL,
		ArchiveURL:  p.ArchiveURL,
		Title:       p.Title,
		RawText:     p.RawText,
		CleanText:   p.CleanText,
	}
}

// RecordColumns is the column order shared by the tabular writers.
func RecordColumns() []string {
	return []string{"timestamp", "original_url", "archive_url", "title", "raw_text", "clean_text"}
}

// Row returns the record's values in RecordColumns order.
func (r Record) Row() []string {
	return []string{r.Timestamp, r.OriginalURL, r.ArchiveURL, r.Title, r.RawText, r.CleanText}
}

// ReadableTimestamp converts an archive capture token (YYYYMMDDhhmmss) to a
// DD/MM/YYYY date. Input that does not parse is returned unchanged rather
// than dropped: a wrong-looking timestamp is still a usable record key.
func ReadableTimestamp(ts string) string {
	if len(ts) < 14 {
		return ts
	}
	t, err := time.Parse("20060102150405", ts[:14])
	if err != nil {
		return ts
	}
	return t.Format("02/01/2006")
}
