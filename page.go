package wayharvest

// Page represents one archived capture moving through a harvest.
type Page struct {
	// Seq is the page's position within its batch, assigned at collection.
	Seq int `json:"seq"`

	// Timestamp is the capture token in YYYYMMDDhhmmss form, kept verbatim
	// from the archive index. Serialization renders it for display.
	Timestamp string `json:"timestamp"`

	OriginalURL string `json:"originalUrl"`
	ArchiveURL  string `json:"archiveUrl"`

	// Title is the best title any extraction strategy produced; may be empty.
	Title string `json:"title"`

	// RawText is the extraction output, one line per text block. It is never
	// modified after extraction.
	RawText string `json:"rawText"`

	// CleanText is derived from RawText and the batch-wide boilerplate set.
	// It stays empty until the whole batch has been extracted.
	CleanText string `json:"cleanText"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.Timestamp == "" {
		return Errorf(EINVALID, "page timestamp required")
	}
	if p.OriginalURL == "" {
		return Errorf(EINVALID, "page original URL required")
	}
	return nil
}
