package wayharvest

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title; may be empty.
	Title string

	// Text is the extracted body text, one line per block. Empty means the
	// strategy found nothing usable.
	Text string
}

// Extractor extracts readable text from raw HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the title and body text.
	Extract(html string) (*ExtractResult, error)
}
