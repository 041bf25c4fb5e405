package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/wayharvest/wayharvest"
)

// Ensure Extractor implements wayharvest.Extractor at compile time.
var _ wayharvest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article text from HTML. It is
// the primary cascade strategy: precise about main content, tuned to ignore
// comments and tables, with the title read from page metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and body text.
func (e *Extractor) Extract(rawHTML string) (*wayharvest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, wayharvest.Errorf(wayharvest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &wayharvest.ExtractResult{
		Title: result.Metadata.Title,
		Text:  strings.TrimSpace(result.ContentText),
	}, nil
}
