package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/wayharvest/wayharvest"
)

// Ensure Extractor implements wayharvest.Extractor at compile time.
var _ wayharvest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article text from HTML. It is
// the secondary cascade strategy: a main-content-region heuristic that
// recovers pages the primary extractor rejects.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &wayharvest.ExtractResult{
		Title: article.Title,
		Text:  strings.TrimSpace(article.TextContent),
	}, nil
}
