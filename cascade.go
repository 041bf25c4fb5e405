package wayharvest

import (
	"strings"
	"unicode/utf8"
)

// Ensure Cascade implements Extractor at compile time.
var _ Extractor = (*Cascade)(nil)

// Cascade runs an ordered list of extraction strategies and keeps the best
// combined result. Every strategy is always evaluated: a strictly longer
// body replaces the current one, so later, noisier strategies only win when
// they genuinely recover more text. The title is taken from the first
// strategy that produces one and never overwritten, since earlier strategies
// read metadata while later ones fall back to guessing.
type Cascade struct {
	strategies []Extractor
}

// NewCascade creates a Cascade over the given strategies, evaluated in order.
func NewCascade(strategies ...Extractor) *Cascade {
	return &Cascade{strategies: strategies}
}

// Extract runs every strategy and returns the combined best result. A
// failing strategy counts as an empty result; one broken parser never fails
// the page. The result is never nil: an empty Text means no strategy
// produced usable body text.
func (c *Cascade) Extract(html string) (*ExtractResult, error) {
	best := &ExtractResult{}
	for _, s := range c.strategies {
		res, err := s.Extract(html)
		if err != nil || res == nil {
			continue
		}
		if best.Title == "" {
			best.Title = strings.TrimSpace(res.Title)
		}
		if text := strings.TrimSpace(res.Text); longer(text, best.Text) {
			best.Text = text
		}
	}
	return best, nil
}

// longer compares body text by rune count, so multi-byte scripts are not
// favored over ASCII.
func longer(a, b string) bool {
	return utf8.RuneCountInString(a) > utf8.RuneCountInString(b)
}
