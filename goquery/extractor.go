package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wayharvest/wayharvest"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wayharvest.Extractor at compile time.
var _ wayharvest.Extractor = (*Extractor)(nil)

// Extractor dumps the visible text of a whole HTML document. It is the
// last cascade strategy: always yields something on parseable markup, at
// the cost of keeping every navigation and footer line, which the corpus
// cleaning pass removes afterwards.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document title and every visible text fragment as its
// own line. Script, style and noscript elements are dropped first; text is
// trimmed per line and blank lines are skipped.
func (e *Extractor) Extract(rawHTML string) (*wayharvest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, wayharvest.Errorf(wayharvest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wayharvest.Errorf(wayharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript").Remove()

	var lines []string
	for _, root := range doc.Nodes {
		collectText(root, &lines)
	}

	return &wayharvest.ExtractResult{
		Title: title,
		Text:  strings.Join(lines, "\n"),
	}, nil
}

// collectText walks the node tree appending every non-blank text line. A
// single text node may span several lines, so each is split before
// trimming.
func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		for _, part := range strings.Split(n.Data, "\n") {
			if part = strings.TrimSpace(part); part != "" {
				*lines = append(*lines, part)
			}
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, lines)
	}
}
