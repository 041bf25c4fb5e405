package clean

import (
	"strings"
	"unicode/utf8"
)

// minIndexRunes is the shortest canonical line the index counts. Shorter
// lines carry too little signal to match on.
const minIndexRunes = 3

// Index counts, for a batch of pages, how many pages contain each canonical
// line. A line repeated within one page counts once, so a single spammy page
// cannot promote its own repetition to boilerplate. The index is scratch
// state for one run; it holds no page text beyond the counted lines.
type Index struct {
	pages  int
	counts map[string]int
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{counts: make(map[string]int)}
}

// AddPage records one page's raw text. Every line is canonicalized and
// counted at most once for the page; blank lines and lines shorter than
// three runes are skipped. The page counts toward the corpus size even if
// none of its lines qualify.
func (ix *Index) AddPage(rawText string) {
	ix.pages++
	seen := make(map[string]struct{})
	for _, line := range strings.Split(rawText, "\n") {
		canonical := Canonical(line)
		if utf8.RuneCountInString(canonical) < minIndexRunes {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		ix.counts[canonical]++
	}
}

// Pages returns the number of pages added to the index.
func (ix *Index) Pages() int {
	return ix.pages
}

// PagesContaining returns how many pages contain the line after
// canonicalization.
func (ix *Index) PagesContaining(line string) int {
	return ix.counts[Canonical(line)]
}
