package clean

import "strings"

// Boilerplate is the set of line forms classified as batch-wide noise. It
// holds the qualifying canonical lines plus, for each, its loose form when
// that widens the match.
type Boilerplate struct {
	lines map[string]struct{}
}

// Boilerplate thresholds the index into a Boilerplate set. A canonical line
// qualifies when it appears on at least opts.MinPages pages, or on at least
// opts.RatioMinPages pages making up at least opts.Ratio of the corpus. The
// absolute clause catches noise in large corpora, where a fixed share would
// demand hundreds of occurrences; the ratio clause catches it in small ones,
// where the absolute count may exceed the corpus itself.
func (ix *Index) Boilerplate(opts Options) *Boilerplate {
	opts = opts.withDefaults()

	b := &Boilerplate{lines: make(map[string]struct{})}
	for line, count := range ix.counts {
		byCount := count >= opts.MinPages
		byRatio := count >= opts.RatioMinPages &&
			float64(count)/float64(ix.pages) >= opts.Ratio
		if !byCount && !byRatio {
			continue
		}
		b.lines[line] = struct{}{}
		if loose := Loose(line); loose != "" && loose != strings.ToLower(line) {
			b.lines[loose] = struct{}{}
		}
	}
	return b
}

// Contains reports whether a canonical line matches the set: directly, by
// its lowercased form, or by its loose form.
func (b *Boilerplate) Contains(canonical string) bool {
	if _, ok := b.lines[canonical]; ok {
		return true
	}
	if _, ok := b.lines[strings.ToLower(canonical)]; ok {
		return true
	}
	if _, ok := b.lines[Loose(canonical)]; ok {
		return true
	}
	return false
}

// Len returns the number of entries in the set, loose expansions included.
func (b *Boilerplate) Len() int {
	return len(b.lines)
}
