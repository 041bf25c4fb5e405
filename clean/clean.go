// Package clean implements corpus-wide boilerplate removal for harvested
// page text. Cleaning is a batch algorithm with two phases: an Index is
// built over every page's raw text and thresholded into a Boilerplate set,
// then a Cleaner strips boilerplate and junk lines from each page
// independently. Boilerplate is a property of the whole batch, never of a
// single page, so no page may be cleaned before every page is indexed.
//
// The package is pure text-in, text-out: no I/O, no side effects, no
// degrees of freedom beyond Options.
package clean

// Default thresholds for the cleaning engine.
const (
	// DefaultMinPages is the page count at which a line becomes boilerplate
	// outright.
	DefaultMinPages = 3

	// DefaultRatio is the share of pages at which a line becomes
	// boilerplate in small corpora.
	DefaultRatio = 0.15

	// DefaultRatioMinPages is the minimum page count for the ratio clause.
	// Without it a line appearing once in a three-page corpus (33%) would
	// count as boilerplate, which is unique content, not noise.
	DefaultRatioMinPages = 2

	// DefaultMinLineLength and DefaultMinWords are the junk-filter
	// minimums, in runes and words.
	DefaultMinLineLength = 20
	DefaultMinWords      = 3

	// DefaultFloor is the under-cleaning safeguard in runes: pages whose
	// cleaned text falls below it are re-cleaned with the junk filter only.
	DefaultFloor = 100
)

// Options configures the cleaning engine. Zero values take the defaults.
type Options struct {
	// MinPages is the absolute page count at which a line is boilerplate
	// regardless of corpus size.
	MinPages int

	// Ratio is the share of pages at which a line is boilerplate, subject
	// to RatioMinPages.
	Ratio float64

	// RatioMinPages guards the ratio clause in small corpora. Set to 1 to
	// apply the ratio unguarded.
	RatioMinPages int

	// MinLineLength is the minimum line length in runes; shorter lines are
	// junk.
	MinLineLength int

	// MinWords is the minimum word count; lines with fewer words are junk.
	MinWords int

	// Floor is the minimum cleaned-page size in runes before the junk-only
	// fallback kicks in.
	Floor int
}

// withDefaults returns a copy of the options with zero values filled in.
func (o Options) withDefaults() Options {
	if o.MinPages == 0 {
		o.MinPages = DefaultMinPages
	}
	if o.Ratio == 0 {
		o.Ratio = DefaultRatio
	}
	if o.RatioMinPages == 0 {
		o.RatioMinPages = DefaultRatioMinPages
	}
	if o.MinLineLength == 0 {
		o.MinLineLength = DefaultMinLineLength
	}
	if o.MinWords == 0 {
		o.MinWords = DefaultMinWords
	}
	if o.Floor == 0 {
		o.Floor = DefaultFloor
	}
	return o
}
