package clean

import (
	"strings"
	"unicode/utf8"
)

// Cleaner strips boilerplate and junk lines from page text. A nil
// boilerplate set disables the corpus filter, leaving only the per-line
// junk heuristics; the under-cleaning safeguard falls back to exactly that
// mode.
type Cleaner struct {
	boilerplate *Boilerplate
	opts        Options
}

// NewCleaner creates a Cleaner over a boilerplate set. Zero option values
// take the package defaults.
func NewCleaner(boilerplate *Boilerplate, opts Options) *Cleaner {
	return &Cleaner{boilerplate: boilerplate, opts: opts.withDefaults()}
}

// Clean filters a page's raw text, keeping the canonical form of every
// surviving line. If the survivors total fewer than opts.Floor runes the
// result is recomputed with the junk filter alone, so a legitimately short
// page whose lines all happen to recur elsewhere is not cleaned down to
// nothing. That trades some boilerplate leakage for non-empty output.
func (c *Cleaner) Clean(rawText string) string {
	out := c.sweep(rawText, c.boilerplate)
	if utf8.RuneCountInString(out) < c.opts.Floor {
		return c.sweep(rawText, nil)
	}
	return out
}

// sweep runs one filtering pass. A nil boilerplate set skips the corpus
// filter.
func (c *Cleaner) sweep(rawText string, boilerplate *Boilerplate) string {
	var kept []string
	for _, line := range strings.Split(rawText, "\n") {
		canonical := Canonical(line)
		if canonical == "" {
			continue
		}
		if boilerplate != nil && boilerplate.Contains(canonical) {
			continue
		}
		if c.IsJunk(canonical) {
			continue
		}
		kept = append(kept, canonical)
	}
	return strings.Join(kept, "\n")
}
