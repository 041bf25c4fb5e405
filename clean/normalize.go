package clean

import (
	"strings"
	"unicode"
)

// Canonical collapses internal whitespace runs to single spaces and trims
// the ends. It is the form lines are indexed, matched and emitted in.
func Canonical(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// Loose lowercases a canonical line and strips every rune that is not a
// letter, digit, underscore or space, re-collapsing any whitespace the
// stripping leaves behind. It widens matching so punctuation variants of
// the same boilerplate line ("Copyright 2004." vs "Copyright 2004")
// collapse onto one form.
func Loose(canonical string) string {
	var sb strings.Builder
	sb.Grow(len(canonical))
	for _, r := range strings.ToLower(canonical) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ' ' {
			sb.WriteRune(r)
		}
	}
	return Canonical(sb.String())
}
