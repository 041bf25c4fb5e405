package clean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// phonePattern finds digit runs with common separators. A candidate is
	// confirmed only when it carries at least minPhoneDigits digits, so year
	// ranges like "2004-2005" and long prices stay out.
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)

	dayFirstDatePattern  = regexp.MustCompile(`^\d{1,2}[./\-]\d{1,2}[./\-]\d{2,4}$`)
	yearFirstDatePattern = regexp.MustCompile(`^\d{4}[./\-]\d{1,2}[./\-]\d{1,2}$`)
)

// minPhoneDigits is the digit count that turns a separator-joined digit run
// into a phone number.
const minPhoneDigits = 9

// contactMarkers flag copyright and contact lines wherever they appear in
// the line. Greek equivalents cover the archives this tool was built for,
// in both accented and bare forms since all-caps Greek usually drops the
// accents.
var contactMarkers = []string{
	"©",
	"copyright",
	"all rights reserved",
	"πνευματικά δικαιώματα",
	"πνευματικα δικαιωματα",
	"επιφύλαξη παντός",
	"επιφυλαξη παντος",
}

// contactTokens flag contact lines only as whole words: "tel" appears
// inside too many ordinary words to substring-match.
var contactTokens = map[string]struct{}{
	"tel":      {},
	"fax":      {},
	"email":    {},
	"e-mail":   {},
	"τηλ":      {},
	"φαξ":      {},
	"τηλέφωνο": {},
	"τηλεφωνο": {},
}

// navTokens are bare navigation fragments: a line consisting solely of one
// of these, case-folded, is junk.
var navTokens = map[string]struct{}{
	"»":   {},
	"«":   {},
	"›":   {},
	"‹":   {},
	"→":   {},
	"←":   {},
	">>":  {},
	"<<":  {},
	"...": {},
	"…":   {},

	"more":      {},
	"read more": {},
	"home":      {},
	"next":      {},
	"previous":  {},
	"back":      {},
	"top":       {},
	"menu":      {},
	"search":    {},

	"περισσότερα":          {},
	"διαβάστε περισσότερα": {},
	"αρχική":               {},
	"αρχική σελίδα":        {},
	"επόμενο":              {},
	"επόμενη":              {},
	"προηγούμενο":          {},
	"προηγούμενη":          {},
	"πίσω":                 {},
	"μενού":                {},
	"αναζήτηση":            {},
}

// IsJunk reports whether a line is noise regardless of corpus statistics:
// blank, contact information, a bare navigation token, a pure date, or too
// slight to be content. The predicates are independent; any one of them
// rejects the line.
func (c *Cleaner) IsJunk(line string) bool {
	canonical := Canonical(line)
	if canonical == "" {
		return true
	}
	if emailPattern.MatchString(canonical) || containsPhone(canonical) {
		return true
	}
	lower := strings.ToLower(canonical)
	if containsContactMarker(lower) {
		return true
	}
	if _, ok := navTokens[lower]; ok {
		return true
	}
	if dayFirstDatePattern.MatchString(canonical) || yearFirstDatePattern.MatchString(canonical) {
		return true
	}
	if utf8.RuneCountInString(canonical) < c.opts.MinLineLength {
		return true
	}
	if len(strings.Fields(canonical)) < c.opts.MinWords {
		return true
	}
	return false
}

func containsPhone(canonical string) bool {
	for _, candidate := range phonePattern.FindAllString(canonical, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= minPhoneDigits {
			return true
		}
	}
	return false
}

func containsContactMarker(lower string) bool {
	for _, marker := range contactMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	for _, field := range strings.Fields(lower) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if _, ok := contactTokens[word]; ok {
			return true
		}
	}
	return false
}
