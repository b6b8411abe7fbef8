// Package normalize implements token normalization: case-fold, strip
// diacritics, then split on runs of characters that are neither letters nor
// digits. It is a pure, stateless transform — the same input always
// produces the same tokens, with no reliance on external state.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var foldCaser = cases.Fold()

// Fold case-folds s and strips diacritical marks, while preserving the
// grapheme-cluster structure of s: each combining mark is dropped, but the
// base rune it decorates is kept, so a cluster never vanishes outright.
func Fold(s string) string {
	s = foldCaser.String(s)
	s = norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Tokens splits text into normalized tokens: text is case-folded and
// diacritic-stripped via Fold, then split into maximal runs of letters and
// digits, discarding everything else (punctuation, whitespace, symbols).
// Tokens are returned in left-to-right order of occurrence; duplicates are
// not removed.
func Tokens(text string) []string {
	folded := Fold(text)

	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
