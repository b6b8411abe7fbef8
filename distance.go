package fuzzdex

import "fuzzdex/internal/grapheme"

// Distance returns the Levenshtein edit distance between a and b, measured
// over Unicode extended grapheme clusters so that a combining-mark sequence
// such as "y̆es" counts as differing from "yes" by one edit, not two.
func Distance(a, b string) int {
	return grapheme.Distance(a, b)
}

// DistanceWithin returns the edit distance between a and b if it is at most
// maxDistance, and false if it provably exceeds maxDistance. It is the
// bounded primitive Search uses internally to verify trigram-prefiltered
// candidates without paying for a full, unbounded alignment.
func DistanceWithin(a, b string, maxDistance int) (dist int, ok bool) {
	return grapheme.DistanceWithin(a, b, maxDistance)
}
