// Package trigram implements a sentinel-padded trigram scheme: a
// 3-grapheme sliding window over "^^" + token + "$", used to prefilter
// must-token candidates before the more expensive bounded edit-distance
// check.
package trigram

import "fuzzdex/internal/grapheme"

// Of returns the trigram set of token as a slice (duplicates allowed, order
// is the sliding-window order), computed over sentinel-padded grapheme
// clusters so that even single-grapheme tokens produce at least one
// trigram. An empty token has no trigrams.
func Of(token string) []string {
	clusters := grapheme.Split(token)
	if len(clusters) == 0 {
		return nil
	}
	padded := make([]string, 0, len(clusters)+3)
	padded = append(padded, "^", "^")
	padded = append(padded, clusters...)
	padded = append(padded, "$")

	trigrams := make([]string, 0, len(padded)-2)
	for i := 0; i+3 <= len(padded); i++ {
		trigrams = append(trigrams, padded[i]+padded[i+1]+padded[i+2])
	}
	return trigrams
}

// Index maps trigrams to the set of distinct tokens that contain them.
type Index struct {
	table map[string]map[string]struct{}
}

// NewIndex returns an empty trigram index.
func NewIndex() *Index {
	return &Index{table: make(map[string]map[string]struct{})}
}

// Add registers token's trigrams in the index. Safe to call repeatedly with
// the same token; it is a no-op thereafter.
func (idx *Index) Add(token string) {
	for _, tg := range Of(token) {
		set, ok := idx.table[tg]
		if !ok {
			set = make(map[string]struct{})
			idx.table[tg] = set
		}
		set[token] = struct{}{}
	}
}

// Candidates returns, for every token sharing at least one trigram with
// must, the number of trigrams it shares with must's trigram set.
func (idx *Index) Candidates(must string) map[string]int {
	counts := make(map[string]int)
	for _, tg := range Of(must) {
		for token := range idx.table[tg] {
			counts[token]++
		}
	}
	return counts
}

// Threshold computes the minimum shared-trigram count a candidate token
// must reach to possibly be within maxDistance of must:
// trigrams_of(must) - maxDistance*overlapPerDistance. This can fall to zero
// or below once maxDistance is large relative to must's trigram count — at
// that point the trigram set no longer bounds candidates at all, and a
// caller must fall back to scanning every indexed token directly rather
// than clamping the threshold up to 1 (doing so would discard genuine
// within-distance tokens that happen to share zero trigrams with must, e.g.
// two substitutions landing on opposite ends of a short token).
func Threshold(must string, maxDistance, overlapPerDistance int) int {
	return len(Of(must)) - maxDistance*overlapPerDistance
}
