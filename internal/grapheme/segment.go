// Package grapheme provides Unicode-extended-grapheme-cluster-aware string
// primitives for fuzzdex: segmentation and bounded edit distance. A
// user-perceived character (e.g. a base letter plus its combining marks) is
// treated as a single unit of comparison, so "y̆es" and "yes" differ by one
// edit rather than two.
package grapheme

import "github.com/rivo/uniseg"

// Split returns the Unicode extended grapheme clusters of s, in order.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	remaining := s
	for len(remaining) > 0 {
		var cluster string
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
