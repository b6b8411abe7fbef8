package fuzzdex

import "fuzzdex/internal/normalize"

// Tokenize splits text into normalized tokens: case-folded,
// diacritic-stripped, and split on runs of characters that are neither
// letters nor digits. It is a deterministic pure function with no side
// effects; AddPhrase and Search both call it internally so that lookups
// formed from raw query text hit postings built from raw phrase text.
//
// Callers forming a must/should query from free text typically tokenize it
// once, sort the tokens by descending length, and treat the first (longest)
// as must and the rest as should.
func Tokenize(text string) []string {
	return normalize.Tokens(text)
}
