package fuzzdex

import (
	"fuzzdex/internal/grapheme"
	"fuzzdex/internal/topk"
	"fuzzdex/internal/trigram"
)

// Tuning constants for the trigram prefilter. Unlike maxDistance/limit,
// these are algorithm internals, not something a caller should need to pick
// per query.
const (
	minGraphemeLengthForTrigram = 2
	trigramOverlapPerDistance   = 3
)

// Search resolves a must/should query against a Frozen index: tokenize →
// trigram-prefilter the must-token → bounded
// edit-distance verification → posting-list lookup → constraint filter →
// should-token scoring → top-K selection.
//
// must is the required token (normalized internally; only its first
// resulting token is used). should are optional tokens that improve
// ranking but never filter results out. constraint, when non-nil, restricts
// results to phrases that declared that value. maxDistance and limit are
// optional: nil selects DefaultMaxDistance / DefaultLimit; a non-nil
// negative value of either is rejected with ErrInvalidArgument.
//
// Search returns ErrIndexNotReady if called before Finish. It returns an
// empty, non-nil slice — not an error — for semantically empty queries: an
// empty must-token after normalization, limit=0, an unknown constraint
// value, or simply no matching phrases. Results are ordered by descending
// score, ties broken by ascending must-distance then ascending phrase id.
//
// A caller forming must/should from free text typically tokenizes it once,
// sorts the tokens by descending length, and treats the longest as must and
// the rest as should.
func (f *FuzzDex) Search(must string, should []string, constraint *uint64, maxDistance, limit *int) ([]Result, error) {
	maxDist := DefaultMaxDistance
	if maxDistance != nil {
		if *maxDistance < 0 {
			return nil, ErrInvalidArgument
		}
		maxDist = *maxDistance
	}
	lim := DefaultLimit
	if limit != nil {
		if *limit < 0 {
			return nil, ErrInvalidArgument
		}
		lim = *limit
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.state != frozen {
		return nil, ErrIndexNotReady
	}
	if lim == 0 {
		return []Result{}, nil
	}

	mustTokens := Tokenize(must)
	if len(mustTokens) == 0 {
		return []Result{}, nil
	}
	mustNorm := mustTokens[0]

	if constraint != nil {
		if _, ok := f.constraintIndex[*constraint]; !ok {
			return []Result{}, nil
		}
	}

	shouldNorm := make([]string, 0, len(should))
	for _, s := range should {
		toks := Tokenize(s)
		if len(toks) > 0 {
			shouldNorm = append(shouldNorm, toks[0])
		}
	}

	type tokenMatch struct {
		token    string
		distance int
	}
	candidates := f.mustCandidateTokens(mustNorm, maxDist)
	matches := make([]tokenMatch, 0, len(candidates))
	for _, tok := range candidates {
		d, ok := grapheme.DistanceWithin(mustNorm, tok, maxDist)
		if !ok {
			continue
		}
		matches = append(matches, tokenMatch{token: tok, distance: d})
	}

	type phraseHit struct {
		mustToken string
		mustDist  int
		mustPos   int
	}
	best := make(map[uint64]phraseHit)

	for _, m := range matches {
		for _, p := range f.tokenTable[m.token] {
			if constraint != nil {
				if _, ok := f.constraintIndex[*constraint][p.phraseID]; !ok {
					continue
				}
			}
			cur, seen := best[p.phraseID]
			if !seen || betterMustMatch(m.distance, p.position, cur.mustDist, cur.mustPos) {
				best[p.phraseID] = phraseHit{
					mustToken: m.token,
					mustDist:  m.distance,
					mustPos:   p.position,
				}
			}
		}
	}

	results := make([]Result, 0, len(best))
	for id, hit := range best {
		ph := f.phrases[id]
		score := computeScore(hit.mustDist, hit.mustPos, maxDist, ph.tokens, shouldNorm)
		results = append(results, Result{
			ID:       id,
			Token:    hit.mustToken,
			Distance: hit.mustDist,
			Score:    score,
			Origin:   ph.origin,
		})
	}

	return topk.Select(results, lim, resultLess), nil
}

// mustCandidateTokens returns the indexed tokens that could plausibly match
// must within maxDistance. Tokens shorter than minGraphemeLengthForTrigram
// skip the trigram prefilter entirely (the prefilter's soundness bound gets
// unreliable with too few trigrams to begin with) and are matched directly
// against every indexed token. The same full-scan fallback applies whenever
// the computed threshold is at or below zero: at that point the trigram
// overlap bound no longer rules anything out, so every indexed token is a
// candidate, not just the ones sharing a trigram with must.
func (f *FuzzDex) mustCandidateTokens(must string, maxDistance int) []string {
	threshold := trigram.Threshold(must, maxDistance, trigramOverlapPerDistance)

	if grapheme.Count(must) < minGraphemeLengthForTrigram || threshold <= 0 {
		tokens := make([]string, 0, len(f.tokenTable))
		for tok := range f.tokenTable {
			tokens = append(tokens, tok)
		}
		return tokens
	}

	counts := f.trigramIndex.Candidates(must)
	tokens := make([]string, 0, len(counts))
	for tok, c := range counts {
		if c >= threshold {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// betterMustMatch reports whether (distA, posA) should be preferred over
// (distB, posB) as the representative must-match for one phrase: smaller
// distance wins, ties broken by smaller position.
func betterMustMatch(distA, posA, distB, posB int) bool {
	if distA != distB {
		return distA < distB
	}
	return posA < posB
}

// resultLess orders Results worst-first: ascending score, then descending
// distance, then descending id — i.e. its negation is "descending score,
// ties broken by ascending distance then ascending id".
func resultLess(a, b Result) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.ID > b.ID
}
