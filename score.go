package fuzzdex

import "fuzzdex/internal/grapheme"

// computeScore ranks a phrase hit by must-token distance, must-token
// position, and should-token coverage. It satisfies three monotonicity
// properties: (a) an exact
// must-token match always outscores any fuzzy match at the same position,
// (b) matching more should-tokens never lowers the score, (c) a smaller
// must-distance never lowers the score.
func computeScore(mustDist, mustPos, maxDistance int, phraseTokens, shouldTokens []string) float64 {
	denom := float64(maxDistance + 1)
	mustScore := (denom - float64(mustDist)) / denom
	positionWeight := 1.0 / (1.0 + float64(mustPos))
	base := mustScore * positionWeight

	shouldComponent := 0.0
	if len(shouldTokens) > 0 {
		var sum float64
		for _, s := range shouldTokens {
			bestDist := -1
			for _, tok := range phraseTokens {
				d, ok := grapheme.DistanceWithin(s, tok, maxDistance)
				if ok && (bestDist == -1 || d < bestDist) {
					bestDist = d
				}
			}
			if bestDist >= 0 {
				sum += (denom - float64(bestDist)) / denom
			}
		}
		shouldComponent = sum / float64(len(shouldTokens))
	}

	// Capping the should-bonus weight at 1/(2*(maxDistance+1)) of base keeps
	// it strictly below 1/maxDistance of base, which is exactly the slack
	// needed for an exact must-match (distance 0) to always outscore any
	// fuzzy must-match (distance >= 1) at the same position, regardless of
	// should-token bonus on either side.
	capFactor := 1.0 / (2.0 * denom)
	return base * (1.0 + capFactor*shouldComponent)
}
