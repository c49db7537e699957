package match

import (
	"vitascan/internal/catalog"
	"vitascan/internal/feature"
)

// Reward scheme: range and texture checks are deliberately two-level
// rather than continuous similarity metrics.
const (
	matchReward = 0.8
	missReward  = 0.2
	edgeBoost   = 1.2
)

// Score computes the confidence in [0, 1] that the extracted features
// match one profile. Total over any well-formed bundle/profile pair.
func (e *Engine) Score(b *feature.Bundle, p catalog.Profile) float64 {
	confidence := e.params.ColorWeight*colorMatch(b.Color, p) +
		e.params.TextureWeight*textureMatch(b.Texture.Variance, p.Texture)

	// The boost applies after weighting and before the clamp, so a
	// borderline combination can still clear the acceptance threshold.
	if b.Edges.Density >= p.Texture.EdgeDensityMin {
		confidence *= edgeBoost
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	// Rewards are non-negative, so no lower clamp is needed.
	return confidence
}

// colorMatch averages the RGB and HSV mean-vector range checks against
// the profile's skin region. Always one of 0, 0.2, 0.5, or 0.8.
func colorMatch(c feature.ColorFeatures, p catalog.Profile) float64 {
	ranges, ok := p.SkinRanges()
	if !ok {
		return 0
	}
	rgb := rangeReward(c.MeanRGB, ranges.RGB)
	hsv := rangeReward(c.MeanHSV, ranges.HSV)
	return (rgb + hsv) / 2
}

func rangeReward(v [3]float64, r catalog.ColorRange) float64 {
	if r.Contains(v) {
		return matchReward
	}
	return missReward
}

// textureMatch compares global gray variance against the profile's
// roughness threshold. Strict inequality both ways: equality misses.
func textureMatch(variance float64, pat catalog.TexturePattern) float64 {
	switch pat.PatternType {
	case catalog.PatternRough:
		if variance > pat.RoughThreshold {
			return matchReward
		}
	case catalog.PatternSmooth:
		if variance < pat.RoughThreshold {
			return matchReward
		}
	}
	return missReward
}
