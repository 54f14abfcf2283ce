package srs

import "math"

// FSRS-4.5 forgetting curve constants. Stability is defined as the interval
// in days at which retrievability decays to 90%.
const (
	curveDecay  = -0.5
	curveFactor = 19.0 / 81.0
)

// forgettingCurve returns the recall probability after elapsed days for a
// card with the given stability, clamped to [0,1].
func forgettingCurve(stability, elapsedDays float64) float64 {
	r := math.Pow(1.0+curveFactor*elapsedDays/stability, curveDecay)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
